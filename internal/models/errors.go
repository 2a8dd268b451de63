package models

import "errors"

// Errores conocidos que los handlers traducen a códigos HTTP.
// Cualquier otro error se trata como una falla de la fuente de datos
// y se devuelve sin transformar, sin reintentos internos.
var (
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrPortfolioNotFound = errors.New("portafolio no encontrado")
	ErrStockNotFound     = errors.New("acción no encontrada")
	ErrReportNotFound    = errors.New("reporte no encontrado")
)

// ValidationError indica datos de entrada malformados
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidationError indica si el error es de validación
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
