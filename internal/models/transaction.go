package models

import "time"

// Tipos de transacción permitidos
const (
	TransactionTypeBuy      = "BUY"
	TransactionTypeSell     = "SELL"
	TransactionTypeDividend = "DIVIDEND"
)

// Transaction representa una operación sobre una acción dentro de un portafolio.
// Las transacciones son inmutables: una vez creadas no existe ruta de actualización.
type Transaction struct {
	ID            string    `json:"id"`
	PortfolioID   string    `json:"portfolio_id" binding:"required"`
	StockID       string    `json:"stock_id" binding:"required"`
	Type          string    `json:"type" binding:"required"`
	Quantity      float64   `json:"quantity"`
	PricePerShare float64   `json:"price_per_share"`
	Fee           float64   `json:"fee"`
	Date          time.Time `json:"date"`
	Note          string    `json:"note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Validate verifica que la transacción sea válida antes de persistirla.
// Un tipo desconocido o cantidades negativas se rechazan en el borde,
// nunca se toleran silenciosamente.
func (t *Transaction) Validate() error {
	switch t.Type {
	case TransactionTypeBuy, TransactionTypeSell, TransactionTypeDividend:
	default:
		return &ValidationError{Field: "type", Message: "tipo de transacción inválido: " + t.Type}
	}

	if t.Quantity < 0 {
		return &ValidationError{Field: "quantity", Message: "la cantidad no puede ser negativa"}
	}

	if t.PricePerShare < 0 {
		return &ValidationError{Field: "price_per_share", Message: "el precio no puede ser negativo"}
	}

	if t.Fee < 0 {
		return &ValidationError{Field: "fee", Message: "la comisión no puede ser negativa"}
	}

	// Por convención las transacciones de dividendos llevan cantidad cero
	if t.Type == TransactionTypeDividend && t.Quantity != 0 {
		return &ValidationError{Field: "quantity", Message: "una transacción DIVIDEND debe tener cantidad cero"}
	}

	return nil
}
