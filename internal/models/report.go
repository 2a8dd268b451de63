package models

import "time"

// Periodos válidos para la generación de reportes
const (
	ReportPeriodMonthly = "monthly" // Desde el primer día del mes actual
	ReportPeriodYearly  = "yearly"  // Desde el 1 de enero del año actual
)

// Report representa un reporte generado para un portafolio.
// El documento en sí vive en disco; aquí solo se guarda la referencia.
type Report struct {
	ID          string    `json:"id"`
	PortfolioID string    `json:"portfolio_id"`
	Period      string    `json:"period"`
	GeneratedAt time.Time `json:"generated_at"`
	Summary     string    `json:"summary"`
	URI         string    `json:"uri"`
}
