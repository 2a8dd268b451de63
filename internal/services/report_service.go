package services

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/models"
)

// ReportContent es el contenido estructurado de un reporte, listo para
// entregarse al renderizador
type ReportContent struct {
	ReportID         string
	PortfolioName    string
	Period           string
	PeriodLabel      string
	StartDate        time.Time
	GeneratedAt      time.Time
	TransactionCount int
}

// ReportRenderer convierte el contenido de un reporte en un documento.
// Devuelve el nombre del archivo generado. La generación del documento es
// un colaborador opaco: este servicio no sabe ni le importa el formato.
type ReportRenderer interface {
	Render(content ReportContent) (string, error)
}

// PeriodStart calcula la fecha de inicio de un periodo de reporte:
// monthly arranca el primer día del mes actual y yearly el 1 de enero
// del año actual
func PeriodStart(period string, now time.Time) (time.Time, error) {
	switch period {
	case models.ReportPeriodMonthly:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	case models.ReportPeriodYearly:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), nil
	default:
		return time.Time{}, &models.ValidationError{Field: "period", Message: "periodo de reporte inválido: " + period}
	}
}

// periodLabel devuelve la etiqueta del periodo para mostrar
func periodLabel(period string) string {
	switch period {
	case models.ReportPeriodMonthly:
		return "mensual"
	case models.ReportPeriodYearly:
		return "anual"
	default:
		return period
	}
}

// BuildReportContent arma el contenido de un reporte a partir del
// portafolio y sus transacciones dentro del periodo
func BuildReportContent(reportID string, portfolio models.Portfolio, period string, transactions []models.Transaction, now time.Time) (ReportContent, error) {
	startDate, err := PeriodStart(period, now)
	if err != nil {
		return ReportContent{}, err
	}

	return ReportContent{
		ReportID:         reportID,
		PortfolioName:    portfolio.Name,
		Period:           period,
		PeriodLabel:      periodLabel(period),
		StartDate:        startDate,
		GeneratedAt:      now,
		TransactionCount: len(transactions),
	}, nil
}

// Summary devuelve el resumen textual que se guarda junto al reporte
func (c ReportContent) Summary() string {
	return fmt.Sprintf("Reporte %s simple - %d transacciones", c.PeriodLabel, c.TransactionCount)
}

// HTMLReportRenderer escribe el reporte como un documento HTML simple en el
// directorio de reportes públicos
type HTMLReportRenderer struct {
	baseDir string
}

func NewHTMLReportRenderer(baseDir string) *HTMLReportRenderer {
	return &HTMLReportRenderer{baseDir: baseDir}
}

func (r *HTMLReportRenderer) Render(content ReportContent) (string, error) {
	document := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Reporte</title>
  <style>
    body {
      font-family: Arial, sans-serif;
      padding: 40px;
      color: #333;
    }
    h1 { color: #b3b3b3; }
    .info {
      background: #f1f1f1;
      padding: 20px;
      border-radius: 8px;
      margin: 20px 0;
    }
  </style>
</head>
<body>
  <h1>Reporte %s</h1>

  <div class="info">
    <p><strong>Portafolio:</strong> %s</p>
    <p><strong>Periodo:</strong> desde %s</p>
    <p><strong>Generado:</strong> %s</p>
    <p><strong>Transacciones encontradas:</strong> %d</p>
  </div>

  <h2>Resumen</h2>
  <p>El portafolio "%s" tiene %d transacciones en este periodo.</p>
</body>
</html>
`,
		content.PeriodLabel,
		content.PortfolioName,
		content.StartDate.Format("2006-01-02"),
		content.GeneratedAt.Format("2006-01-02"),
		content.TransactionCount,
		content.PortfolioName,
		content.TransactionCount,
	)

	if err := os.MkdirAll(r.baseDir, 0755); err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("report-%s.html", content.ReportID)
	filePath := filepath.Join(r.baseDir, fileName)

	if err := os.WriteFile(filePath, []byte(document), 0644); err != nil {
		return "", err
	}

	return fileName, nil
}
