package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodStart_Mensual(t *testing.T) {
	now := time.Date(2025, 7, 19, 15, 30, 0, 0, time.UTC)

	start, err := PeriodStart(models.ReportPeriodMonthly, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), start)
}

func TestPeriodStart_Anual(t *testing.T) {
	now := time.Date(2025, 7, 19, 15, 30, 0, 0, time.UTC)

	start, err := PeriodStart(models.ReportPeriodYearly, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), start)
}

func TestPeriodStart_PeriodoInvalido(t *testing.T) {
	_, err := PeriodStart("quarterly", time.Now())
	require.Error(t, err)
	assert.True(t, models.IsValidationError(err))
}

func TestBuildReportContent(t *testing.T) {
	portfolio := models.Portfolio{ID: "p1", Name: "Fondo de Retiro"}
	transactions := []models.Transaction{{ID: "t1"}, {ID: "t2"}, {ID: "t3"}}
	now := time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC)

	content, err := BuildReportContent("r1", portfolio, models.ReportPeriodMonthly, transactions, now)
	require.NoError(t, err)

	assert.Equal(t, "r1", content.ReportID)
	assert.Equal(t, "Fondo de Retiro", content.PortfolioName)
	assert.Equal(t, "mensual", content.PeriodLabel)
	assert.Equal(t, 3, content.TransactionCount)
	assert.Equal(t, "Reporte mensual simple - 3 transacciones", content.Summary())
}

func TestHTMLReportRenderer(t *testing.T) {
	dir := t.TempDir()
	renderer := NewHTMLReportRenderer(dir)

	content := ReportContent{
		ReportID:         "abc123",
		PortfolioName:    "Fondo de Retiro",
		Period:           models.ReportPeriodYearly,
		PeriodLabel:      "anual",
		StartDate:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		GeneratedAt:      time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC),
		TransactionCount: 2,
	}

	fileName, err := renderer.Render(content)
	require.NoError(t, err)
	assert.Equal(t, "report-abc123.html", fileName)

	document, err := os.ReadFile(filepath.Join(dir, fileName))
	require.NoError(t, err)
	assert.Contains(t, string(document), "Fondo de Retiro")
	assert.Contains(t, string(document), "Reporte anual")
	assert.Contains(t, string(document), "2")
}
