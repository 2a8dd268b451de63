package repository

import (
	"database/sql"
	"log"
	"time"

	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/models"
	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/services"
)

// SeedRepository inserta los datos de ejemplo de un usuario recién
// registrado: un portafolio de demostración con transacciones y un par de
// reportes ya generados
type SeedRepository struct {
	db         *sql.DB
	portfolios *PortfolioRepository
	txs        *TransactionRepository
	reports    *ReportRepository
	renderer   services.ReportRenderer
}

func NewSeedRepository(db *sql.DB, renderer services.ReportRenderer) *SeedRepository {
	return &SeedRepository{
		db:         db,
		portfolios: NewPortfolioRepository(db),
		txs:        NewTransactionRepository(db),
		reports:    NewReportRepository(db),
		renderer:   renderer,
	}
}

// SeedDemoData crea los datos de ejemplo para un usuario nuevo. Es un hook
// explícito que invoca el handler de registro, con garantía de idempotencia:
// si el usuario ya tiene portafolios no hace nada.
func (r *SeedRepository) SeedDemoData(userID string) error {
	count, err := r.portfolios.CountPortfolios(userID)
	if err != nil {
		return err
	}

	if count > 0 {
		log.Printf("El usuario %s ya tiene portafolios, se omite el seeding", userID)
		return nil
	}

	portfolio := &models.Portfolio{
		ID:           models.GenerateUUID(),
		UserID:       userID,
		Name:         "Fondo de Retiro",
		BaseCurrency: "USD",
		CreatedAt:    time.Now(),
	}

	if err := r.portfolios.CreatePortfolio(portfolio); err != nil {
		return err
	}

	transactions := []models.Transaction{
		{
			ID:            models.GenerateUUID(),
			PortfolioID:   portfolio.ID,
			StockID:       "AAPL",
			Type:          models.TransactionTypeBuy,
			Quantity:      10,
			PricePerShare: 150,
			Fee:           1,
			Date:          time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			Note:          "Compra inicial",
		},
		{
			ID:            models.GenerateUUID(),
			PortfolioID:   portfolio.ID,
			StockID:       "TSLA",
			Type:          models.TransactionTypeBuy,
			Quantity:      5,
			PricePerShare: 700,
			Fee:           2,
			Date:          time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
			Note:          "Crecimiento agresivo",
		},
		{
			ID:            models.GenerateUUID(),
			PortfolioID:   portfolio.ID,
			StockID:       "AAPL",
			Type:          models.TransactionTypeDividend,
			Quantity:      0,
			PricePerShare: 1.2, // dividendo por acción
			Fee:           0,
			Date:          time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			Note:          "Dividendo trimestral",
		},
	}

	for i := range transactions {
		if err := r.txs.CreateTransaction(&transactions[i]); err != nil {
			return err
		}
	}

	// Generar también un par de reportes de ejemplo con su documento
	for _, period := range []string{models.ReportPeriodMonthly, models.ReportPeriodYearly} {
		if err := r.seedReport(portfolio, period, transactions); err != nil {
			// Un reporte de ejemplo que falla no arruina el registro
			log.Printf("Error al generar el reporte de ejemplo (%s): %v", period, err)
		}
	}

	log.Printf("Datos de ejemplo creados para el usuario %s", userID)
	return nil
}

func (r *SeedRepository) seedReport(portfolio *models.Portfolio, period string, transactions []models.Transaction) error {
	reportID := models.GenerateUUID()

	content, err := services.BuildReportContent(reportID, *portfolio, period, transactions, time.Now())
	if err != nil {
		return err
	}

	fileName, err := r.renderer.Render(content)
	if err != nil {
		return err
	}

	return r.reports.CreateReport(&models.Report{
		ID:          reportID,
		PortfolioID: portfolio.ID,
		Period:      period,
		GeneratedAt: time.Now(),
		Summary:     content.Summary(),
		URI:         "public/reports/" + fileName,
	})
}
