package repository

import (
	"database/sql"

	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/models"
	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/services"
)

// SnapshotSource implementa services.DataSource combinando los repositorios
// de portafolios, transacciones y precios. Las lecturas de último precio
// pasan por el PriceService para aprovechar su caché.
type SnapshotSource struct {
	portfolios   *PortfolioRepository
	transactions *TransactionRepository
	stocks       *StockRepository
	prices       *services.PriceService
}

func NewSnapshotSource(db *sql.DB, prices *services.PriceService) *SnapshotSource {
	return &SnapshotSource{
		portfolios:   NewPortfolioRepository(db),
		transactions: NewTransactionRepository(db),
		stocks:       NewStockRepository(db),
		prices:       prices,
	}
}

func (s *SnapshotSource) ListPortfolios(userID string) ([]models.Portfolio, error) {
	return s.portfolios.GetPortfoliosByUserID(userID)
}

func (s *SnapshotSource) ListTransactions(portfolioID string) ([]models.Transaction, error) {
	return s.transactions.GetTransactionsByPortfolioID(portfolioID)
}

func (s *SnapshotSource) LatestPrice(stockID string) (*models.StockPrice, error) {
	return s.prices.GetLatestPrice(stockID)
}

func (s *SnapshotSource) PriceOnDate(stockID, day string) (*models.StockPrice, error) {
	return s.stocks.GetPriceOnDate(stockID, day)
}

func (s *SnapshotSource) DistinctPriceDates() ([]string, error) {
	return s.stocks.GetDistinctPriceDates()
}

func (s *SnapshotSource) ListPricesForStocks(stockIDs []string) ([]models.StockPrice, error) {
	return s.stocks.GetPricesForStocks(stockIDs)
}
