package repository

import (
	"testing"
	"time"

	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPortfolio(t *testing.T, repo *PortfolioRepository, userID string) *models.Portfolio {
	t.Helper()

	portfolio := &models.Portfolio{
		ID:           models.GenerateUUID(),
		UserID:       userID,
		Name:         "Fondo de Retiro",
		BaseCurrency: "USD",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, repo.CreatePortfolio(portfolio))
	return portfolio
}

func TestCreateTransaction_RechazaTipoInvalido(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	portfolio := seedPortfolio(t, NewPortfolioRepository(db), "u1")

	tx := &models.Transaction{
		ID:            models.GenerateUUID(),
		PortfolioID:   portfolio.ID,
		StockID:       "AAPL",
		Type:          "TRANSFER",
		Quantity:      1,
		PricePerShare: 100,
		Date:          time.Now(),
	}

	err := repo.CreateTransaction(tx)
	require.Error(t, err)
	assert.True(t, models.IsValidationError(err))

	// Nada quedó persistido
	transactions, err := repo.GetTransactionsByPortfolioID(portfolio.ID)
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestGetTransactionsByPortfolioID_OrdenAscendente(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	portfolio := seedPortfolio(t, NewPortfolioRepository(db), "u1")

	days := []string{"2025-03-01", "2025-01-15", "2025-02-10"}
	for _, day := range days {
		date, err := time.Parse("2006-01-02", day)
		require.NoError(t, err)

		tx := &models.Transaction{
			ID:            models.GenerateUUID(),
			PortfolioID:   portfolio.ID,
			StockID:       "AAPL",
			Type:          models.TransactionTypeBuy,
			Quantity:      1,
			PricePerShare: 100,
			Date:          date,
		}
		require.NoError(t, repo.CreateTransaction(tx))
	}

	transactions, err := repo.GetTransactionsByPortfolioID(portfolio.ID)
	require.NoError(t, err)
	require.Len(t, transactions, 3)

	// El cálculo de tenencias necesita orden de fecha ascendente
	assert.Equal(t, "2025-01-15", transactions[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2025-02-10", transactions[1].Date.Format("2006-01-02"))
	assert.Equal(t, "2025-03-01", transactions[2].Date.Format("2006-01-02"))
}

func TestGetTransactionsSince(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	portfolio := seedPortfolio(t, NewPortfolioRepository(db), "u1")

	for _, day := range []string{"2025-01-15", "2025-06-10", "2025-07-05"} {
		date, err := time.Parse("2006-01-02", day)
		require.NoError(t, err)

		tx := &models.Transaction{
			ID:            models.GenerateUUID(),
			PortfolioID:   portfolio.ID,
			StockID:       "AAPL",
			Type:          models.TransactionTypeBuy,
			Quantity:      1,
			PricePerShare: 100,
			Date:          date,
		}
		require.NoError(t, repo.CreateTransaction(tx))
	}

	since := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	transactions, err := repo.GetTransactionsSince(portfolio.ID, since)
	require.NoError(t, err)
	assert.Len(t, transactions, 2)
}

func TestGetUserTransactions_CruzaPortafolios(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	portfolioRepo := NewPortfolioRepository(db)

	p1 := seedPortfolio(t, portfolioRepo, "u1")
	p2 := seedPortfolio(t, portfolioRepo, "u1")
	ajeno := seedPortfolio(t, portfolioRepo, "u2")

	for _, portfolioID := range []string{p1.ID, p2.ID, ajeno.ID} {
		tx := &models.Transaction{
			ID:            models.GenerateUUID(),
			PortfolioID:   portfolioID,
			StockID:       "AAPL",
			Type:          models.TransactionTypeBuy,
			Quantity:      1,
			PricePerShare: 100,
			Date:          time.Now(),
		}
		require.NoError(t, repo.CreateTransaction(tx))
	}

	transactions, err := repo.GetUserTransactions("u1")
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	for _, tx := range transactions {
		assert.NotEqual(t, ajeno.ID, tx.PortfolioID)
	}
}
