package services

import (
	"errors"
	"testing"
	"time"

	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDataSource implementa DataSource en memoria para los tests
type fakeDataSource struct {
	portfolios   map[string][]models.Portfolio
	transactions map[string][]models.Transaction
	prices       []models.StockPrice

	failListTransactions error
}

func (f *fakeDataSource) ListPortfolios(userID string) ([]models.Portfolio, error) {
	return f.portfolios[userID], nil
}

func (f *fakeDataSource) ListTransactions(portfolioID string) ([]models.Transaction, error) {
	if f.failListTransactions != nil {
		return nil, f.failListTransactions
	}
	return f.transactions[portfolioID], nil
}

func (f *fakeDataSource) LatestPrice(stockID string) (*models.StockPrice, error) {
	var latest *models.StockPrice
	for i := range f.prices {
		p := f.prices[i]
		if p.StockID != stockID {
			continue
		}
		if latest == nil || p.Date.After(latest.Date) {
			latest = &f.prices[i]
		}
	}
	return latest, nil
}

func (f *fakeDataSource) PriceOnDate(stockID, day string) (*models.StockPrice, error) {
	for i := range f.prices {
		if f.prices[i].StockID == stockID && f.prices[i].Day() == day {
			return &f.prices[i], nil
		}
	}
	return nil, nil
}

func (f *fakeDataSource) DistinctPriceDates() ([]string, error) {
	seen := map[string]bool{}
	dates := []string{}
	for _, p := range f.prices {
		if !seen[p.Day()] {
			seen[p.Day()] = true
			dates = append(dates, p.Day())
		}
	}
	// Los precios del fake ya están cargados en orden de fecha
	return dates, nil
}

func (f *fakeDataSource) ListPricesForStocks(stockIDs []string) ([]models.StockPrice, error) {
	wanted := map[string]bool{}
	for _, id := range stockIDs {
		wanted[id] = true
	}
	result := []models.StockPrice{}
	for _, p := range f.prices {
		if wanted[p.StockID] {
			result = append(result, p)
		}
	}
	return result, nil
}

func day(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputePortfolioSnapshot_EjemploCompleto(t *testing.T) {
	// El ejemplo de referencia: dos compras y un dividendo, precios
	// actuales AAPL=160 y TSLA=650
	source := &fakeDataSource{
		portfolios: map[string][]models.Portfolio{
			"u1": {{ID: "p1", UserID: "u1", Name: "Fondo de Retiro", BaseCurrency: "USD"}},
		},
		transactions: map[string][]models.Transaction{
			"p1": {
				{ID: "t1", PortfolioID: "p1", StockID: "AAPL", Type: models.TransactionTypeBuy, Quantity: 10, PricePerShare: 150, Fee: 1, Date: day("2025-01-15")},
				{ID: "t2", PortfolioID: "p1", StockID: "TSLA", Type: models.TransactionTypeBuy, Quantity: 5, PricePerShare: 700, Fee: 2, Date: day("2025-02-10")},
				{ID: "t3", PortfolioID: "p1", StockID: "AAPL", Type: models.TransactionTypeDividend, Quantity: 0, PricePerShare: 1.2, Date: day("2025-03-01")},
			},
		},
		prices: []models.StockPrice{
			{ID: "pr1", StockID: "AAPL", Price: 155, Date: day("2025-03-01")},
			{ID: "pr2", StockID: "TSLA", Price: 660, Date: day("2025-03-01")},
			{ID: "pr3", StockID: "AAPL", Price: 160, Date: day("2025-03-02")},
			{ID: "pr4", StockID: "TSLA", Price: 650, Date: day("2025-03-02")},
		},
	}

	result, err := NewSnapshotService(source).ComputePortfolioSnapshot("u1")
	require.NoError(t, err)

	require.Len(t, result.Portfolios, 1)
	summary := result.Portfolios[0]

	require.Len(t, summary.Holdings, 2)
	assert.Equal(t, models.Holding{StockID: "AAPL", Quantity: 10, AccumulatedCost: 1501, LatestPrice: 160, Value: 1600}, summary.Holdings[0])
	assert.Equal(t, models.Holding{StockID: "TSLA", Quantity: 5, AccumulatedCost: 3502, LatestPrice: 650, Value: 3250}, summary.Holdings[1])

	assert.Equal(t, 5003.0, result.TotalInvested)
	assert.Equal(t, 4850.0, result.CurrentTotalValue)
	assert.Equal(t, 5003.0, summary.Invested)
	assert.Equal(t, 4850.0, summary.CurrentValue)
	assert.Equal(t, -153.0, summary.Gain)

	// La serie combinada tiene un punto por cada fecha con precios
	require.Len(t, result.Graph, 2)
	assert.Equal(t, models.GraphPoint{Date: "2025-03-01", Price: 155*10 + 660*5}, result.Graph[0])
	assert.Equal(t, models.GraphPoint{Date: "2025-03-02", Price: 160*10 + 650*5}, result.Graph[1])

	// Y cada portafolio lleva su propia serie, también un punto por fecha
	require.Len(t, summary.Graph, 2)
	assert.Equal(t, result.Graph, summary.Graph)
}

func TestComputePortfolioSnapshot_VariosPortafolios(t *testing.T) {
	source := &fakeDataSource{
		portfolios: map[string][]models.Portfolio{
			"u1": {
				{ID: "p1", UserID: "u1", Name: "Largo plazo", BaseCurrency: "USD"},
				{ID: "p2", UserID: "u1", Name: "Especulativo", BaseCurrency: "USD"},
			},
		},
		transactions: map[string][]models.Transaction{
			"p1": {{ID: "t1", PortfolioID: "p1", StockID: "AAPL", Type: models.TransactionTypeBuy, Quantity: 2, PricePerShare: 100, Date: day("2025-01-01")}},
			"p2": {{ID: "t2", PortfolioID: "p2", StockID: "TSLA", Type: models.TransactionTypeBuy, Quantity: 1, PricePerShare: 500, Date: day("2025-01-02")}},
		},
		prices: []models.StockPrice{
			{ID: "pr1", StockID: "AAPL", Price: 120, Date: day("2025-01-03")},
			{ID: "pr2", StockID: "TSLA", Price: 550, Date: day("2025-01-03")},
		},
	}

	result, err := NewSnapshotService(source).ComputePortfolioSnapshot("u1")
	require.NoError(t, err)

	require.Len(t, result.Portfolios, 2)
	assert.Equal(t, 200.0, result.Portfolios[0].Invested)
	assert.Equal(t, 500.0, result.Portfolios[1].Invested)
	assert.Equal(t, 700.0, result.TotalInvested)
	assert.Equal(t, 2*120.0+550.0, result.CurrentTotalValue)

	// La serie combinada suma las tenencias de todos los portafolios
	require.Len(t, result.Graph, 1)
	assert.Equal(t, 2*120.0+550.0, result.Graph[0].Price)
}

func TestComputePortfolioSnapshot_UsuarioSinPortafolios(t *testing.T) {
	source := &fakeDataSource{portfolios: map[string][]models.Portfolio{}}

	result, err := NewSnapshotService(source).ComputePortfolioSnapshot("u1")
	require.NoError(t, err)

	assert.Empty(t, result.Portfolios)
	assert.Zero(t, result.TotalInvested)
	assert.Zero(t, result.CurrentTotalValue)
	assert.Empty(t, result.Graph)
}

func TestComputePortfolioSnapshot_FallaDeLecturaAborta(t *testing.T) {
	// Una lectura que falla aborta el snapshot completo: el error se
	// propaga sin transformar y no hay resultado parcial
	boom := errors.New("fuente de datos caída")
	source := &fakeDataSource{
		portfolios: map[string][]models.Portfolio{
			"u1": {{ID: "p1", UserID: "u1"}},
		},
		failListTransactions: boom,
	}

	result, err := NewSnapshotService(source).ComputePortfolioSnapshot("u1")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, boom)
}

func TestComputePortfolioSnapshot_PoliticaCarryForward(t *testing.T) {
	source := &fakeDataSource{
		portfolios: map[string][]models.Portfolio{
			"u1": {{ID: "p1", UserID: "u1"}},
		},
		transactions: map[string][]models.Transaction{
			"p1": {{ID: "t1", PortfolioID: "p1", StockID: "X", Type: models.TransactionTypeBuy, Quantity: 1, PricePerShare: 90, Date: day("2024-12-31")}},
		},
		prices: []models.StockPrice{
			{ID: "pr1", StockID: "X", Price: 100, Date: day("2025-01-01")},
			{ID: "pr2", StockID: "Y", Price: 5, Date: day("2025-01-02")},
			{ID: "pr3", StockID: "X", Price: 110, Date: day("2025-01-03")},
		},
	}

	// Con la política por defecto el 02 aporta cero
	exact, err := NewSnapshotService(source).ComputePortfolioSnapshot("u1")
	require.NoError(t, err)
	require.Len(t, exact.Graph, 3)
	assert.Equal(t, 0.0, exact.Graph[1].Price)

	// Con carry-forward el 02 arrastra el precio del 01
	carried, err := NewSnapshotService(source).WithPricePolicy(PricePolicyCarryForward).ComputePortfolioSnapshot("u1")
	require.NoError(t, err)
	require.Len(t, carried.Graph, 3)
	assert.Equal(t, 100.0, carried.Graph[1].Price)
}
