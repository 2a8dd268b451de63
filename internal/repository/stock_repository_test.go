package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/database"
	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

// newTestDB crea una base en memoria con el esquema completo
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// Cada conexión nueva sería otra base en memoria distinta
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.CreateTables(db))
	return db
}

func insertPrice(t *testing.T, db *sql.DB, stockID string, day string, value int64, createdAt time.Time) {
	t.Helper()

	date, err := time.Parse("2006-01-02", day)
	require.NoError(t, err)

	_, err = db.Exec(
		`INSERT INTO stock_prices (id, stock_id, price, date, created_at) VALUES (?, ?, ?, ?, ?)`,
		models.GenerateUUID(), stockID, value, date, createdAt,
	)
	require.NoError(t, err)
}

func TestGetLatestPrice(t *testing.T) {
	db := newTestDB(t)
	repo := NewStockRepository(db)

	t0 := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	insertPrice(t, db, "AAPL", "2025-03-01", 150, t0)
	insertPrice(t, db, "AAPL", "2025-03-02", 160, t0)

	price, err := repo.GetLatestPrice("AAPL")
	require.NoError(t, err)
	require.NotNil(t, price)
	assert.Equal(t, int64(160), price.Price)
}

func TestGetLatestPrice_SinPrecios(t *testing.T) {
	repo := NewStockRepository(newTestDB(t))

	// Sin precio registrado el resultado es nil, no un error
	price, err := repo.GetLatestPrice("ZZZZ")
	require.NoError(t, err)
	assert.Nil(t, price)
}

func TestGetLatestPrice_EmpateGanaLaUltimaInsertada(t *testing.T) {
	// Dos observaciones del mismo día: se resuelve de forma determinista
	// a favor de la insertada más recientemente
	db := newTestDB(t)
	repo := NewStockRepository(db)

	t0 := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	insertPrice(t, db, "AAPL", "2025-03-02", 150, t0)
	insertPrice(t, db, "AAPL", "2025-03-02", 158, t0.Add(time.Hour))

	price, err := repo.GetLatestPrice("AAPL")
	require.NoError(t, err)
	require.NotNil(t, price)
	assert.Equal(t, int64(158), price.Price)
}

func TestGetPriceOnDate(t *testing.T) {
	db := newTestDB(t)
	repo := NewStockRepository(db)

	t0 := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	insertPrice(t, db, "AAPL", "2025-03-01", 150, t0)
	insertPrice(t, db, "AAPL", "2025-03-03", 160, t0)

	price, err := repo.GetPriceOnDate("AAPL", "2025-03-01")
	require.NoError(t, err)
	require.NotNil(t, price)
	assert.Equal(t, int64(150), price.Price)

	// La búsqueda es por fecha exacta: un día sin observación devuelve nil
	price, err = repo.GetPriceOnDate("AAPL", "2025-03-02")
	require.NoError(t, err)
	assert.Nil(t, price)
}

func TestGetDistinctPriceDates(t *testing.T) {
	db := newTestDB(t)
	repo := NewStockRepository(db)

	t0 := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	insertPrice(t, db, "AAPL", "2025-03-02", 150, t0)
	insertPrice(t, db, "TSLA", "2025-03-01", 700, t0)
	insertPrice(t, db, "TSLA", "2025-03-02", 710, t0)

	dates, err := repo.GetDistinctPriceDates()
	require.NoError(t, err)

	// Un día por fecha observada, ascendente, sin duplicados
	assert.Equal(t, []string{"2025-03-01", "2025-03-02"}, dates)
}

func TestGetPricesForStocks(t *testing.T) {
	db := newTestDB(t)
	repo := NewStockRepository(db)

	t0 := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	insertPrice(t, db, "AAPL", "2025-03-02", 160, t0)
	insertPrice(t, db, "AAPL", "2025-03-01", 150, t0)
	insertPrice(t, db, "TSLA", "2025-03-01", 700, t0)
	insertPrice(t, db, "GOOGL", "2025-03-01", 90, t0)

	prices, err := repo.GetPricesForStocks([]string{"AAPL", "TSLA"})
	require.NoError(t, err)

	// Solo las acciones pedidas, ordenadas por fecha y luego por inserción
	require.Len(t, prices, 3)
	assert.Equal(t, "2025-03-01", prices[0].Day())
	assert.Equal(t, "2025-03-01", prices[1].Day())
	assert.Equal(t, "2025-03-02", prices[2].Day())
	for _, p := range prices {
		assert.NotEqual(t, "GOOGL", p.StockID)
	}
}

func TestGetPricesForStocks_SinTickers(t *testing.T) {
	repo := NewStockRepository(newTestDB(t))

	prices, err := repo.GetPricesForStocks(nil)
	require.NoError(t, err)
	assert.Empty(t, prices)
}
