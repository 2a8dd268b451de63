package repository

import (
	"database/sql"
	"strings"

	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/models"
)

// StockRepository maneja las acciones y sus precios históricos
type StockRepository struct {
	db *sql.DB
}

func NewStockRepository(db *sql.DB) *StockRepository {
	return &StockRepository{db: db}
}

func (r *StockRepository) GetStocks() ([]models.Stock, error) {
	query := `SELECT id, name, exchange, currency FROM stocks ORDER BY id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stocks := []models.Stock{}
	for rows.Next() {
		var s models.Stock
		if err := rows.Scan(&s.ID, &s.Name, &s.Exchange, &s.Currency); err != nil {
			return nil, err
		}
		stocks = append(stocks, s)
	}

	return stocks, rows.Err()
}

// StockExists verifica que el ticker exista en la plataforma
func (r *StockRepository) StockExists(stockID string) (bool, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM stocks WHERE id = ?`, stockID).Scan(&count)
	return count > 0, err
}

func (r *StockRepository) CreatePrice(price *models.StockPrice) error {
	query := `
		INSERT INTO stock_prices (id, stock_id, price, date)
		VALUES (?, ?, ?, ?)`

	_, err := r.db.Exec(query, price.ID, price.StockID, price.Price, price.Date)
	return err
}

// GetLatestPrice obtiene el precio más reciente de una acción.
// Devuelve nil (sin error) cuando no hay ningún precio registrado.
// Ante observaciones del mismo día gana la insertada más recientemente.
func (r *StockRepository) GetLatestPrice(stockID string) (*models.StockPrice, error) {
	query := `
		SELECT id, stock_id, price, date, created_at
		FROM stock_prices
		WHERE stock_id = ?
		ORDER BY date DESC, created_at DESC
		LIMIT 1`

	return r.queryPrice(query, stockID)
}

// GetPriceOnDate obtiene el precio de una acción en un día exacto (formato
// ISO). Devuelve nil cuando no hay observación para ese día.
func (r *StockRepository) GetPriceOnDate(stockID, day string) (*models.StockPrice, error) {
	query := `
		SELECT id, stock_id, price, date, created_at
		FROM stock_prices
		WHERE stock_id = ? AND date(date) = ?
		ORDER BY created_at DESC
		LIMIT 1`

	return r.queryPrice(query, stockID, day)
}

func (r *StockRepository) queryPrice(query string, args ...interface{}) (*models.StockPrice, error) {
	p := &models.StockPrice{}
	err := r.db.QueryRow(query, args...).Scan(
		&p.ID,
		&p.StockID,
		&p.Price,
		&p.Date,
		&p.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

// GetDistinctPriceDates obtiene el conjunto de fechas (días ISO) con al
// menos una observación de precio, ordenado ascendente
func (r *StockRepository) GetDistinctPriceDates() ([]string, error) {
	query := `SELECT DISTINCT date(date) FROM stock_prices ORDER BY date(date) ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dates := []string{}
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		dates = append(dates, day)
	}

	return dates, rows.Err()
}

// GetPricesForStocks obtiene todo el historial de precios de un conjunto de
// acciones en una sola consulta, ordenado por fecha y luego por inserción.
// Con esto el agregador arma su índice (acción, día) -> precio en una sola
// pasada en lugar de una consulta por día por tenencia.
func (r *StockRepository) GetPricesForStocks(stockIDs []string) ([]models.StockPrice, error) {
	if len(stockIDs) == 0 {
		return []models.StockPrice{}, nil
	}

	placeholders := strings.Repeat("?,", len(stockIDs))
	placeholders = placeholders[:len(placeholders)-1]

	query := `
		SELECT id, stock_id, price, date, created_at
		FROM stock_prices
		WHERE stock_id IN (` + placeholders + `)
		ORDER BY date ASC, created_at ASC`

	args := make([]interface{}, len(stockIDs))
	for i, id := range stockIDs {
		args[i] = id
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prices := []models.StockPrice{}
	for rows.Next() {
		var p models.StockPrice
		err := rows.Scan(&p.ID, &p.StockID, &p.Price, &p.Date, &p.CreatedAt)
		if err != nil {
			return nil, err
		}
		prices = append(prices, p)
	}

	return prices, rows.Err()
}
