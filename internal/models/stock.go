package models

import "time"

// Stock representa una acción que puede ser operada en la plataforma
type Stock struct {
	ID       string `json:"id"` // Ticker de la acción (ej: AAPL)
	Name     string `json:"name" binding:"required"`
	Exchange string `json:"exchange" binding:"required"`
	Currency string `json:"currency" binding:"required"`
}

// StockPrice representa una observación de precio de una acción en una fecha.
// El precio se almacena como entero, igual que en la base de datos.
type StockPrice struct {
	ID        string    `json:"id"`
	StockID   string    `json:"stock_id"`
	Price     int64     `json:"price"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// Day devuelve la fecha de la observación en formato ISO (sin hora)
func (p StockPrice) Day() string {
	return p.Date.Format("2006-01-02")
}
