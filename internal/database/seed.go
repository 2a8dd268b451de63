package database

import (
	"database/sql"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/models"
)

// Acciones iniciales disponibles en la plataforma
var seedStocks = []models.Stock{
	{ID: "AAPL", Name: "Apple Inc.", Exchange: "NASDAQ", Currency: "USD"},
	{ID: "TSLA", Name: "Tesla Inc.", Exchange: "NASDAQ", Currency: "USD"},
	{ID: "GOOGL", Name: "Alphabet Inc.", Exchange: "NASDAQ", Currency: "USD"},
}

// Cantidad de días de historial de precios que se generan al inicializar
const seedPriceDays = 100

// SeedInitialData inserta las acciones iniciales y un historial simulado de
// precios si la base de datos está vacía. Es idempotente: si ya existe al
// menos una acción no hace nada.
func SeedInitialData(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM stocks`).Scan(&count); err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	log.Println("Base de datos vacía, insertando acciones y precios iniciales...")

	for _, stock := range seedStocks {
		_, err := db.Exec(
			`INSERT INTO stocks (id, name, exchange, currency) VALUES (?, ?, ?, ?)`,
			stock.ID, stock.Name, stock.Exchange, stock.Currency,
		)
		if err != nil {
			return err
		}

		if err := seedPriceHistory(db, stock.ID); err != nil {
			return err
		}
	}

	log.Printf("Se insertaron %d acciones con %d días de precios cada una", len(seedStocks), seedPriceDays)
	return nil
}

// seedPriceHistory genera un historial de precios con una caminata aleatoria,
// un precio por día hacia atrás desde hoy
func seedPriceHistory(db *sql.DB, stockID string) error {
	// Insertar dentro de una transacción para no pagar un fsync por fila
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	basePrice := float64(rand.Intn(10000) + 5000)
	currentDate := time.Now()

	for i := 0; i < seedPriceDays; i++ {
		// Fluctuación diaria de ±3%
		fluctuation := rand.Float64()*0.06 - 0.03
		basePrice = math.Max(100, math.Floor(basePrice*(1+fluctuation)))

		_, err := tx.Exec(
			`INSERT INTO stock_prices (id, stock_id, price, date) VALUES (?, ?, ?, ?)`,
			models.GenerateUUID(), stockID, int64(basePrice), currentDate,
		)
		if err != nil {
			tx.Rollback()
			return err
		}

		currentDate = currentDate.AddDate(0, 0, -1)
	}

	return tx.Commit()
}
