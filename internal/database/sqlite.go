package database

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

var DB *sql.DB

func InitDB() error {
	// Crear el directorio database si no existe
	if err := os.MkdirAll("database", 0755); err != nil {
		return err
	}

	var err error
	DB, err = sql.Open("sqlite3", filepath.Join("database", "portfolios.db"))
	if err != nil {
		return err
	}

	return CreateTables(DB)
}

// CreateTables crea el esquema completo sobre la conexión recibida.
// Se expone por separado para poder usarlo también en los tests.
func CreateTables(db *sql.DB) error {
	// Crear tabla de usuarios
	createUsersTableSQL := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		name TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := db.Exec(createUsersTableSQL); err != nil {
		return err
	}

	// Crear tabla de acciones
	createStocksTableSQL := `
	CREATE TABLE IF NOT EXISTS stocks (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		exchange TEXT NOT NULL,
		currency TEXT NOT NULL
	);`

	if _, err := db.Exec(createStocksTableSQL); err != nil {
		return err
	}

	// Crear tabla de precios históricos. El precio se guarda como entero,
	// y created_at desempata cuando hay más de una observación por día.
	createStockPricesTableSQL := `
	CREATE TABLE IF NOT EXISTS stock_prices (
		id TEXT PRIMARY KEY,
		stock_id TEXT NOT NULL,
		price INTEGER NOT NULL,
		date DATETIME NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(stock_id) REFERENCES stocks(id) ON DELETE CASCADE
	);`

	if _, err := db.Exec(createStockPricesTableSQL); err != nil {
		return err
	}

	// Crear tabla de portafolios
	createPortfoliosTableSQL := `
	CREATE TABLE IF NOT EXISTS portfolios (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		base_currency TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
	);`

	if _, err := db.Exec(createPortfoliosTableSQL); err != nil {
		return err
	}

	// Crear tabla de transacciones. No hay ruta de UPDATE: las
	// transacciones son inmutables una vez creadas.
	createTransactionsTableSQL := `
	CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		portfolio_id TEXT NOT NULL,
		stock_id TEXT NOT NULL,
		type TEXT NOT NULL,
		quantity REAL NOT NULL,
		price_per_share REAL NOT NULL,
		fee REAL DEFAULT 0,
		date DATETIME NOT NULL,
		note TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(portfolio_id) REFERENCES portfolios(id) ON DELETE CASCADE,
		FOREIGN KEY(stock_id) REFERENCES stocks(id)
	);`

	if _, err := db.Exec(createTransactionsTableSQL); err != nil {
		return err
	}

	// Crear tabla de reportes generados
	createReportsTableSQL := `
	CREATE TABLE IF NOT EXISTS reports (
		id TEXT PRIMARY KEY,
		portfolio_id TEXT NOT NULL,
		period TEXT NOT NULL,
		generated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		summary TEXT,
		uri TEXT NOT NULL,
		FOREIGN KEY(portfolio_id) REFERENCES portfolios(id) ON DELETE CASCADE
	);`

	if _, err := db.Exec(createReportsTableSQL); err != nil {
		return err
	}

	// Crear índices para las consultas más frecuentes
	createIndexesSQL := `
	CREATE INDEX IF NOT EXISTS idx_stock_prices_stock_date ON stock_prices(stock_id, date);
	CREATE INDEX IF NOT EXISTS idx_transactions_portfolio ON transactions(portfolio_id);
	CREATE INDEX IF NOT EXISTS idx_portfolios_user ON portfolios(user_id);`

	if _, err := db.Exec(createIndexesSQL); err != nil {
		return err
	}

	// Ejecutar migraciones para actualizar el esquema
	return RunMigrations(db)
}
