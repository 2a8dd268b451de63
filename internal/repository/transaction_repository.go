package repository

import (
	"database/sql"
	"time"

	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/models"
)

// TransactionRepository maneja las operaciones sobre transacciones.
// Las transacciones son inmutables: solo hay inserción y lectura.
type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) CreateTransaction(tx *models.Transaction) error {
	// Rechazar en el borde cualquier transacción malformada
	if err := tx.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO transactions (id, portfolio_id, stock_id, type, quantity, price_per_share, fee, date, note)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.Exec(query,
		tx.ID,
		tx.PortfolioID,
		tx.StockID,
		tx.Type,
		tx.Quantity,
		tx.PricePerShare,
		tx.Fee,
		tx.Date,
		tx.Note,
	)
	return err
}

// GetTransactionsByPortfolioID obtiene las transacciones de un portafolio
// ordenadas por fecha ascendente, que es el orden que necesita el cálculo
// de tenencias para ser determinista
func (r *TransactionRepository) GetTransactionsByPortfolioID(portfolioID string) ([]models.Transaction, error) {
	query := `
		SELECT id, portfolio_id, stock_id, type, quantity, price_per_share, fee, date, note, created_at
		FROM transactions
		WHERE portfolio_id = ?
		ORDER BY date ASC, created_at ASC`

	return r.queryTransactions(query, portfolioID)
}

// GetTransactionsSince obtiene las transacciones de un portafolio desde una
// fecha dada. Se usa para armar el contenido de los reportes por periodo.
func (r *TransactionRepository) GetTransactionsSince(portfolioID string, since time.Time) ([]models.Transaction, error) {
	query := `
		SELECT id, portfolio_id, stock_id, type, quantity, price_per_share, fee, date, note, created_at
		FROM transactions
		WHERE portfolio_id = ? AND date >= ?
		ORDER BY date ASC, created_at ASC`

	return r.queryTransactions(query, portfolioID, since)
}

// GetUserTransactions obtiene todas las transacciones del usuario entre
// todos sus portafolios, las más recientes primero
func (r *TransactionRepository) GetUserTransactions(userID string) ([]models.Transaction, error) {
	query := `
		SELECT t.id, t.portfolio_id, t.stock_id, t.type, t.quantity, t.price_per_share, t.fee, t.date, t.note, t.created_at
		FROM transactions t
		INNER JOIN portfolios p ON p.id = t.portfolio_id
		WHERE p.user_id = ?
		ORDER BY t.date DESC`

	return r.queryTransactions(query, userID)
}

func (r *TransactionRepository) queryTransactions(query string, args ...interface{}) ([]models.Transaction, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var tx models.Transaction
		var note sql.NullString
		err := rows.Scan(
			&tx.ID,
			&tx.PortfolioID,
			&tx.StockID,
			&tx.Type,
			&tx.Quantity,
			&tx.PricePerShare,
			&tx.Fee,
			&tx.Date,
			&note,
			&tx.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		tx.Note = note.String
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}
