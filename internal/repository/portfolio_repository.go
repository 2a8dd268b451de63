package repository

import (
	"database/sql"

	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/models"
)

// PortfolioRepository maneja las operaciones sobre portafolios
type PortfolioRepository struct {
	db *sql.DB
}

func NewPortfolioRepository(db *sql.DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

func (r *PortfolioRepository) CreatePortfolio(portfolio *models.Portfolio) error {
	query := `
		INSERT INTO portfolios (id, user_id, name, base_currency, created_at)
		VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.Exec(query,
		portfolio.ID,
		portfolio.UserID,
		portfolio.Name,
		portfolio.BaseCurrency,
		portfolio.CreatedAt,
	)
	return err
}

// GetPortfoliosByUserID obtiene todos los portafolios de un usuario
func (r *PortfolioRepository) GetPortfoliosByUserID(userID string) ([]models.Portfolio, error) {
	query := `
		SELECT id, user_id, name, base_currency, created_at
		FROM portfolios
		WHERE user_id = ?
		ORDER BY created_at ASC`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	portfolios := []models.Portfolio{}
	for rows.Next() {
		var p models.Portfolio
		err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.Name,
			&p.BaseCurrency,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		portfolios = append(portfolios, p)
	}

	return portfolios, rows.Err()
}

// GetPortfolio obtiene un portafolio verificando que pertenezca al usuario
func (r *PortfolioRepository) GetPortfolio(userID, portfolioID string) (*models.Portfolio, error) {
	query := `
		SELECT id, user_id, name, base_currency, created_at
		FROM portfolios
		WHERE id = ? AND user_id = ?`

	p := &models.Portfolio{}
	err := r.db.QueryRow(query, portfolioID, userID).Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.BaseCurrency,
		&p.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, models.ErrPortfolioNotFound
	}

	return p, err
}

// CountPortfolios cuenta los portafolios de un usuario. Se usa para la
// garantía de idempotencia del seeding post-registro.
func (r *PortfolioRepository) CountPortfolios(userID string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM portfolios WHERE user_id = ?`, userID).Scan(&count)
	return count, err
}
