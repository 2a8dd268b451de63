package repository

import (
	"database/sql"

	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/models"
)

// ReportRepository maneja los metadatos de reportes generados
type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) CreateReport(report *models.Report) error {
	query := `
		INSERT INTO reports (id, portfolio_id, period, generated_at, summary, uri)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.Exec(query,
		report.ID,
		report.PortfolioID,
		report.Period,
		report.GeneratedAt,
		report.Summary,
		report.URI,
	)
	return err
}

// GetUserReports obtiene todos los reportes de los portafolios del usuario
func (r *ReportRepository) GetUserReports(userID string) ([]models.Report, error) {
	query := `
		SELECT re.id, re.portfolio_id, re.period, re.generated_at, re.summary, re.uri
		FROM reports re
		INNER JOIN portfolios p ON p.id = re.portfolio_id
		WHERE p.user_id = ?
		ORDER BY re.generated_at DESC`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := []models.Report{}
	for rows.Next() {
		var re models.Report
		var summary sql.NullString
		err := rows.Scan(
			&re.ID,
			&re.PortfolioID,
			&re.Period,
			&re.GeneratedAt,
			&summary,
			&re.URI,
		)
		if err != nil {
			return nil, err
		}
		re.Summary = summary.String
		reports = append(reports, re)
	}

	return reports, rows.Err()
}

// DeleteReport elimina un reporte verificando que pertenezca a un portafolio
// del usuario
func (r *ReportRepository) DeleteReport(userID, reportID string) error {
	query := `
		DELETE FROM reports
		WHERE id = ? AND portfolio_id IN (SELECT id FROM portfolios WHERE user_id = ?)`

	result, err := r.db.Exec(query, reportID, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return models.ErrReportNotFound
	}

	return nil
}
