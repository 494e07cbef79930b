package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/console-service/internal/domain"
)

// BugReportRepository defines persistence access for the bugReports
// collection. Append-only: no update or delete is exposed.
type BugReportRepository interface {
	Create(ctx context.Context, report *domain.BugReport) error
	List(ctx context.Context) ([]domain.BugReport, error)
}

type bugReportRepository struct {
	pool *pgxpool.Pool
}

// NewBugReportRepository returns a Postgres-backed implementation.
func NewBugReportRepository(pool *pgxpool.Pool) BugReportRepository {
	return &bugReportRepository{pool: pool}
}

func (r *bugReportRepository) Create(ctx context.Context, report *domain.BugReport) error {
	const query = `
        INSERT INTO bug_reports (id, description, steps_to_reproduce, status, reporter_id, reporter_email)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at`

	if report.ID == "" {
		report.ID = uuid.NewString()
	}
	return r.pool.QueryRow(ctx, query,
		report.ID,
		report.Description,
		report.StepsToReproduce,
		report.Status,
		report.ReporterID,
		report.ReporterEmail,
	).Scan(&report.ID, &report.CreatedAt)
}

func (r *bugReportRepository) List(ctx context.Context) ([]domain.BugReport, error) {
	const query = `
        SELECT id, description, steps_to_reproduce, status, reporter_id, reporter_email, created_at
        FROM bug_reports ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []domain.BugReport
	for rows.Next() {
		var report domain.BugReport
		if err := rows.Scan(
			&report.ID,
			&report.Description,
			&report.StepsToReproduce,
			&report.Status,
			&report.ReporterID,
			&report.ReporterEmail,
			&report.CreatedAt,
		); err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}
