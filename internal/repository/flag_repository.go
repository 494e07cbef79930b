package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/console-service/internal/domain"
)

// FlagRepository defines persistence access for the featureFlags
// collection. Flag names carry no uniqueness constraint here.
type FlagRepository interface {
	Create(ctx context.Context, flag *domain.FeatureFlag) error
	SetEnabled(ctx context.Context, id string, enabled bool) error
	GetByID(ctx context.Context, id string) (*domain.FeatureFlag, error)
	List(ctx context.Context) ([]domain.FeatureFlag, error)
}

type flagRepository struct {
	pool *pgxpool.Pool
}

// NewFlagRepository returns a Postgres-backed implementation.
func NewFlagRepository(pool *pgxpool.Pool) FlagRepository {
	return &flagRepository{pool: pool}
}

func (r *flagRepository) Create(ctx context.Context, flag *domain.FeatureFlag) error {
	const query = `
        INSERT INTO feature_flags (id, name, description, enabled)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	if flag.ID == "" {
		flag.ID = uuid.NewString()
	}
	return r.pool.QueryRow(ctx, query,
		flag.ID,
		flag.Name,
		flag.Description,
		flag.Enabled,
	).Scan(&flag.ID, &flag.CreatedAt)
}

func (r *flagRepository) SetEnabled(ctx context.Context, id string, enabled bool) error {
	const query = `UPDATE feature_flags SET enabled=$1 WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, enabled, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *flagRepository) GetByID(ctx context.Context, id string) (*domain.FeatureFlag, error) {
	const query = `
        SELECT id, name, description, enabled, created_at
        FROM feature_flags WHERE id=$1`

	var flag domain.FeatureFlag
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&flag.ID,
		&flag.Name,
		&flag.Description,
		&flag.Enabled,
		&flag.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &flag, nil
}

func (r *flagRepository) List(ctx context.Context) ([]domain.FeatureFlag, error) {
	const query = `
        SELECT id, name, description, enabled, created_at
        FROM feature_flags ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var flags []domain.FeatureFlag
	for rows.Next() {
		var flag domain.FeatureFlag
		if err := rows.Scan(
			&flag.ID,
			&flag.Name,
			&flag.Description,
			&flag.Enabled,
			&flag.CreatedAt,
		); err != nil {
			return nil, err
		}
		flags = append(flags, flag)
	}
	return flags, rows.Err()
}
