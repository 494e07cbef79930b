package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/console-service/internal/auth"
	"github.com/spec-kit/console-service/internal/domain"
)

// PostgresProvider implements Provider on a credentials table. It stands
// in for a hosted identity service: bcrypt-hashed passwords plus a role
// claim column per principal.
type PostgresProvider struct {
	pool       *pgxpool.Pool
	bcryptCost int
}

// NewPostgresProvider returns a Postgres-backed provider.
func NewPostgresProvider(pool *pgxpool.Pool, bcryptCost int) *PostgresProvider {
	return &PostgresProvider{pool: pool, bcryptCost: bcryptCost}
}

func (p *PostgresProvider) CreatePrincipal(ctx context.Context, email, password string) (string, error) {
	hash, err := auth.HashPassword(password, p.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	const query = `
        INSERT INTO principals (id, email, password_hash)
        VALUES ($1, $2, $3)
        RETURNING id`

	id := uuid.NewString()
	if err := p.pool.QueryRow(ctx, query, id, email, hash).Scan(&id); err != nil {
		return "", fmt.Errorf("create principal: %w", err)
	}
	return id, nil
}

func (p *PostgresProvider) SetClaim(ctx context.Context, id string, role domain.Role) error {
	const query = `
        UPDATE principals SET role_claim=$1, updated_at=NOW()
        WHERE id=$2`

	cmd, err := p.pool.Exec(ctx, query, role, id)
	if err != nil {
		return fmt.Errorf("set claim: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("set claim: principal %s: %w", id, pgx.ErrNoRows)
	}
	return nil
}

func (p *PostgresProvider) DeletePrincipal(ctx context.Context, id string) error {
	const query = `DELETE FROM principals WHERE id=$1`

	cmd, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete principal: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("delete principal: %s: %w", id, pgx.ErrNoRows)
	}
	return nil
}

// Authenticate verifies credentials and returns the principal with its
// current role claim. Used only at the transport boundary to mint bearer
// tokens; the operation handlers never see passwords.
func (p *PostgresProvider) Authenticate(ctx context.Context, email, password string) (domain.Principal, error) {
	const query = `
        SELECT id, email, password_hash, COALESCE(role_claim, 'guest')
        FROM principals WHERE email=$1`

	var (
		principal domain.Principal
		hash      string
		roleStr   string
	)
	if err := p.pool.QueryRow(ctx, query, email).Scan(&principal.ID, &principal.Email, &hash, &roleStr); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Principal{}, errors.New("invalid credentials")
		}
		return domain.Principal{}, fmt.Errorf("lookup principal: %w", err)
	}
	if err := auth.ComparePassword(hash, password); err != nil {
		return domain.Principal{}, errors.New("invalid credentials")
	}

	role, err := domain.ParseRole(roleStr)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("principal %s: %w", principal.ID, err)
	}
	principal.Role = role
	return principal, nil
}
