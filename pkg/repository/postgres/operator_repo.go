package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/hr-backoffice/pkg/auth"
)

// OperatorRepository implements auth.OperatorRepository backed by PostgreSQL (pgx).
type OperatorRepository struct {
	pool *pgxpool.Pool
}

func NewOperatorRepository(pool *pgxpool.Pool) (*OperatorRepository, error) {
	repo := &OperatorRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *OperatorRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS operators (
			email TEXT PRIMARY KEY,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`)
	return err
}

// Upsert stores op, replacing the password hash of an existing operator.
func (r *OperatorRepository) Upsert(ctx context.Context, op auth.Operator) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO operators (email, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash
	`, strings.ToLower(op.Email), op.PasswordHash)
	return err
}

func (r *OperatorRepository) GetByEmail(ctx context.Context, email string) (auth.Operator, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT email, password_hash
		FROM operators WHERE email = $1
	`, strings.ToLower(strings.TrimSpace(email)))
	var op auth.Operator
	if err := row.Scan(&op.Email, &op.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.Operator{}, auth.ErrNotFound
		}
		return auth.Operator{}, err
	}
	return op, nil
}
