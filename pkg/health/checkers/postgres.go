package checkers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

var errNoPreferencesTable = errors.New("preferences table missing")

// PreferencesDB is the part of *pgxpool.Pool the check needs.
type PreferencesDB interface {
	Ping(ctx context.Context) error
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresChecker pings the pool and confirms the preferences table exists.
type PostgresChecker struct {
	db      PreferencesDB
	timeout time.Duration
}

func NewPostgresChecker(db PreferencesDB, timeout time.Duration) *PostgresChecker {
	if timeout <= 0 {
		timeout = time.Second
	}
	return &PostgresChecker{db: db, timeout: timeout}
}

func (c *PostgresChecker) Name() string { return "postgres" }

func (c *PostgresChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	if err := c.db.Ping(ctx); err != nil {
		return err
	}
	var ok bool
	if err := c.db.QueryRow(ctx, `SELECT to_regclass('preferences') IS NOT NULL`).Scan(&ok); err != nil {
		return fmt.Errorf("lookup preferences table: %w", err)
	}
	if !ok {
		return errNoPreferencesTable
	}
	return nil
}
