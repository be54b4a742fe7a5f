//go:build integration

package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/hr-backoffice/pkg/auth"
	pgrepo "github.com/artem13815/hr-backoffice/pkg/repository/postgres"
	"github.com/artem13815/hr-backoffice/pkg/storage/postgres"
)

func TestPreferencesRepositoryIntegration(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := postgres.Connect(ctx, dsn, postgres.PoolOptions{AppName: "hr-backoffice-test"})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	repo, err := pgrepo.NewPreferencesRepository(pool)
	require.NoError(t, err)

	key := "it:" + t.Name()
	t.Cleanup(func() { _ = repo.Delete(ctx, key) })

	require.NoError(t, repo.Put(ctx, key, "ru"))
	require.NoError(t, repo.Put(ctx, key, "kz"))
	all, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "kz", all[key])

	require.NoError(t, repo.Delete(ctx, key))
	require.NoError(t, repo.Delete(ctx, key))
	all, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.NotContains(t, all, key)
}

func TestOperatorRepositoryIntegration(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := postgres.Connect(ctx, dsn, postgres.PoolOptions{AppName: "hr-backoffice-test"})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	repo, err := pgrepo.NewOperatorRepository(pool)
	require.NoError(t, err)

	email := "it-operator@example.com"
	t.Cleanup(func() { _, _ = pool.Exec(ctx, `DELETE FROM operators WHERE email = $1`, email) })

	require.NoError(t, repo.Upsert(ctx, auth.Operator{Email: "IT-Operator@example.com", PasswordHash: "h1"}))
	require.NoError(t, repo.Upsert(ctx, auth.Operator{Email: email, PasswordHash: "h2"}))

	op, err := repo.GetByEmail(ctx, " IT-OPERATOR@example.com")
	require.NoError(t, err)
	assert.Equal(t, email, op.Email)
	assert.Equal(t, "h2", op.PasswordHash)

	_, err = repo.GetByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, auth.ErrNotFound)
}
