//go:build integration

package redis_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisrepo "github.com/artem13815/hr-backoffice/pkg/repository/redis"
	"github.com/artem13815/hr-backoffice/pkg/storage/redis"
)

func TestPreferencesRepositoryIntegration(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()
	client, err := redis.Connect(ctx, addr, os.Getenv("REDIS_PASSWORD"), 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	hash := "hr:preferences:it"
	t.Cleanup(func() { _ = client.Del(ctx, hash).Err() })
	repo := redisrepo.NewPreferencesRepository(client, hash)

	require.NoError(t, repo.Put(ctx, "lang:hr@x.kz", "kz"))
	require.NoError(t, repo.Put(ctx, "session:abc", "hr@x.kz"))
	require.NoError(t, repo.Delete(ctx, "session:abc"))

	all, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"lang:hr@x.kz": "kz"}, all)
}
