package redis

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
)

// DefaultHashKey is the redis hash holding all preference flags.
const DefaultHashKey = "hr:preferences"

// PreferencesRepository implements preferences.Store as a single redis hash.
type PreferencesRepository struct {
	client goredis.Cmdable
	hash   string
}

func NewPreferencesRepository(client goredis.Cmdable, hash string) *PreferencesRepository {
	if hash == "" {
		hash = DefaultHashKey
	}
	return &PreferencesRepository{client: client, hash: hash}
}

func (r *PreferencesRepository) Load(ctx context.Context) (map[string]string, error) {
	return r.client.HGetAll(ctx, r.hash).Result()
}

func (r *PreferencesRepository) Put(ctx context.Context, key, value string) error {
	return r.client.HSet(ctx, r.hash, key, value).Err()
}

func (r *PreferencesRepository) Delete(ctx context.Context, key string) error {
	return r.client.HDel(ctx, r.hash, key).Err()
}
