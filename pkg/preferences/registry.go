package preferences

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Registry is an in-memory view of a Store. It is hydrated once at startup
// and written through on every change.
type Registry struct {
	store Store
	log   *zap.Logger

	mu       sync.RWMutex
	values   map[string]string
	hydrated bool
}

func NewRegistry(store Store, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{store: store, log: logger.Named("preferences"), values: map[string]string{}}
}

// Hydrate replaces the in-memory state with the store's contents.
func (r *Registry) Hydrate(ctx context.Context) error {
	values, err := r.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("hydrate preferences: %w", err)
	}
	if values == nil {
		values = map[string]string{}
	}
	r.mu.Lock()
	r.values = values
	r.hydrated = true
	r.mu.Unlock()
	r.log.Info("preferences hydrated", zap.Int("entries", len(values)))
	return nil
}

func (r *Registry) Get(key string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok
}

// Set persists first; memory only changes if the store accepted the value.
func (r *Registry) Set(ctx context.Context, key, value string) error {
	if !r.ready() {
		return ErrNotHydrated
	}
	if err := r.store.Put(ctx, key, value); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	r.mu.Lock()
	r.values[key] = value
	r.mu.Unlock()
	return nil
}

func (r *Registry) Delete(ctx context.Context, key string) error {
	if !r.ready() {
		return ErrNotHydrated
	}
	if err := r.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	r.mu.Lock()
	delete(r.values, key)
	r.mu.Unlock()
	return nil
}

// Keys lists keys with the given prefix.
func (r *Registry) Keys(prefix string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []string
	for k := range r.values {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	return out
}

func (r *Registry) ready() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hydrated
}
