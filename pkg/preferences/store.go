// Package preferences holds the process-wide persisted flags of the back
// office: operator sessions and language choice.
package preferences

import (
	"context"
	"errors"
)

var ErrNotHydrated = errors.New("preferences registry is not hydrated")

// Store — порт к персистентному key/value хранилищу флагов.
type Store interface {
	Load(ctx context.Context) (map[string]string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
