package checkers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestRemoteAPICheckerPropagatesError(t *testing.T) {
	want := errors.New("down")
	c := NewRemoteAPIChecker(pingFunc(func(context.Context) error { return want }), 0)

	assert.Equal(t, "hr_api", c.Name())
	assert.ErrorIs(t, c.Check(context.Background()), want)
}

func TestRemoteAPICheckerAppliesTimeout(t *testing.T) {
	c := NewRemoteAPIChecker(pingFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}), 10*time.Millisecond)

	assert.ErrorIs(t, c.Check(context.Background()), context.DeadlineExceeded)
}
