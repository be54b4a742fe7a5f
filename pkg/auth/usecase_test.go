package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/artem13815/hr-backoffice/pkg/preferences"
)

type fakeTokens struct{}

func (fakeTokens) Generate(_ context.Context, s Session) (string, error) {
	return "token-" + s.ID.String(), nil
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestAuth(t *testing.T) (*authService, *preferences.Registry, *clock) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	reg := preferences.NewRegistry(preferences.NewMemoryStore(), nil)
	require.NoError(t, reg.Hydrate(context.Background()))
	ops := NewStaticOperators(Operator{Email: "Admin@Example.com", PasswordHash: string(hash)})
	svc := NewAuthService(ops, fakeTokens{}, reg, time.Hour, nil).(*authService)
	clk := &clock{t: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)}
	svc.now = clk.now
	return svc, reg, clk
}

func TestLoginCreatesSession(t *testing.T) {
	uc, reg, clk := newTestAuth(t)

	res, err := uc.Login(context.Background(), " admin@example.com ", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", res.Session.Email)
	assert.Equal(t, clk.t.Add(time.Hour), res.Session.ExpiresAt)
	assert.Equal(t, "token-"+res.Session.ID.String(), res.Token)
	assert.True(t, uc.Active(res.Session.ID.String(), "admin@example.com"))
	assert.False(t, uc.Active(res.Session.ID.String(), "other@example.com"))

	stored, ok := reg.Get("session:" + res.Session.ID.String())
	require.True(t, ok)
	email, expires, ok := decodeSession(stored)
	require.True(t, ok)
	assert.Equal(t, "admin@example.com", email)
	assert.Equal(t, res.Session.ExpiresAt.Unix(), expires.Unix())
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	uc, _, _ := newTestAuth(t)

	for _, tc := range [][2]string{
		{"admin@example.com", "wrong"},
		{"nobody@example.com", "admin123"},
		{"", "admin123"},
		{"admin@example.com", ""},
	} {
		_, err := uc.Login(context.Background(), tc[0], tc[1])
		assert.ErrorIs(t, err, ErrInvalidCredentials, tc)
	}
}

func TestLogoutRevokes(t *testing.T) {
	uc, reg, _ := newTestAuth(t)
	res, err := uc.Login(context.Background(), "admin@example.com", "admin123")
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background(), res.Session.ID.String()))
	assert.False(t, uc.Active(res.Session.ID.String(), "admin@example.com"))
	assert.Empty(t, reg.Keys("session:"))
}

func TestExpiredSessionIsInactiveAndPruned(t *testing.T) {
	uc, reg, clk := newTestAuth(t)
	ctx := context.Background()

	old, err := uc.Login(ctx, "admin@example.com", "admin123")
	require.NoError(t, err)
	clk.advance(45 * time.Minute)
	fresh, err := uc.Login(ctx, "admin@example.com", "admin123")
	require.NoError(t, err)
	// written before sessions carried an expiry
	require.NoError(t, reg.Set(ctx, "session:legacy", "admin@example.com"))
	require.NoError(t, reg.Set(ctx, "lang:admin@example.com", "kz"))

	clk.advance(30 * time.Minute)
	assert.False(t, uc.Active(old.Session.ID.String(), "admin@example.com"))
	assert.True(t, uc.Active(fresh.Session.ID.String(), "admin@example.com"))

	n, err := uc.PruneExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"session:" + fresh.Session.ID.String()}, reg.Keys("session:"))
	_, ok := reg.Get("lang:admin@example.com")
	assert.True(t, ok)
}
