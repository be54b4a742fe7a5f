package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/hr-backoffice/pkg/auth"
)

type sessionSet map[string]string

func (s sessionSet) Active(id, email string) bool { return s[id] == email }

func newApp(sessions SessionChecker) *fiber.App {
	app := fiber.New()
	app.Use(NewAuthMiddleware("secret", "hr", sessions))
	app.Get("/me", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(LocalOperator).(string) + "|" + c.Locals(LocalSessionID).(string))
	})
	return app
}

func issue(t *testing.T, g *Generator, sess auth.Session) string {
	t.Helper()
	tok, err := g.Generate(context.Background(), sess)
	require.NoError(t, err)
	return tok
}

func TestMiddlewareAcceptsActiveSession(t *testing.T) {
	sess := auth.Session{ID: uuid.New(), Email: "hr@example.com"}
	tok := issue(t, NewGenerator("secret", "hr", time.Hour), sess)
	app := newApp(sessionSet{sess.ID.String(): sess.Email})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddlewareRejects(t *testing.T) {
	sess := auth.Session{ID: uuid.New(), Email: "hr@example.com"}
	valid := issue(t, NewGenerator("secret", "hr", time.Hour), sess)
	lapsed := sess
	lapsed.ExpiresAt = time.Now().Add(-time.Minute)

	cases := map[string]struct {
		header   string
		sessions sessionSet
	}{
		"missing header": {"", sessionSet{sess.ID.String(): sess.Email}},
		"bad signature":  {"Bearer " + issue(t, NewGenerator("other", "hr", time.Hour), sess), sessionSet{sess.ID.String(): sess.Email}},
		"wrong issuer":   {"Bearer " + issue(t, NewGenerator("secret", "x", time.Hour), sess), sessionSet{sess.ID.String(): sess.Email}},
		"expired":        {"Bearer " + issue(t, NewGenerator("secret", "hr", -time.Minute), sess), sessionSet{sess.ID.String(): sess.Email}},
		"session lapsed": {"Bearer " + issue(t, NewGenerator("secret", "hr", time.Hour), lapsed), sessionSet{sess.ID.String(): sess.Email}},
		"logged out":     {"Bearer " + valid, sessionSet{}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			app := newApp(tc.sessions)
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}
