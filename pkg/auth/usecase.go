package auth

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SessionStore persists active session ids.
type SessionStore interface {
	Get(key string) (string, bool)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(prefix string) []string
}

// AuthUseCase describes operator login/logout.
type AuthUseCase interface {
	Login(ctx context.Context, email, password string) (AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	// Active reports whether the session exists, has not expired and belongs to email.
	Active(sessionID, email string) bool
	// PruneExpired removes sessions whose token can no longer be valid.
	PruneExpired(ctx context.Context) (int, error)
}

type AuthResult struct {
	Session Session
	Token   string
}

type authService struct {
	repo     OperatorRepository
	tokens   TokenGenerator
	sessions SessionStore
	ttl      time.Duration
	log      *zap.Logger

	// now is swapped in tests.
	now func() time.Time
}

// NewAuthService returns default implementation of AuthUseCase.
// ttl must match the token lifetime.
func NewAuthService(repo OperatorRepository, tokens TokenGenerator, sessions SessionStore, ttl time.Duration, logger *zap.Logger) AuthUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &authService{
		repo:     repo,
		tokens:   tokens,
		sessions: sessions,
		ttl:      ttl,
		log:      logger.Named("auth"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

const sessionPrefix = "session:"

func sessionKey(id string) string { return sessionPrefix + id }

// Session values are "email|unix expiry".
func encodeSession(s Session) string {
	return s.Email + "|" + strconv.FormatInt(s.ExpiresAt.Unix(), 10)
}

func decodeSession(v string) (email string, expires time.Time, ok bool) {
	i := strings.LastIndexByte(v, '|')
	if i <= 0 {
		return "", time.Time{}, false
	}
	sec, err := strconv.ParseInt(v[i+1:], 10, 64)
	if err != nil {
		return "", time.Time{}, false
	}
	return v[:i], time.Unix(sec, 0).UTC(), true
}

func (s *authService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return AuthResult{}, ErrInvalidCredentials
	}
	op, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(password)) != nil {
		s.log.Warn("login rejected", zap.String("email", email))
		return AuthResult{}, ErrInvalidCredentials
	}

	now := s.now()
	sess := Session{ID: uuid.New(), Email: op.Email, CreatedAt: now, ExpiresAt: now.Add(s.ttl)}
	token, err := s.tokens.Generate(ctx, sess)
	if err != nil {
		return AuthResult{}, err
	}
	if err := s.sessions.Set(ctx, sessionKey(sess.ID.String()), encodeSession(sess)); err != nil {
		return AuthResult{}, fmt.Errorf("store session: %w", err)
	}
	s.log.Info("operator logged in", zap.String("email", sess.Email), zap.String("session_id", sess.ID.String()))
	return AuthResult{Session: sess, Token: token}, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionKey(sessionID)); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	s.log.Info("operator logged out", zap.String("session_id", sessionID))
	return nil
}

func (s *authService) Active(sessionID, email string) bool {
	v, ok := s.sessions.Get(sessionKey(sessionID))
	if !ok {
		return false
	}
	owner, expires, ok := decodeSession(v)
	return ok && owner == strings.ToLower(email) && s.now().Before(expires)
}

func (s *authService) PruneExpired(ctx context.Context) (int, error) {
	now := s.now()
	n := 0
	for _, key := range s.sessions.Keys(sessionPrefix) {
		v, ok := s.sessions.Get(key)
		if !ok {
			continue
		}
		if _, expires, ok := decodeSession(v); ok && now.Before(expires) {
			continue
		}
		if err := s.sessions.Delete(ctx, key); err != nil {
			return n, fmt.Errorf("prune %s: %w", key, err)
		}
		n++
	}
	if n > 0 {
		s.log.Info("expired sessions pruned", zap.Int("count", n))
	}
	return n, nil
}
