package auth

import (
	"context"
	"errors"
	"strings"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// OperatorRepository abstracts where operator credentials live.
type OperatorRepository interface {
	GetByEmail(ctx context.Context, email string) (Operator, error)
}

// StaticOperators serves operators configured at startup.
type StaticOperators map[string]Operator

func NewStaticOperators(ops ...Operator) StaticOperators {
	m := make(StaticOperators, len(ops))
	for _, op := range ops {
		op.Email = strings.ToLower(strings.TrimSpace(op.Email))
		m[op.Email] = op
	}
	return m
}

func (s StaticOperators) GetByEmail(_ context.Context, email string) (Operator, error) {
	op, ok := s[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return Operator{}, ErrNotFound
	}
	return op, nil
}
