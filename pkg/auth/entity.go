package auth

import (
	"time"

	"github.com/google/uuid"
)

// Operator is an HR employee allowed into the back office.
type Operator struct {
	Email        string
	PasswordHash string
}

// Session is an active login; the token carries its ID.
type Session struct {
	ID        uuid.UUID
	Email     string
	CreatedAt time.Time
	ExpiresAt time.Time
}
