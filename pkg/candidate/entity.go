package candidate

import (
	"context"
	"errors"
)

// Candidate — соискатель, зарегистрированный через Telegram-бота.
type Candidate struct {
	ID         int64   `json:"id"`
	Name       *string `json:"name"`
	TelegramID int64   `json:"telegramId"`
	Status     Status  `json:"status"`
}

// DisplayName returns the candidate's name, or "" when the server has none.
func (c Candidate) DisplayName() string {
	if c.Name == nil {
		return ""
	}
	return *c.Name
}

var (
	ErrNotFound         = errors.New("candidate not found")
	ErrInvalidTarget    = errors.New("status is not a transition target")
	ErrActionNotAllowed = errors.New("action is not allowed in current status")
)

// Repository — порт к HR bot API для кандидатов.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Candidate, error)
	List(ctx context.Context) ([]Candidate, error)
	UpdateStatus(ctx context.Context, id int64, status Status) (Candidate, error)
	Delete(ctx context.Context, id int64) error
}
