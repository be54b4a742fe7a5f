package question

import (
	"context"
	"errors"
)

// Question — вопрос анкеты для кандидатов.
type Question struct {
	ID         int64  `json:"id"`
	Text       string `json:"text"`
	IsSelected bool   `json:"isSelected"`
}

// Patch is a partial update; nil fields are left as they are.
type Patch struct {
	Text       *string `json:"text,omitempty"`
	IsSelected *bool   `json:"isSelected,omitempty"`
}

// ErrValidation простая ошибка валидации.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

var ErrNotFound = errors.New("question not found")

// Repository — порт к банку вопросов HR bot API.
type Repository interface {
	List(ctx context.Context) ([]Question, error)
	Create(ctx context.Context, q Question) (Question, error)
	Update(ctx context.Context, id int64, p Patch) (Question, error)
	Delete(ctx context.Context, id int64) error
}
