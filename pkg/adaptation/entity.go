package adaptation

import (
	"context"
	"errors"
)

// Status of a post-hire adaptation record.
type Status string

const (
	StatusInProgress Status = "adaptation"
	StatusSuccess    Status = "adaptation_success"
	StatusFailed     Status = "adaptation_failed"
	StatusUnknown    Status = "unknown"
)

func ParseStatus(raw string) Status {
	switch s := Status(raw); s {
	case StatusInProgress, StatusSuccess, StatusFailed:
		return s
	}
	return StatusUnknown
}

// Terminal reports statuses with no way out.
func (s Status) Terminal() bool {
	return s == StatusSuccess || s == StatusFailed
}

// Record — запись об адаптации нового сотрудника.
type Record struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"userId"`
	Name       string `json:"name"`
	TelegramID int64  `json:"telegramId"`
	Status     Status `json:"status"`
}

// Action is a button on an adaptation row.
type Action struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Target Status `json:"target"`
}

var (
	pass = Action{ID: "pass", Label: "adaptationSuccessBtn", Target: StatusSuccess}
	fail = Action{ID: "fail", Label: "adaptationFailedBtn", Target: StatusFailed}
)

// Actions: only an in-progress adaptation can be resolved.
func Actions(s Status) []Action {
	if ParseStatus(string(s)) == StatusInProgress {
		return []Action{pass, fail}
	}
	return []Action{}
}

// Label returns the i18n key describing s.
func Label(s Status) string {
	switch ParseStatus(string(s)) {
	case StatusInProgress:
		return "adaptationProcess"
	case StatusSuccess:
		return "adaptationPassedLabel"
	case StatusFailed:
		return "adaptationFailedLabel"
	}
	return "unknownStatus"
}

var (
	ErrNotFound         = errors.New("adaptation record not found")
	ErrActionNotAllowed = errors.New("adaptation status change not allowed")
)

// Repository — порт к HR bot API для адаптации.
type Repository interface {
	List(ctx context.Context) ([]Record, error)
	Create(ctx context.Context, userID int64, status Status) (Record, error)
	Update(ctx context.Context, id, userID int64, status Status) (Record, error)
}
