package forms

import (
	"context"
	"errors"
)

// Answer — ответ кандидата на вопрос анкеты.
type Answer struct {
	ID           int64  `json:"id"`
	QuestionID   int64  `json:"questionId"`
	QuestionText string `json:"questionText"`
	Answer       string `json:"answer"`
}

var (
	ErrLoad           = errors.New("forms load failed")
	ErrFormIncomplete = errors.New("form is incomplete or filled in incorrectly")
	ErrAnalysisFailed = errors.New("candidate analysis failed")
	ErrNoAnalysis     = errors.New("no analysis for candidate")
)

// AnswerRepository reads submitted answers.
type AnswerRepository interface {
	List(ctx context.Context) ([]Answer, error)
	ByTelegramID(ctx context.Context, telegramID int64) ([]Answer, error)
}
