package remote

import (
	"context"
	"fmt"
	"net/http"

	"github.com/artem13815/hr-backoffice/pkg/forms"
)

type answerOut struct {
	ID           int64  `json:"id"`
	QuestionID   int64  `json:"question_id"`
	QuestionText string `json:"question_text"`
	Answer       string `json:"answer"`
}

func toAnswers(out []answerOut) []forms.Answer {
	items := make([]forms.Answer, 0, len(out))
	for _, o := range out {
		items = append(items, forms.Answer{
			ID:           o.ID,
			QuestionID:   o.QuestionID,
			QuestionText: o.QuestionText,
			Answer:       o.Answer,
		})
	}
	return items
}

// Answers implements forms.AnswerRepository.
type Answers struct{ c *Client }

func (r *Answers) List(ctx context.Context) ([]forms.Answer, error) {
	var out []answerOut
	if err := r.c.do(ctx, http.MethodGet, "/answers", nil, nil, &out); err != nil {
		return nil, err
	}
	return toAnswers(out), nil
}

func (r *Answers) ByTelegramID(ctx context.Context, telegramID int64) ([]forms.Answer, error) {
	var out []answerOut
	if err := r.c.do(ctx, http.MethodGet, fmt.Sprintf("/answers/%d", telegramID), nil, nil, &out); err != nil {
		return nil, err
	}
	return toAnswers(out), nil
}
