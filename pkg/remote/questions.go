package remote

import (
	"context"
	"fmt"
	"net/http"

	"github.com/artem13815/hr-backoffice/pkg/question"
)

type questionOut struct {
	ID         int64  `json:"id"`
	Text       string `json:"text"`
	IsSelected bool   `json:"isSelected"`
}

type questionCreate struct {
	Text       string `json:"text"`
	IsSelected bool   `json:"isSelected"`
}

func (o questionOut) domain() question.Question {
	return question.Question{ID: o.ID, Text: o.Text, IsSelected: o.IsSelected}
}

// Questions implements question.Repository.
type Questions struct{ c *Client }

func (r *Questions) List(ctx context.Context) ([]question.Question, error) {
	var out []questionOut
	if err := r.c.do(ctx, http.MethodGet, "/questions", nil, nil, &out); err != nil {
		return nil, err
	}
	items := make([]question.Question, 0, len(out))
	for _, o := range out {
		items = append(items, o.domain())
	}
	return items, nil
}

func (r *Questions) Create(ctx context.Context, q question.Question) (question.Question, error) {
	var out questionOut
	body := questionCreate{Text: q.Text, IsSelected: q.IsSelected}
	if err := r.c.do(ctx, http.MethodPost, "/questions", nil, body, &out); err != nil {
		return question.Question{}, err
	}
	return out.domain(), nil
}

func (r *Questions) Update(ctx context.Context, id int64, p question.Patch) (question.Question, error) {
	var out questionOut
	if err := r.c.do(ctx, http.MethodPut, fmt.Sprintf("/questions/%d", id), nil, p, &out); err != nil {
		return question.Question{}, err
	}
	return out.domain(), nil
}

func (r *Questions) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, fmt.Sprintf("/questions/%d", id), nil, nil, nil)
}
