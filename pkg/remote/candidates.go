package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/artem13815/hr-backoffice/pkg/candidate"
)

type candidateOut struct {
	ID         int64   `json:"id"`
	Name       *string `json:"name"`
	TelegramID int64   `json:"telegram_id"`
	Status     string  `json:"status"`
}

func (o candidateOut) domain() candidate.Candidate {
	return candidate.Candidate{
		ID:         o.ID,
		Name:       o.Name,
		TelegramID: o.TelegramID,
		Status:     candidate.ParseStatus(o.Status),
	}
}

// Candidates implements candidate.Repository over /candidates.
type Candidates struct{ c *Client }

func (r *Candidates) GetByID(ctx context.Context, id int64) (candidate.Candidate, error) {
	var out candidateOut
	if err := r.c.do(ctx, http.MethodGet, fmt.Sprintf("/candidates/%d", id), nil, nil, &out); err != nil {
		return candidate.Candidate{}, err
	}
	return out.domain(), nil
}

func (r *Candidates) List(ctx context.Context) ([]candidate.Candidate, error) {
	var out []candidateOut
	if err := r.c.do(ctx, http.MethodGet, "/candidates", nil, nil, &out); err != nil {
		return nil, err
	}
	items := make([]candidate.Candidate, 0, len(out))
	for _, o := range out {
		items = append(items, o.domain())
	}
	return items, nil
}

// UpdateStatus is keyed by the candidate id; the API takes the status as
// the new_status query parameter.
func (r *Candidates) UpdateStatus(ctx context.Context, id int64, status candidate.Status) (candidate.Candidate, error) {
	var out candidateOut
	q := url.Values{"new_status": {string(status)}}
	if err := r.c.do(ctx, http.MethodPut, fmt.Sprintf("/candidates/%d/status", id), q, nil, &out); err != nil {
		return candidate.Candidate{}, err
	}
	return out.domain(), nil
}

func (r *Candidates) Delete(ctx context.Context, id int64) error {
	var out struct {
		Deleted int64 `json:"deleted"`
	}
	return r.c.do(ctx, http.MethodDelete, fmt.Sprintf("/candidates/%d", id), nil, nil, &out)
}
