package remote

import (
	"context"
	"fmt"
	"net/http"

	"github.com/artem13815/hr-backoffice/pkg/adaptation"
)

type adaptationOut struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user_id"`
	Name       string `json:"name"`
	TelegramID int64  `json:"telegram_id"`
	Status     string `json:"status"`
}

type adaptationIn struct {
	UserID int64  `json:"user_id"`
	Status string `json:"status"`
}

func (o adaptationOut) domain() adaptation.Record {
	return adaptation.Record{
		ID:         o.ID,
		UserID:     o.UserID,
		Name:       o.Name,
		TelegramID: o.TelegramID,
		Status:     adaptation.ParseStatus(o.Status),
	}
}

// Adaptation implements adaptation.Repository.
type Adaptation struct{ c *Client }

func (r *Adaptation) List(ctx context.Context) ([]adaptation.Record, error) {
	var out []adaptationOut
	if err := r.c.do(ctx, http.MethodGet, "/adaptation", nil, nil, &out); err != nil {
		return nil, err
	}
	items := make([]adaptation.Record, 0, len(out))
	for _, o := range out {
		items = append(items, o.domain())
	}
	return items, nil
}

func (r *Adaptation) Create(ctx context.Context, userID int64, status adaptation.Status) (adaptation.Record, error) {
	var out adaptationOut
	if err := r.c.do(ctx, http.MethodPost, "/adaptation", nil, adaptationIn{UserID: userID, Status: string(status)}, &out); err != nil {
		return adaptation.Record{}, err
	}
	return out.domain(), nil
}

func (r *Adaptation) Update(ctx context.Context, id, userID int64, status adaptation.Status) (adaptation.Record, error) {
	var out adaptationOut
	body := adaptationIn{UserID: userID, Status: string(status)}
	if err := r.c.do(ctx, http.MethodPut, fmt.Sprintf("/adaptation/%d", id), nil, body, &out); err != nil {
		return adaptation.Record{}, err
	}
	return out.domain(), nil
}
