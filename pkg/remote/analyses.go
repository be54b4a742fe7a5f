package remote

import (
	"context"
	"fmt"
	"net/http"

	"github.com/artem13815/hr-backoffice/pkg/analysis"
)

type analysisOut struct {
	UserID     int64   `json:"user_id"`
	Position   string  `json:"position"`
	Score      float64 `json:"score"`
	Strengths  string  `json:"strengths"`
	Weaknesses string  `json:"weaknesses"`
}

func (o analysisOut) domain() analysis.Analysis {
	return analysis.Analysis{
		UserID:     o.UserID,
		Position:   o.Position,
		Score:      o.Score,
		Strengths:  o.Strengths,
		Weaknesses: o.Weaknesses,
	}
}

// Analyses implements analysis.Repository.
type Analyses struct{ c *Client }

func (r *Analyses) ListRecommended(ctx context.Context) ([]analysis.Analysis, error) {
	var out []analysisOut
	if err := r.c.do(ctx, http.MethodGet, "/candidates/recommended", nil, nil, &out); err != nil {
		return nil, err
	}
	items := make([]analysis.Analysis, 0, len(out))
	for _, o := range out {
		items = append(items, o.domain())
	}
	return items, nil
}

func (r *Analyses) GetByUserID(ctx context.Context, userID int64) (analysis.Analysis, error) {
	var out analysisOut
	if err := r.c.do(ctx, http.MethodGet, fmt.Sprintf("/analysis/%d", userID), nil, nil, &out); err != nil {
		return analysis.Analysis{}, err
	}
	return out.domain(), nil
}

func (r *Analyses) Analyze(ctx context.Context, candidateID int64) (analysis.Analysis, error) {
	var out analysisOut
	if err := r.c.do(ctx, http.MethodPost, fmt.Sprintf("/candidates/%d/analyze", candidateID), nil, nil, &out); err != nil {
		return analysis.Analysis{}, err
	}
	return out.domain(), nil
}
