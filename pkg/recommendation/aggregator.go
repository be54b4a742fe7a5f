package recommendation

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/artem13815/hr-backoffice/pkg/analysis"
	"github.com/artem13815/hr-backoffice/pkg/candidate"
)

// ErrLoad marks a failure of the recommended list fetch itself.
var ErrLoad = errors.New("recommended candidates load failed")

const defaultConcurrency = 8

// Source lists the server's recommended analyses.
type Source interface {
	ListRecommended(ctx context.Context) ([]analysis.Analysis, error)
}

// CandidateLookup fetches one candidate by id.
type CandidateLookup interface {
	GetByID(ctx context.Context, id int64) (candidate.Candidate, error)
}

// Aggregator joins recommended analyses with their candidates.
type Aggregator struct {
	analyses    Source
	candidates  CandidateLookup
	concurrency int
	log         *zap.Logger
}

func NewAggregator(analyses Source, candidates CandidateLookup, concurrency int, logger *zap.Logger) *Aggregator {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{
		analyses:    analyses,
		candidates:  candidates,
		concurrency: concurrency,
		log:         logger.Named("recommendation"),
	}
}

// Run performs one aggregation pass. Rows follow the order of the
// recommended list regardless of lookup completion order. Only the list
// fetch can fail the pass; a failed lookup yields a placeholder row.
func (a *Aggregator) Run(ctx context.Context) ([]Row, error) {
	recs, err := a.analyses.ListRecommended(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	rows := make([]Row, len(recs))
	var g errgroup.Group
	g.SetLimit(a.concurrency)
	for i, rec := range recs {
		g.Go(func() error {
			c, err := a.candidates.GetByID(ctx, rec.UserID)
			if err != nil {
				a.log.Warn("candidate lookup failed, using placeholder",
					zap.Int64("user_id", rec.UserID),
					zap.Error(err))
				rows[i] = Merge(rec, nil)
				return nil
			}
			rows[i] = Merge(rec, &c)
			return nil
		})
	}
	_ = g.Wait()
	return rows, nil
}
