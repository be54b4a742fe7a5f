package candidate

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/artem13815/hr-backoffice/pkg/apierr"
)

// UseCase — сценарии жизненного цикла кандидата.
type UseCase interface {
	Get(ctx context.Context, id int64) (Candidate, error)
	// Transition moves the candidate to target. The current status is not
	// re-read: the server is authoritative and may reject.
	Transition(ctx context.Context, id int64, target Status) (Candidate, error)
	// Delete removes the candidate. A repeated delete returns ErrNotFound.
	Delete(ctx context.Context, id int64) error
	// Perform runs a button press for a row rendered with status current.
	// A nil candidate with nil error means the row was removed.
	Perform(ctx context.Context, id int64, current Status, action ActionID) (*Candidate, error)
	// Busy reports whether a mutation for id is in flight.
	Busy(id int64) bool
}

// Refresher re-derives views that depend on candidate state.
type Refresher interface {
	Refresh(ctx context.Context) error
}

type service struct {
	repo      Repository
	refresher Refresher
	log       *zap.Logger

	mu       sync.Mutex
	inflight map[int64]int
}

// NewService wires the lifecycle engine. refresher may be nil.
func NewService(repo Repository, refresher Refresher, logger *zap.Logger) UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		repo:      repo,
		refresher: refresher,
		log:       logger.Named("candidate"),
		inflight:  make(map[int64]int),
	}
}

func (s *service) Get(ctx context.Context, id int64) (Candidate, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Candidate{}, wrap(fmt.Sprintf("get candidate %d", id), err)
	}
	return c, nil
}

func (s *service) Transition(ctx context.Context, id int64, target Status) (Candidate, error) {
	if !IsTarget(target) {
		return Candidate{}, fmt.Errorf("%w: %q", ErrInvalidTarget, target)
	}
	done := s.begin(id)
	updated, err := s.repo.UpdateStatus(ctx, id, target)
	done()
	if err != nil {
		s.log.Error("status update failed",
			zap.Int64("candidate_id", id),
			zap.String("target", string(target)),
			zap.Error(err))
		return Candidate{}, wrap(fmt.Sprintf("update candidate %d status", id), err)
	}
	s.log.Info("candidate status changed",
		zap.Int64("candidate_id", id),
		zap.String("status", string(updated.Status)))
	s.refresh(ctx)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	done := s.begin(id)
	err := s.repo.Delete(ctx, id)
	done()
	if err != nil {
		s.log.Error("candidate delete failed", zap.Int64("candidate_id", id), zap.Error(err))
		return wrap(fmt.Sprintf("delete candidate %d", id), err)
	}
	s.log.Info("candidate deleted", zap.Int64("candidate_id", id))
	s.refresh(ctx)
	return nil
}

func (s *service) Perform(ctx context.Context, id int64, current Status, action ActionID) (*Candidate, error) {
	act, ok := Allowed(current, action)
	if !ok {
		return nil, fmt.Errorf("%w: %s from %s", ErrActionNotAllowed, action, ParseStatus(string(current)))
	}
	if act.Kind == KindDelete {
		return nil, s.Delete(ctx, id)
	}
	updated, err := s.Transition(ctx, id, act.Target)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *service) Busy(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight[id] > 0
}

func (s *service) begin(id int64) func() {
	s.mu.Lock()
	s.inflight[id]++
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		if s.inflight[id]--; s.inflight[id] <= 0 {
			delete(s.inflight, id)
		}
		s.mu.Unlock()
	}
}

// refresh re-runs dependent views; its failure is the view's to report.
func (s *service) refresh(ctx context.Context) {
	if s.refresher == nil {
		return
	}
	if err := s.refresher.Refresh(ctx); err != nil {
		s.log.Warn("refresh after mutation failed", zap.Error(err))
	}
}

func wrap(op string, err error) error {
	if apierr.IsNotFound(err) {
		return fmt.Errorf("%s: %w: %w", op, ErrNotFound, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
