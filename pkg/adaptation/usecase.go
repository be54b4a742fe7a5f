package adaptation

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/artem13815/hr-backoffice/pkg/apierr"
)

type UseCase interface {
	List(ctx context.Context) ([]Record, error)
	// Start opens an adaptation for a hired candidate.
	Start(ctx context.Context, userID int64) (Record, error)
	UpdateStatus(ctx context.Context, rec Record, target Status) (Record, error)
}

type service struct {
	repo Repository
	log  *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{repo: repo, log: logger.Named("adaptation")}
}

func (s *service) List(ctx context.Context) ([]Record, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("list adaptation failed", zap.Error(err))
		return nil, fmt.Errorf("list adaptation: %w", err)
	}
	return items, nil
}

func (s *service) Start(ctx context.Context, userID int64) (Record, error) {
	rec, err := s.repo.Create(ctx, userID, StatusInProgress)
	if err != nil {
		s.log.Error("start adaptation failed", zap.Int64("user_id", userID), zap.Error(err))
		return Record{}, fmt.Errorf("start adaptation for %d: %w", userID, err)
	}
	return rec, nil
}

func (s *service) UpdateStatus(ctx context.Context, rec Record, target Status) (Record, error) {
	allowed := false
	for _, a := range Actions(rec.Status) {
		if a.Target == target {
			allowed = true
			break
		}
	}
	if !allowed {
		return Record{}, fmt.Errorf("%w: %s -> %s", ErrActionNotAllowed, ParseStatus(string(rec.Status)), target)
	}
	out, err := s.repo.Update(ctx, rec.ID, rec.UserID, target)
	if err != nil {
		s.log.Error("adaptation update failed", zap.Int64("id", rec.ID), zap.Error(err))
		if apierr.IsNotFound(err) {
			return Record{}, fmt.Errorf("update adaptation %d: %w: %w", rec.ID, ErrNotFound, err)
		}
		return Record{}, fmt.Errorf("update adaptation %d: %w", rec.ID, err)
	}
	return out, nil
}
