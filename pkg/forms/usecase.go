package forms

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/artem13815/hr-backoffice/pkg/analysis"
	"github.com/artem13815/hr-backoffice/pkg/apierr"
	"github.com/artem13815/hr-backoffice/pkg/candidate"
)

// CandidateLister lists every registered candidate.
type CandidateLister interface {
	List(ctx context.Context) ([]candidate.Candidate, error)
}

// UseCase — просмотр анкет кандидатов и запуск анализа.
type UseCase interface {
	Candidates(ctx context.Context) ([]candidate.Candidate, error)
	Answers(ctx context.Context, telegramID int64) ([]Answer, error)
	// Analyze asks the server to score a candidate. A 400 from the server
	// means the form is incomplete and maps to ErrFormIncomplete.
	Analyze(ctx context.Context, candidateID int64) (analysis.Analysis, error)
	AnalysisFor(ctx context.Context, userID int64) (analysis.Analysis, error)
}

type service struct {
	candidates CandidateLister
	answers    AnswerRepository
	analyses   analysis.Repository
	log        *zap.Logger
}

func NewService(candidates CandidateLister, answers AnswerRepository, analyses analysis.Repository, logger *zap.Logger) UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{candidates: candidates, answers: answers, analyses: analyses, log: logger.Named("forms")}
}

func (s *service) Candidates(ctx context.Context) ([]candidate.Candidate, error) {
	items, err := s.candidates.List(ctx)
	if err != nil {
		s.log.Error("list candidates failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return items, nil
}

func (s *service) Answers(ctx context.Context, telegramID int64) ([]Answer, error) {
	items, err := s.answers.ByTelegramID(ctx, telegramID)
	if err != nil {
		if apierr.IsNotFound(err) {
			return []Answer{}, nil
		}
		s.log.Error("load answers failed", zap.Int64("telegram_id", telegramID), zap.Error(err))
		return nil, fmt.Errorf("answers for %d: %w", telegramID, err)
	}
	return items, nil
}

func (s *service) Analyze(ctx context.Context, candidateID int64) (analysis.Analysis, error) {
	a, err := s.analyses.Analyze(ctx, candidateID)
	if err == nil {
		s.log.Info("candidate analyzed",
			zap.Int64("candidate_id", candidateID),
			zap.String("position", a.Position),
			zap.Float64("score", a.Score))
		return a, nil
	}
	s.log.Error("analyze candidate failed", zap.Int64("candidate_id", candidateID), zap.Error(err))
	if apierr.IsBadRequest(err) {
		return analysis.Analysis{}, fmt.Errorf("%w: %w", ErrFormIncomplete, err)
	}
	return analysis.Analysis{}, fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
}

func (s *service) AnalysisFor(ctx context.Context, userID int64) (analysis.Analysis, error) {
	a, err := s.analyses.GetByUserID(ctx, userID)
	if err != nil {
		if apierr.IsNotFound(err) {
			return analysis.Analysis{}, fmt.Errorf("%w: %d", ErrNoAnalysis, userID)
		}
		return analysis.Analysis{}, fmt.Errorf("analysis for %d: %w", userID, err)
	}
	return a, nil
}
