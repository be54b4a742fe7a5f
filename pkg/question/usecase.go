package question

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/artem13815/hr-backoffice/pkg/apierr"
)

// View is a question annotated with its provenance.
type View struct {
	Question
	Provenance Provenance `json:"provenance"`
}

// Listing is the question bank with the questionnaire selection count.
type Listing struct {
	Items    []View `json:"items"`
	Selected int    `json:"selected"`
	Total    int    `json:"total"`
}

// UseCase — управление банком вопросов.
type UseCase interface {
	List(ctx context.Context) (Listing, error)
	// Reload is List after dropping pending provenance feedback.
	Reload(ctx context.Context) (Listing, error)
	Create(ctx context.Context, text string) (View, error)
	Update(ctx context.Context, id int64, text string) (View, error)
	Delete(ctx context.Context, id int64) (View, error)
	ToggleSelection(ctx context.Context, id int64, current bool) (View, error)
}

type service struct {
	repo    Repository
	tracker *Tracker
	log     *zap.Logger
}

func NewService(repo Repository, tracker *Tracker, logger *zap.Logger) UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{repo: repo, tracker: tracker, log: logger.Named("question")}
}

func (s *service) List(ctx context.Context) (Listing, error) {
	qs, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("list questions failed", zap.Error(err))
		return Listing{}, fmt.Errorf("list questions: %w", err)
	}
	out := Listing{Items: make([]View, 0, len(qs)), Total: len(qs)}
	present := make(map[int64]struct{}, len(qs))
	for _, q := range qs {
		present[q.ID] = struct{}{}
		if q.IsSelected {
			out.Selected++
		}
		out.Items = append(out.Items, s.view(q))
	}
	if n := s.tracker.Prune(present); n > 0 {
		s.log.Debug("forgot archived questions", zap.Int("count", n))
	}
	return out, nil
}

func (s *service) Reload(ctx context.Context) (Listing, error) {
	s.tracker.Reset()
	return s.List(ctx)
}

func (s *service) Create(ctx context.Context, text string) (View, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return View{}, ErrValidation("question text is required")
	}
	// новые вопросы сразу попадают в анкету
	created, err := s.repo.Create(ctx, Question{Text: text, IsSelected: true})
	if err != nil {
		s.log.Error("create question failed", zap.Error(err))
		return View{}, fmt.Errorf("create question: %w", err)
	}
	s.tracker.MarkNew(created.ID)
	return s.view(created), nil
}

func (s *service) Update(ctx context.Context, id int64, text string) (View, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return View{}, ErrValidation("question text is required")
	}
	updated, err := s.repo.Update(ctx, id, Patch{Text: &text})
	if err != nil {
		s.log.Error("update question failed", zap.Int64("question_id", id), zap.Error(err))
		return View{}, wrap(fmt.Sprintf("update question %d", id), err)
	}
	s.tracker.MarkEdited(updated.ID)
	return s.view(updated), nil
}

// Delete returns the archived row so the caller can keep showing it inert.
func (s *service) Delete(ctx context.Context, id int64) (View, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("delete question failed", zap.Int64("question_id", id), zap.Error(err))
		return View{}, wrap(fmt.Sprintf("delete question %d", id), err)
	}
	s.tracker.MarkArchived(id)
	return View{Question: Question{ID: id}, Provenance: ProvenanceArchived}, nil
}

func (s *service) ToggleSelection(ctx context.Context, id int64, current bool) (View, error) {
	next := !current
	updated, err := s.repo.Update(ctx, id, Patch{IsSelected: &next})
	if err != nil {
		s.log.Error("toggle question selection failed", zap.Int64("question_id", id), zap.Error(err))
		return View{}, wrap(fmt.Sprintf("toggle question %d", id), err)
	}
	return s.view(updated), nil
}

func (s *service) view(q Question) View {
	return View{Question: q, Provenance: s.tracker.State(q.ID)}
}

func wrap(op string, err error) error {
	if apierr.IsNotFound(err) {
		return fmt.Errorf("%s: %w: %w", op, ErrNotFound, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
