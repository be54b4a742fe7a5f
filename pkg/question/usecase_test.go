package question

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusErr int

func (e statusErr) Error() string   { return fmt.Sprintf("api error: %d", int(e)) }
func (e statusErr) StatusCode() int { return int(e) }

type memRepo struct {
	next  int64
	items []Question
	fail  error
	calls int
}

func (r *memRepo) List(context.Context) ([]Question, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	return append([]Question(nil), r.items...), nil
}

func (r *memRepo) Create(_ context.Context, q Question) (Question, error) {
	r.calls++
	if r.fail != nil {
		return Question{}, r.fail
	}
	r.next++
	q.ID = r.next
	r.items = append(r.items, q)
	return q, nil
}

func (r *memRepo) Update(_ context.Context, id int64, p Patch) (Question, error) {
	r.calls++
	if r.fail != nil {
		return Question{}, r.fail
	}
	for i := range r.items {
		if r.items[i].ID != id {
			continue
		}
		if p.Text != nil {
			r.items[i].Text = *p.Text
		}
		if p.IsSelected != nil {
			r.items[i].IsSelected = *p.IsSelected
		}
		return r.items[i], nil
	}
	return Question{}, statusErr(404)
}

func (r *memRepo) Delete(_ context.Context, id int64) error {
	r.calls++
	if r.fail != nil {
		return r.fail
	}
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return statusErr(404)
}

func newTestService() (*memRepo, *manualScheduler, UseCase) {
	repo := &memRepo{}
	sched := &manualScheduler{}
	return repo, sched, NewService(repo, NewTracker(sched), nil)
}

func TestCreateMarksNewAndSelects(t *testing.T) {
	_, sched, uc := newTestService()
	ctx := context.Background()

	v, err := uc.Create(ctx, "  Почему вы хотите работать у нас?  ")
	require.NoError(t, err)
	assert.Equal(t, "Почему вы хотите работать у нас?", v.Text)
	assert.True(t, v.IsSelected)
	assert.Equal(t, ProvenanceNew, v.Provenance)

	sched.Advance(DecayAfter)
	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, ProvenanceDefault, list.Items[0].Provenance)
}

func TestCreateRejectsBlankText(t *testing.T) {
	repo, _, uc := newTestService()

	_, err := uc.Create(context.Background(), "   ")
	var verr ErrValidation
	require.True(t, errors.As(err, &verr))
	assert.Zero(t, repo.calls)
}

func TestUpdateMarksEdited(t *testing.T) {
	_, sched, uc := newTestService()
	ctx := context.Background()
	created, err := uc.Create(ctx, "Опыт работы?")
	require.NoError(t, err)

	sched.Advance(3 * time.Second)
	v, err := uc.Update(ctx, created.ID, "Опыт работы в годах?")
	require.NoError(t, err)
	assert.Equal(t, ProvenanceEdited, v.Provenance)

	sched.Advance(7 * time.Second)
	list, _ := uc.List(ctx)
	assert.Equal(t, ProvenanceEdited, list.Items[0].Provenance)
}

func TestFailedMutationLeavesProvenance(t *testing.T) {
	repo, _, uc := newTestService()
	ctx := context.Background()
	created, err := uc.Create(ctx, "Q")
	require.NoError(t, err)

	repo.fail = statusErr(500)
	_, err = uc.Update(ctx, created.ID, "Q2")
	require.Error(t, err)
	_, err = uc.Delete(ctx, created.ID)
	require.Error(t, err)

	repo.fail = nil
	list, _ := uc.List(ctx)
	assert.Equal(t, ProvenanceNew, list.Items[0].Provenance)
}

func TestDeleteArchivesAndMissingIsNotFound(t *testing.T) {
	repo, _, uc := newTestService()
	ctx := context.Background()
	created, _ := uc.Create(ctx, "Q")

	archived, err := uc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, archived.ID)
	assert.Equal(t, ProvenanceArchived, archived.Provenance)
	// the server still lists it until it filters it out itself
	repo.items = append(repo.items, created.Question)
	list, _ := uc.List(ctx)
	assert.Equal(t, ProvenanceArchived, list.Items[0].Provenance)

	repo.items = nil
	_, err = uc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToggleSelectionAndCounts(t *testing.T) {
	_, _, uc := newTestService()
	ctx := context.Background()
	a, _ := uc.Create(ctx, "A")
	_, _ = uc.Create(ctx, "B")

	v, err := uc.ToggleSelection(ctx, a.ID, true)
	require.NoError(t, err)
	assert.False(t, v.IsSelected)
	assert.Equal(t, ProvenanceNew, v.Provenance)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	assert.Equal(t, 1, list.Selected)
}

func TestReloadDropsPendingFeedback(t *testing.T) {
	_, _, uc := newTestService()
	ctx := context.Background()
	_, _ = uc.Create(ctx, "A")

	list, err := uc.Reload(ctx)
	require.NoError(t, err)
	assert.Equal(t, ProvenanceDefault, list.Items[0].Provenance)
}

func TestListForgetsArchivedOnceServerDropsThem(t *testing.T) {
	_, _, uc := newTestService()
	ctx := context.Background()
	tracker := uc.(*service).tracker

	for i := 0; i < 1000; i++ {
		q, err := uc.Create(ctx, fmt.Sprintf("Q%d", i))
		require.NoError(t, err)
		_, err = uc.Delete(ctx, q.ID)
		require.NoError(t, err)
	}
	kept, err := uc.Create(ctx, "kept")
	require.NoError(t, err)
	require.Len(t, tracker.entries, 1001)

	list, err := uc.Reload(ctx)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, kept.ID, list.Items[0].ID)
	assert.Empty(t, tracker.entries)

	_, err = uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tracker.entries)
}
