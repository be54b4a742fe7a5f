package recommendation

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

var ErrClosed = errors.New("recommendation view closed")

// Runner performs one aggregation pass.
type Runner interface {
	Run(ctx context.Context) ([]Row, error)
}

// State is what the presentation layer renders.
type State struct {
	Rows    []Row
	Loading bool
	Err     error
	Pass    uint64
}

// View holds the latest aggregation result. Passes are numbered as they
// start; a pass that finishes after a later one has been applied is dropped.
type View struct {
	runner Runner
	log    *zap.Logger

	mu      sync.Mutex
	started uint64
	applied uint64
	rows    []Row
	err     error
	closed  bool
}

func NewView(runner Runner, logger *zap.Logger) *View {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &View{runner: runner, log: logger.Named("recommendation.view")}
}

// Refresh runs a full pass and publishes it unless superseded. It returns
// the pass's own error even when the result was discarded.
func (v *View) Refresh(ctx context.Context) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrClosed
	}
	v.started++
	pass := v.started
	v.mu.Unlock()

	rows, err := v.runner.Run(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return err
	}
	if pass <= v.applied {
		v.log.Debug("dropping superseded pass", zap.Uint64("pass", pass), zap.Uint64("applied", v.applied))
		return err
	}
	v.applied = pass
	if err != nil {
		// no stale data after a failed load
		v.rows = nil
		v.err = err
		v.log.Error("recommended list load failed", zap.Uint64("pass", pass), zap.Error(err))
		return err
	}
	v.rows = rows
	v.err = nil
	return nil
}

// Snapshot copies the current state.
func (v *View) Snapshot() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	rows := make([]Row, len(v.rows))
	copy(rows, v.rows)
	return State{
		Rows:    rows,
		Loading: v.started > v.applied && !v.closed,
		Err:     v.err,
		Pass:    v.applied,
	}
}

// Close detaches the view; results of passes still in flight are ignored.
func (v *View) Close() {
	v.mu.Lock()
	v.closed = true
	v.mu.Unlock()
}
