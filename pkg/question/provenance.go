package question

import (
	"sync"
	"time"
)

// Provenance is transient, client-side feedback about a recent change to a
// question. It never gates a server call.
type Provenance string

const (
	ProvenanceDefault  Provenance = "default"
	ProvenanceNew      Provenance = "new"
	ProvenanceEdited   Provenance = "edited"
	ProvenanceArchived Provenance = "archived"
)

// DecayAfter is how long new/edited stays visible before reverting.
const DecayAfter = 10 * time.Second

// Timer is a cancellable scheduled callback.
type Timer interface {
	Stop() bool
}

// Scheduler runs f after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

type entry struct {
	state Provenance
	gen   uint64
	timer Timer
}

// Tracker keeps provenance per question id. Every mutation bumps the entry's
// generation; a decay only applies if generation and state are unchanged
// since it was scheduled.
type Tracker struct {
	sched Scheduler
	dwell time.Duration

	mu      sync.Mutex
	entries map[int64]*entry
	closed  bool
}

// NewTracker uses time.AfterFunc when sched is nil.
func NewTracker(sched Scheduler) *Tracker {
	if sched == nil {
		sched = realScheduler{}
	}
	return &Tracker{sched: sched, dwell: DecayAfter, entries: make(map[int64]*entry)}
}

func (t *Tracker) MarkNew(id int64)    { t.mark(id, ProvenanceNew) }
func (t *Tracker) MarkEdited(id int64) { t.mark(id, ProvenanceEdited) }

// MarkArchived is terminal: no decay is scheduled.
func (t *Tracker) MarkArchived(id int64) { t.mark(id, ProvenanceArchived) }

func (t *Tracker) mark(id int64, state Provenance) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	e, ok := t.entries[id]
	if !ok {
		e = &entry{}
		t.entries[id] = e
	}
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.gen++
	e.state = state
	if state == ProvenanceArchived {
		return
	}
	gen := e.gen
	e.timer = t.sched.AfterFunc(t.dwell, func() { t.decay(id, gen, state) })
}

func (t *Tracker) decay(id int64, gen uint64, scheduled Provenance) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[id]
	if !ok || e.gen != gen || e.state != scheduled {
		return
	}
	delete(t.entries, id)
}

// State returns the provenance of id; unknown ids are default.
func (t *Tracker) State(id int64) Provenance {
	t.mu.Lock()
	defer t.mu.Unlock()
	if e, ok := t.entries[id]; ok {
		return e.state
	}
	return ProvenanceDefault
}

// Reset drops pending feedback after a full reload. Archived marks stay.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for id, e := range t.entries {
		if e.state == ProvenanceArchived {
			continue
		}
		if e.timer != nil {
			e.timer.Stop()
		}
		delete(t.entries, id)
	}
}

// Prune forgets archived marks for ids the server no longer returns.
// New and edited marks are left to decay on their own.
func (t *Tracker) Prune(present map[int64]struct{}) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for id, e := range t.entries {
		if e.state != ProvenanceArchived {
			continue
		}
		if _, ok := present[id]; ok {
			continue
		}
		delete(t.entries, id)
		n++
	}
	return n
}

// Close stops all timers; later marks are ignored.
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	for _, e := range t.entries {
		if e.timer != nil {
			e.timer.Stop()
		}
	}
	t.entries = make(map[int64]*entry)
}
