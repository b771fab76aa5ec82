package service

import (
	"context"
	"sync"
	"time"

	"github.com/mlindqvist/focal/internal/domain"
)

const (
	// UndoWindow is how long a deleted task can be restored.
	UndoWindow = 5 * time.Minute

	// undoSweepInterval is how often expired entries are dropped.
	undoSweepInterval = 30 * time.Second
)

type undoEntry struct {
	tasks     []domain.Task
	deletedAt time.Time
}

// UndoBuffer retains snapshots of recently deleted tasks keyed by the root
// task id. A snapshot holds the root and its descendants in parent-first
// order so restoring satisfies the parent foreign key. Entries past the
// window are dropped by a periodic sweep.
type UndoBuffer struct {
	mu      sync.Mutex
	window  time.Duration
	entries map[string]undoEntry
	now     func() time.Time
}

// NewUndoBuffer creates a buffer with the default window.
func NewUndoBuffer() *UndoBuffer {
	return &UndoBuffer{
		window:  UndoWindow,
		entries: make(map[string]undoEntry),
		now:     time.Now,
	}
}

// Put stores a deleted subtree snapshot under the root task id.
func (b *UndoBuffer) Put(rootID string, tasks []domain.Task) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[rootID] = undoEntry{tasks: tasks, deletedAt: b.now()}
}

// Take removes and returns the buffered snapshot, if it is still inside the
// window.
func (b *UndoBuffer) Take(rootID string) ([]domain.Task, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.entries[rootID]
	if !ok {
		return nil, false
	}
	delete(b.entries, rootID)
	if b.now().Sub(e.deletedAt) > b.window {
		return nil, false
	}
	return e.tasks, true
}

// Len returns the number of buffered entries, expired or not.
func (b *UndoBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Sweep drops every entry older than the window.
func (b *UndoBuffer) Sweep() {
	b.mu.Lock()
	defer b.mu.Unlock()
	cutoff := b.now().Add(-b.window)
	for id, e := range b.entries {
		if e.deletedAt.Before(cutoff) {
			delete(b.entries, id)
		}
	}
}

// StartSweeper runs the periodic sweep until ctx is cancelled.
func (b *UndoBuffer) StartSweeper(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(undoSweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				b.Sweep()
			}
		}
	}()
}
