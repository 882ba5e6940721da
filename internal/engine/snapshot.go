package engine

import (
	"sync"
	"time"

	"github.com/pingdeck/pingdeck/internal/target"
)

// Snapshot is one published view of every monitored target. Consumers get
// the whole collection at once; targets from different cycles never mix
// within a snapshot generation.
type Snapshot struct {
	Targets []target.View
	Version uint64
	Taken   time.Time
}

// Board is the hand-off point between the engine and the presentation
// layer. Publishing replaces the entire snapshot under a short-held lock, so
// readers either see the previous generation or the new one, never a blend.
type Board struct {
	mu      sync.RWMutex
	current Snapshot
}

// NewBoard creates an empty board. Latest returns a zero-version snapshot
// with no targets until the first Publish.
func NewBoard() *Board {
	return &Board{}
}

// Publish replaces the current snapshot with the given views.
func (b *Board) Publish(views []target.View) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = Snapshot{
		Targets: views,
		Version: b.current.Version + 1,
		Taken:   time.Now(),
	}
}

// Latest returns the most recently published snapshot.
func (b *Board) Latest() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.current
}
