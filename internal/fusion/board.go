package fusion

import (
	"context"
	"sync"

	"github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/models"
)

// Board is the in-process handoff between the ingestion pipeline and
// presentation readers: a single-writer, multi-reader snapshot holder.
// The assembler replaces the snapshot whole, so readers always see one
// consistent generation.
type Board struct {
	mu       sync.RWMutex
	snapshot *models.Snapshot
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Publish installs a new snapshot generation.
func (b *Board) Publish(_ context.Context, snapshot *models.Snapshot) error {
	b.mu.Lock()
	b.snapshot = snapshot
	b.mu.Unlock()
	return nil
}

// Snapshot returns the current generation, or false before the first
// publication.
func (b *Board) Snapshot() (*models.Snapshot, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.snapshot == nil {
		return nil, false
	}
	return b.snapshot, true
}
