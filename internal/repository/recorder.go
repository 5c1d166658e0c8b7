// Package repository persists fused samples as 30-column rows.
package repository

import (
	"context"

	"github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/fusion"
	"github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/models"
)

// Recorder writes one row per persisted sample. Implementations handle
// their own header-once discipline (CSV header line, Postgres DDL).
type Recorder interface {
	Record(ctx context.Context, sample *models.FusedSample) error
	Close() error
}

// ShouldPersist decides whether a fused sample is complete enough to
// persist. It reuses the fuser's completion predicate so persistence and
// presentation agree on what counts as a usable sample.
func ShouldPersist(sample *models.FusedSample) bool {
	return fusion.Complete(sample)
}
