package fusion

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/models"
)

// Publisher receives each completed snapshot generation. Implementations:
// the in-process board, the Redis cache and the websocket hub.
type Publisher interface {
	Publish(ctx context.Context, snapshot *models.Snapshot) error
}

// Assembler ties the window and the classifier together. On every completed
// fused sample it pushes into the window, classifies the latest sample's
// axis series and maintains the 5-slot timestamp series; once the window is
// full it republishes the per-field last-5 series, the timestamps and the
// classified positions as one snapshot generation.
type Assembler struct {
	window     *Window
	timestamps []string
	frame      *models.Frame
	generation uint64
	publishers []Publisher
	logger     *zap.Logger
}

// NewAssembler creates an assembler publishing to the given sinks.
func NewAssembler(logger *zap.Logger, publishers ...Publisher) *Assembler {
	return &Assembler{
		window:     NewWindow(),
		timestamps: make([]string, 0, WindowSize),
		publishers: publishers,
		logger:     logger,
	}
}

// Window exposes the history buffer, read-only by convention.
func (a *Assembler) Window() *Window {
	return a.window
}

// Ingest processes one completed fused sample. A sample whose series cannot
// be extracted or classified aborts that frame only: the window keeps the
// sample, the previous presentation state is retained, and the error is
// returned for logging.
func (a *Assembler) Ingest(ctx context.Context, sample *models.FusedSample) error {
	a.window.Push(sample)
	a.pushTimestamp(sample.ClockTime())

	ySeries, err := extractSeries(sample, models.XKeys)
	if err != nil {
		return err
	}
	xSeries, err := extractSeries(sample, models.YKeys)
	if err != nil {
		return err
	}

	frame, err := Classify(ySeries, xSeries)
	if err != nil {
		return err
	}
	a.frame = frame

	if !a.window.IsFull() {
		return nil
	}
	return a.publish(ctx)
}

// pushTimestamp appends with the same FIFO discipline as the window.
func (a *Assembler) pushTimestamp(ts string) {
	if len(a.timestamps) >= WindowSize {
		copy(a.timestamps, a.timestamps[1:])
		a.timestamps = a.timestamps[:WindowSize-1]
	}
	a.timestamps = append(a.timestamps, ts)
}

// publish recomputes all per-field series and hands the snapshot to every
// publisher. A failing publisher is logged and does not block the others.
func (a *Assembler) publish(ctx context.Context) error {
	series := make(map[string][]float64, len(models.XKeys)+len(models.YKeys))
	for _, key := range models.XKeys {
		column, err := a.window.Column(key)
		if err != nil {
			return err
		}
		series[key] = column
	}
	for _, key := range models.YKeys {
		column, err := a.window.Column(key)
		if err != nil {
			return err
		}
		series[key] = column
	}

	a.generation++
	snapshot := &models.Snapshot{
		Generation: a.generation,
		Timestamps: append([]string(nil), a.timestamps...),
		Series:     series,
		Seated:     a.frame.Seated,
		Standing:   a.frame.Standing,
	}

	for _, p := range a.publishers {
		if err := p.Publish(ctx, snapshot); err != nil {
			a.logger.Warn("Snapshot publish failed",
				zap.Uint64("generation", snapshot.Generation),
				zap.Error(err),
			)
		}
	}
	return nil
}

// extractSeries pulls the latest sample's readings in fixed key order.
func extractSeries(sample *models.FusedSample, keys []string) ([]float64, error) {
	series := make([]float64, 0, len(keys))
	for _, key := range keys {
		v, ok := sample.Values[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s missing in latest sample", models.ErrFieldNotFound, key)
		}
		series = append(series, v)
	}
	return series, nil
}
