package fusion

import (
	"fmt"

	"github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/models"
)

// Window is the fixed-capacity ordered buffer of the most recent completed
// fused samples, oldest first. Eviction is strict FIFO. The assembler is
// the only writer.
type Window struct {
	samples []*models.FusedSample
}

// NewWindow creates an empty window of capacity WindowSize.
func NewWindow() *Window {
	return &Window{samples: make([]*models.FusedSample, 0, WindowSize)}
}

// Push appends a sample, evicting the oldest entry first once the window
// is at capacity.
func (w *Window) Push(sample *models.FusedSample) {
	if len(w.samples) >= WindowSize {
		copy(w.samples, w.samples[1:])
		w.samples = w.samples[:WindowSize-1]
	}
	w.samples = append(w.samples, sample)
}

// Len returns the number of buffered samples.
func (w *Window) Len() int {
	return len(w.samples)
}

// IsFull reports whether the window holds exactly WindowSize samples.
// Samples become eligible for series publication only once this holds.
func (w *Window) IsFull() bool {
	return len(w.samples) == WindowSize
}

// Latest returns the most recently pushed sample. It fails with
// models.ErrEmptyWindow when nothing has been pushed yet.
func (w *Window) Latest() (*models.FusedSample, error) {
	if len(w.samples) == 0 {
		return nil, models.ErrEmptyWindow
	}
	return w.samples[len(w.samples)-1], nil
}

// Column returns the named field's values across all buffered samples,
// oldest first. It fails with models.ErrFieldNotFound if any buffered
// sample lacks the field.
func (w *Window) Column(field string) ([]float64, error) {
	values := make([]float64, 0, len(w.samples))
	for i, sample := range w.samples {
		v, ok := sample.Values[field]
		if !ok {
			return nil, fmt.Errorf("%w: %s missing in sample %d", models.ErrFieldNotFound, field, i)
		}
		values = append(values, v)
	}
	return values, nil
}
