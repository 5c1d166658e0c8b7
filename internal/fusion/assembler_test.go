package fusion

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/models"
)

type capturePublisher struct {
	snapshots []*models.Snapshot
}

func (c *capturePublisher) Publish(_ context.Context, snapshot *models.Snapshot) error {
	c.snapshots = append(c.snapshots, snapshot)
	return nil
}

// completeSample builds a fused sample carrying every axis field. The y1
// reading is set per sample so column ordering is observable.
func completeSample(ts string, y1 float64) *models.FusedSample {
	s := models.NewFusedSample()
	s.Timestamp = ts
	for _, key := range models.XKeys {
		s.Values[key] = 260
	}
	for _, key := range models.YKeys {
		s.Values[key] = 200
	}
	s.Values["y1"] = y1
	return s
}

func TestAssembler_PublishesOnlyOnceWindowIsFull(t *testing.T) {
	capture := &capturePublisher{}
	a := NewAssembler(zap.NewNop(), capture)
	ctx := context.Background()

	for i := 1; i < WindowSize; i++ {
		require.NoError(t, a.Ingest(ctx, completeSample(fmt.Sprintf("10:00:0%d", i), 260)))
		assert.Empty(t, capture.snapshots)
	}

	require.NoError(t, a.Ingest(ctx, completeSample("10:00:05", 260)))
	require.Len(t, capture.snapshots, 1)

	require.NoError(t, a.Ingest(ctx, completeSample("10:00:06", 260)))
	require.Len(t, capture.snapshots, 2)
	assert.Equal(t, uint64(1), capture.snapshots[0].Generation)
	assert.Equal(t, uint64(2), capture.snapshots[1].Generation)
}

func TestAssembler_SnapshotCarriesAllSeriesAndTimestamps(t *testing.T) {
	capture := &capturePublisher{}
	a := NewAssembler(zap.NewNop(), capture)
	ctx := context.Background()

	for i := 1; i <= 6; i++ {
		require.NoError(t, a.Ingest(ctx, completeSample(fmt.Sprintf("10:00:0%d", i), float64(250+i))))
	}

	snapshot := capture.snapshots[len(capture.snapshots)-1]
	assert.Len(t, snapshot.Series, len(models.XKeys)+len(models.YKeys))
	for key, column := range snapshot.Series {
		assert.Len(t, column, WindowSize, "series %s", key)
	}
	// Oldest first, last five of six samples.
	assert.Equal(t, []float64{252, 253, 254, 255, 256}, snapshot.Series["y1"])
	assert.Equal(t, []string{"10:00:02", "10:00:03", "10:00:04", "10:00:05", "10:00:06"}, snapshot.Timestamps)
}

func TestAssembler_SnapshotCarriesClassifiedPositions(t *testing.T) {
	capture := &capturePublisher{}
	a := NewAssembler(zap.NewNop(), capture)
	ctx := context.Background()

	for i := 1; i <= WindowSize; i++ {
		sample := completeSample(fmt.Sprintf("10:00:0%d", i), 260)
		sample.Values["y3"] = 100 // one seated detection at slot 3
		require.NoError(t, a.Ingest(ctx, sample))
	}

	snapshot := capture.snapshots[0]
	require.Len(t, snapshot.Seated, 1)
	assert.Empty(t, snapshot.Standing)
	assert.InDelta(t, 100.0, snapshot.Seated[0].X, 1e-9)
	assert.InDelta(t, (250.0/9)*3, snapshot.Seated[0].Y, 1e-9)
}

func TestAssembler_MissingFieldAbortsFrameAndKeepsPreviousState(t *testing.T) {
	capture := &capturePublisher{}
	a := NewAssembler(zap.NewNop(), capture)
	ctx := context.Background()

	for i := 1; i <= WindowSize; i++ {
		require.NoError(t, a.Ingest(ctx, completeSample(fmt.Sprintf("10:00:0%d", i), 260)))
	}
	require.Len(t, capture.snapshots, 1)

	broken := completeSample("10:00:06", 260)
	delete(broken.Values, "y5")

	err := a.Ingest(ctx, broken)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrFieldNotFound))
	assert.Len(t, capture.snapshots, 1, "a failed frame must not publish a new generation")
}

func TestBoard_SnapshotHandoff(t *testing.T) {
	b := NewBoard()

	_, ok := b.Snapshot()
	assert.False(t, ok)

	published := &models.Snapshot{Generation: 3}
	require.NoError(t, b.Publish(context.Background(), published))

	got, ok := b.Snapshot()
	require.True(t, ok)
	assert.Equal(t, uint64(3), got.Generation)
}
