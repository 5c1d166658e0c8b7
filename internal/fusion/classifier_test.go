package fusion

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/models"
)

// noDetection fills a series with readings above the presence limit.
func noDetection(n int) []float64 {
	series := make([]float64, n)
	for i := range series {
		series[i] = 260
	}
	return series
}

// quietCross fills the cross-check series with seated-range readings.
func quietCross() []float64 {
	series := make([]float64, XSeriesLen)
	for i := range series {
		series[i] = 200
	}
	return series
}

func TestClassify_SingleSeatedDetection(t *testing.T) {
	ySeries := noDetection(YSeriesLen)
	ySeries[0] = 100

	frame, err := Classify(ySeries, quietCross())
	require.NoError(t, err)

	require.Len(t, frame.Seated, 1)
	assert.Empty(t, frame.Standing)
	assert.InDelta(t, 100.0, frame.Seated[0].X, 1e-9)
	assert.InDelta(t, 250.0/9, frame.Seated[0].Y, 1e-9)
	assert.Equal(t, models.PostureSeated, frame.Seated[0].Posture)
}

func TestClassify_StandingWhenCrossCheckIsLow(t *testing.T) {
	ySeries := noDetection(YSeriesLen)
	ySeries[0] = 100 // bucket 3: cross-check buckets 2 and 1

	xSeries := quietCross()
	xSeries[2] = 150

	frame, err := Classify(ySeries, xSeries)
	require.NoError(t, err)

	require.Len(t, frame.Standing, 1)
	assert.Empty(t, frame.Seated)
	assert.InDelta(t, 100.0, frame.Standing[0].X, 1e-9)
	assert.InDelta(t, 250.0/9, frame.Standing[0].Y, 1e-9)
	assert.Equal(t, models.PostureStanding, frame.Standing[0].Posture)
}

func TestClassify_AdjacentDetectionIsSkipped(t *testing.T) {
	ySeries := noDetection(YSeriesLen)
	ySeries[3] = 100
	ySeries[4] = 105 // double-detection of the same object

	frame, err := Classify(ySeries, quietCross())
	require.NoError(t, err)

	require.Len(t, frame.Seated, 1)
	assert.InDelta(t, 100.0, frame.Seated[0].X, 1e-9)
	assert.InDelta(t, (250.0/9)*4, frame.Seated[0].Y, 1e-9)
}

func TestClassify_SeparatedDetectionsAllContribute(t *testing.T) {
	ySeries := noDetection(YSeriesLen)
	ySeries[0] = 60
	ySeries[2] = 120
	ySeries[4] = 200

	frame, err := Classify(ySeries, quietCross())
	require.NoError(t, err)
	assert.Len(t, frame.Seated, 3)
}

func TestClassify_ShallowDepthWrapsCrossCheckLookup(t *testing.T) {
	ySeries := noDetection(YSeriesLen)
	ySeries[2] = 10 // bucket 0: lookups at -1 and -2 wrap to the series end

	xSeries := quietCross()
	xSeries[XSeriesLen-1] = 100

	frame, err := Classify(ySeries, xSeries)
	require.NoError(t, err)
	require.Len(t, frame.Standing, 1)
	assert.InDelta(t, 10.0, frame.Standing[0].X, 1e-9)
}

func TestClassify_NoDetections(t *testing.T) {
	frame, err := Classify(noDetection(YSeriesLen), quietCross())
	require.NoError(t, err)
	assert.Empty(t, frame.Seated)
	assert.Empty(t, frame.Standing)
}

func TestClassify_IsDeterministic(t *testing.T) {
	ySeries := noDetection(YSeriesLen)
	ySeries[1] = 90
	ySeries[5] = 230
	xSeries := quietCross()
	xSeries[1] = 120

	first, err := Classify(ySeries, xSeries)
	require.NoError(t, err)
	second, err := Classify(ySeries, xSeries)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestClassify_ShapeErrors(t *testing.T) {
	_, err := Classify(noDetection(YSeriesLen-1), quietCross())
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrShape))

	_, err = Classify(noDetection(YSeriesLen), noDetection(XSeriesLen+1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrShape))
}
