package fusion

import (
	"fmt"

	"github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/models"
)

// Classify converts one fused sample's two axis series into grouped
// classified positions. It is a pure function of its inputs.
//
// ySeries holds the 9 readings extracted by XKeys order (fields y1..y9) and
// xSeries the 8 readings extracted by YKeys order (fields x7..x0). The
// series names follow rig mounting, not world axes: the y-rig series
// supplies the world-x coordinate and vice versa.
//
// A reading below PresenceLimit marks a detection. Its world-x coordinate
// is the reading itself (the depth), its world-y coordinate comes from the
// sensor's slot in the physical grid. The depth's bucket indexes the
// cross-check series: a low reading at bucket-1 or bucket-2 means the mass
// signature of a standing person. Adjacent sensors commonly double-detect
// one object, so the index after a detection is skipped.
func Classify(ySeries, xSeries []float64) (*models.Frame, error) {
	if len(ySeries) != YSeriesLen {
		return nil, fmt.Errorf("%w: y series has %d readings, want %d", models.ErrShape, len(ySeries), YSeriesLen)
	}
	if len(xSeries) != XSeriesLen {
		return nil, fmt.Errorf("%w: x series has %d readings, want %d", models.ErrShape, len(xSeries), XSeriesLen)
	}

	frame := &models.Frame{
		Seated:   []models.ClassifiedPosition{},
		Standing: []models.ClassifiedPosition{},
	}

	ignore := -1
	for i, depth := range ySeries {
		if i == ignore {
			continue
		}
		if depth >= PresenceLimit {
			continue
		}

		lateral := LateralSpacing * float64(i+1)
		bucket := int(depth / BucketSize)

		if wrapAt(xSeries, bucket-1) < PostureLimit || wrapAt(xSeries, bucket-2) < PostureLimit {
			frame.Standing = append(frame.Standing, models.ClassifiedPosition{
				X: depth, Y: lateral, Posture: models.PostureStanding,
			})
		} else {
			frame.Seated = append(frame.Seated, models.ClassifiedPosition{
				X: depth, Y: lateral, Posture: models.PostureSeated,
			})
		}

		ignore = i + 1
	}

	return frame, nil
}

// wrapAt indexes the series with wraparound: negative indices count from
// the end, matching the collection rig's historical lookup behavior for
// shallow depths.
func wrapAt(series []float64, i int) float64 {
	n := len(series)
	return series[((i%n)+n)%n]
}
