package models

// Origin identifies which sensor rig produced a report.
type Origin string

const (
	// OriginRigX is the rig mounted along the world-x edge. Its reports carry
	// the packed piezo string.
	OriginRigX Origin = "XPi"
	// OriginRigY is the rig mounted along the world-y edge.
	OriginRigY Origin = "YPi"
)

// Columns is the persisted row layout, one row per fused sample.
// Order matches the original collection format: timestamp, 9 x-rig values
// (x8 is a spare), 10 y-rig values (y0 is a spare), then the auxiliary
// microwave, PIR and piezo channels.
var Columns = []string{
	"timestamp",
	"x0", "x1", "x2", "x3", "x4", "x5", "x6", "x7", "x8",
	"y0", "y1", "y2", "y3", "y4", "y5", "y6", "y7", "y8", "y9",
	"microwave0", "microwave1",
	"PIR0", "PIR1", "PIR2", "PIR3",
	"pz0", "pz1", "pz2", "pz3",
}

// YKeys is the fixed extraction order for the y-axis rig series (8 sensors).
// The x* names are the rig's own sensor labels; see the note on XKeys.
var YKeys = []string{"x7", "x6", "x5", "x4", "x3", "x2", "x1", "x0"}

// XKeys is the fixed extraction order for the x-axis rig series (9 sensors).
// Sensor labels are inverted relative to world axes: the sensors mounted
// along the x edge are named y1..y9 because their readings measure world-y
// depth, and vice versa. The labels are kept as the rigs publish them.
var XKeys = []string{"y1", "y2", "y3", "y4", "y5", "y6", "y7", "y8", "y9"}

// canonicalValues is the set of numeric field names a fused sample may hold
// (every column except timestamp).
var canonicalValues = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Columns)-1)
	for _, c := range Columns[1:] {
		set[c] = struct{}{}
	}
	return set
}()

// IsCanonicalField reports whether name is part of the canonical numeric
// field set. Fields outside the set (such as the y-rig's redundant
// "timestampy") are dropped at decode time.
func IsCanonicalField(name string) bool {
	_, ok := canonicalValues[name]
	return ok
}
