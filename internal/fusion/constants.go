package fusion

// Geometry and threshold constants mirrored from the deployed sensor grid.
//
// The environment is a rectangle, 280 units along x and 250 along y, with
// 9 ultrasound sensors mounted along the x edge and 8 along the y edge.
const (
	EnvWidth  = 280.0
	EnvHeight = 250.0

	// YSeriesLen is the number of readings the classifier iterates
	// (the y1..y9 sensor fields).
	YSeriesLen = 9
	// XSeriesLen is the number of cross-check readings
	// (the x7..x0 sensor fields).
	XSeriesLen = 8

	// PresenceLimit: readings at or above this mean "no detection".
	PresenceLimit = 250.0
	// PostureLimit: a cross-check reading below this marks a standing
	// mass signature, at or above it a seated one.
	PostureLimit = 180.0
	// BucketSize maps a depth reading into the cross-check rig's bins
	// (environment width 280 over 9 bins, indexed against 8 sensors).
	BucketSize = 28.0
	// LateralSpacing is the physical grid spacing along the y edge.
	LateralSpacing = EnvHeight / 9

	// WindowSize is the fused-sample lookback the presentation layer expects.
	WindowSize = 5
	// CompletionThreshold: a sample holding more than this many populated
	// fields (timestamp included) counts as complete.
	CompletionThreshold = 14
)
