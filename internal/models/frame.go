package models

// Posture classifies a detected object from the piezo vibration signature.
type Posture string

const (
	PostureSeated   Posture = "seated"
	PostureStanding Posture = "standing"
)

// ClassifiedPosition is one inferred object location in environment units
// (X in [0, 280], Y in [0, 250]). Positions carry no identity across frames.
type ClassifiedPosition struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Posture Posture `json:"posture"`
}

// Frame is the grouped output of one classification pass. Seated and
// standing positions stay separate series because downstream rendering
// plots them as distinct groups.
type Frame struct {
	Seated   []ClassifiedPosition `json:"seated"`
	Standing []ClassifiedPosition `json:"standing"`
}

// Snapshot is the atomically published presentation payload: the 5-slot
// timestamp series, the last-5 values of each of the 17 axis fields, and
// the latest classified positions. A reader never observes a partially
// updated generation.
type Snapshot struct {
	Generation uint64               `json:"generation"`
	Timestamps []string             `json:"timestamps"`
	Series     map[string][]float64 `json:"series"`
	Seated     []ClassifiedPosition `json:"seated"`
	Standing   []ClassifiedPosition `json:"standing"`
}
