package models

import "errors"

// Error taxonomy for the ingestion pipeline. Per-message errors (decode,
// fusion) are logged and dropped without touching accumulated state; shape
// errors abort a single frame's classification; the window errors indicate
// an integration bug in the caller.
var (
	// ErrDecode marks a malformed inbound report.
	ErrDecode = errors.New("report decode failed")
	// ErrFusion marks a decoded report the fuser cannot merge.
	ErrFusion = errors.New("sample fusion failed")
	// ErrShape marks an axis series of unexpected length reaching the classifier.
	ErrShape = errors.New("unexpected series shape")
	// ErrFieldNotFound marks a column request for a field absent from a buffered sample.
	ErrFieldNotFound = errors.New("field not found in window")
	// ErrEmptyWindow marks a latest-sample request against an empty window.
	ErrEmptyWindow = errors.New("history window is empty")
)
