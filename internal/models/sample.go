package models

import "strings"

// RawReport is one decoded transport message from a rig. It is constructed
// per inbound message, consumed immediately by the fuser, and not retained.
type RawReport struct {
	Origin    Origin
	Timestamp string
	// Fields maps canonical field names to values rounded to 2 decimal
	// places. For RigX reports the packed piezo string has already been
	// split into pz0..pz3 by the decoder.
	Fields map[string]float64
}

// FusedSample is one logical time-step combining the most recent
// contribution from both rigs. The fuser owns the single in-progress
// instance; completed samples are emitted as copies.
type FusedSample struct {
	Timestamp string
	Values    map[string]float64
}

// NewFusedSample returns an empty sample ready for accumulation.
func NewFusedSample() *FusedSample {
	return &FusedSample{Values: make(map[string]float64)}
}

// FieldCount returns the number of populated fields, counting the timestamp
// as one field. The completion threshold compares against this count.
func (s *FusedSample) FieldCount() int {
	n := len(s.Values)
	if s.Timestamp != "" {
		n++
	}
	return n
}

// Clone returns a deep copy, used when emitting a completed sample while the
// fuser keeps accumulating into its own instance.
func (s *FusedSample) Clone() *FusedSample {
	values := make(map[string]float64, len(s.Values))
	for k, v := range s.Values {
		values[k] = v
	}
	return &FusedSample{Timestamp: s.Timestamp, Values: values}
}

// ClockTime returns the wall-clock component of the timestamp. Rigs usually
// send bare "HH:MM:SS"; if a date portion is present it is discarded.
func (s *FusedSample) ClockTime() string {
	parts := strings.Fields(s.Timestamp)
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}
