package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFusedSample_FieldCountIncludesTimestamp(t *testing.T) {
	s := NewFusedSample()
	assert.Equal(t, 0, s.FieldCount())

	s.Values["y1"] = 1
	s.Values["y2"] = 2
	assert.Equal(t, 2, s.FieldCount())

	s.Timestamp = "10:00:01"
	assert.Equal(t, 3, s.FieldCount())
}

func TestFusedSample_CloneIsIndependent(t *testing.T) {
	s := NewFusedSample()
	s.Timestamp = "10:00:01"
	s.Values["y1"] = 1

	c := s.Clone()
	c.Values["y1"] = 99
	c.Timestamp = "10:00:02"

	assert.Equal(t, 1.0, s.Values["y1"])
	assert.Equal(t, "10:00:01", s.Timestamp)
}

func TestFusedSample_ClockTimeDropsDatePortion(t *testing.T) {
	s := NewFusedSample()

	s.Timestamp = "10:15:30"
	assert.Equal(t, "10:15:30", s.ClockTime())

	s.Timestamp = "2018-04-12 10:15:30"
	assert.Equal(t, "10:15:30", s.ClockTime())

	s.Timestamp = ""
	assert.Equal(t, "", s.ClockTime())
}

func TestIsCanonicalField(t *testing.T) {
	assert.True(t, IsCanonicalField("y1"))
	assert.True(t, IsCanonicalField("PIR3"))
	assert.True(t, IsCanonicalField("pz0"))
	assert.False(t, IsCanonicalField("timestamp"))
	assert.False(t, IsCanonicalField("timestampy"))
	assert.False(t, IsCanonicalField("bogus"))
}
