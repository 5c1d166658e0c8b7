package decoder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/models"
)

func TestDecode_RigXSplitsPiezoString(t *testing.T) {
	payload := []byte(`{
		"origin": "XPi",
		"timestamp": "10:15:30",
		"piezoString": "1.5,2.25,3,4",
		"x0": 240.1, "x1": 100.5
	}`)

	report, err := Decode(payload)
	require.NoError(t, err)

	assert.Equal(t, models.OriginRigX, report.Origin)
	assert.Equal(t, "10:15:30", report.Timestamp)
	assert.Equal(t, 1.5, report.Fields["pz0"])
	assert.Equal(t, 2.25, report.Fields["pz1"])
	assert.Equal(t, 3.0, report.Fields["pz2"])
	assert.Equal(t, 4.0, report.Fields["pz3"])
	assert.Equal(t, 240.1, report.Fields["x0"])
}

func TestDecode_RoundsToTwoDecimals(t *testing.T) {
	payload := []byte(`{
		"origin": "YPi",
		"timestamp": "10:15:31",
		"y1": 123.456, "y2": 99.994, "y3": 1.236
	}`)

	report, err := Decode(payload)
	require.NoError(t, err)

	assert.Equal(t, 123.46, report.Fields["y1"])
	assert.Equal(t, 99.99, report.Fields["y2"])
	assert.Equal(t, 1.24, report.Fields["y3"])
}

func TestDecode_NumericStringsAreCoerced(t *testing.T) {
	payload := []byte(`{"origin": "YPi", "timestamp": "10:15:31", "y1": "212.339"}`)

	report, err := Decode(payload)
	require.NoError(t, err)
	assert.Equal(t, 212.34, report.Fields["y1"])
}

func TestDecode_NonCanonicalFieldsAreDropped(t *testing.T) {
	payload := []byte(`{
		"origin": "YPi",
		"timestamp": "10:15:31",
		"timestampy": "10:15:30",
		"unknown_sensor": 42,
		"y1": 100
	}`)

	report, err := Decode(payload)
	require.NoError(t, err)

	assert.Contains(t, report.Fields, "y1")
	assert.NotContains(t, report.Fields, "timestampy")
	assert.NotContains(t, report.Fields, "unknown_sensor")
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"invalid json", `not json`},
		{"missing origin", `{"timestamp": "10:15:30", "y1": 1}`},
		{"unknown origin", `{"origin": "ZPi", "timestamp": "10:15:30"}`},
		{"non-string origin", `{"origin": 7, "timestamp": "10:15:30"}`},
		{"rigx missing piezo", `{"origin": "XPi", "timestamp": "10:15:30", "x0": 1}`},
		{"piezo too few tokens", `{"origin": "XPi", "timestamp": "t", "piezoString": "1,2,3"}`},
		{"piezo too many tokens", `{"origin": "XPi", "timestamp": "t", "piezoString": "1,2,3,4,5"}`},
		{"piezo non-numeric token", `{"origin": "XPi", "timestamp": "t", "piezoString": "1,2,abc,4"}`},
		{"non-numeric canonical field", `{"origin": "YPi", "timestamp": "t", "y1": "low"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.payload))
			require.Error(t, err)
			assert.True(t, errors.Is(err, models.ErrDecode), "want ErrDecode, got %v", err)
		})
	}
}
