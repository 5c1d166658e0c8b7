// Package decoder parses raw rig reports into typed records.
//
// Reports arrive as JSON objects with an origin tag ("XPi" or "YPi"), a
// timestamp string and a set of named numeric readings. RigX reports also
// carry a packed "piezoString" of exactly 4 comma-separated values which is
// split into the pz0..pz3 fields before the report reaches the fuser.
package decoder

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/models"
)

// piezoField is the packed auxiliary field on RigX reports.
const piezoField = "piezoString"

// passthrough fields are never converted to numbers.
var passthrough = map[string]struct{}{
	"timestamp":  {},
	"origin":     {},
	piezoField:   {},
	"timestampy": {},
}

// Decode parses one raw report payload. It fails with models.ErrDecode when
// the payload is not well-formed JSON, the origin tag is missing or unknown,
// a canonical numeric field does not parse, or a RigX piezo string does not
// split into exactly 4 numeric tokens. Numeric readings are rounded to 2
// decimal places; timestamp and origin pass through untouched. Field names
// outside the canonical set are dropped.
func Decode(payload []byte) (*models.RawReport, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", models.ErrDecode, err)
	}

	originVal, ok := raw["origin"]
	if !ok {
		return nil, fmt.Errorf("%w: missing origin field", models.ErrDecode)
	}
	originStr, ok := originVal.(string)
	if !ok {
		return nil, fmt.Errorf("%w: origin is not a string", models.ErrDecode)
	}
	origin := models.Origin(originStr)
	if origin != models.OriginRigX && origin != models.OriginRigY {
		return nil, fmt.Errorf("%w: unknown origin %q", models.ErrDecode, originStr)
	}

	report := &models.RawReport{
		Origin: origin,
		Fields: make(map[string]float64, len(raw)),
	}

	if ts, ok := raw["timestamp"].(string); ok {
		report.Timestamp = ts
	}

	if origin == models.OriginRigX {
		packed, ok := raw[piezoField].(string)
		if !ok {
			return nil, fmt.Errorf("%w: RigX report missing %s", models.ErrDecode, piezoField)
		}
		if err := splitPiezo(packed, report.Fields); err != nil {
			return nil, err
		}
	}

	for name, value := range raw {
		if _, skip := passthrough[name]; skip {
			continue
		}
		if !models.IsCanonicalField(name) {
			continue
		}
		v, err := toFloat(value)
		if err != nil {
			return nil, fmt.Errorf("%w: field %s: %v", models.ErrDecode, name, err)
		}
		report.Fields[name] = round2(v)
	}

	return report, nil
}

// splitPiezo splits the packed piezo string into pz0..pz3.
func splitPiezo(packed string, fields map[string]float64) error {
	tokens := strings.Split(packed, ",")
	if len(tokens) != 4 {
		return fmt.Errorf("%w: %s has %d tokens, want 4", models.ErrDecode, piezoField, len(tokens))
	}
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			return fmt.Errorf("%w: %s token %d is not numeric: %q", models.ErrDecode, piezoField, i, tok)
		}
		fields[fmt.Sprintf("pz%d", i)] = v
	}
	return nil
}

// toFloat coerces a decoded JSON value to float64. Rigs send readings as
// either numbers or numeric strings.
func toFloat(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("not numeric: %q", v)
		}
		return f, nil
	case json.Number:
		return v.Float64()
	default:
		return 0, fmt.Errorf("unsupported type %T", value)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
