package request

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Number is a numeric form field that arrives either as a JSON number (30)
// or as a numeric string ("30"). Null and empty strings count as absent.
//
// Unparseable input is kept as-is so validation can report it per field
// instead of failing the whole body.
type Number struct {
	raw string
	set bool
}

// NumberOf builds a present Number holding v.
func NumberOf(v float64) Number {
	return Number{raw: strconv.FormatFloat(v, 'f', -1, 64), set: true}
}

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*n = Number{}
		return nil
	}

	raw := string(b)
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = s
	}

	raw = strings.TrimSpace(raw)
	*n = Number{raw: raw, set: raw != ""}
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if v, ok := n.Float64(); ok {
		return json.Marshal(v)
	}
	if !n.set {
		return []byte("null"), nil
	}
	return json.Marshal(n.raw)
}

// IsSet reports whether the field was sent with a non-empty value.
func (n Number) IsSet() bool {
	return n.set
}

// Float64 returns the parsed value; ok is false when absent or not a number.
func (n Number) Float64() (float64, bool) {
	if !n.set {
		return 0, false
	}
	v, err := strconv.ParseFloat(n.raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
