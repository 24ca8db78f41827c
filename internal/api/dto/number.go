package dto

import (
	"fmt"
	"strconv"
	"strings"
)

// Number accepts a JSON number or a numeric string, the two shapes clients
// send for seats and price. Anything that does not parse as a number is a
// hard unmarshal error, so coercion happens exactly once at the boundary
// and bad input never turns into a zero or NaN downstream.
type Number float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		raw = raw[1 : len(raw)-1]
	}
	if raw == "" || raw == "null" {
		return fmt.Errorf("expected a numeric value")
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("expected a numeric value, got %q", raw)
	}
	*n = Number(value)
	return nil
}

// Float64 returns the plain value.
func (n Number) Float64() float64 {
	return float64(n)
}

// Int32 reports the value as an int32 when it is a whole number in range.
func (n Number) Int32() (int32, bool) {
	v := float64(n)
	if v != float64(int64(v)) {
		return 0, false
	}
	if v < -2147483648 || v > 2147483647 {
		return 0, false
	}
	return int32(v), true
}
