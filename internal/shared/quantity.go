package shared

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Quantity is a whole number that also accepts numeric strings on decode.
type Quantity int64

// UnmarshalJSON accepts 12, 12.0 and "12". Anything else is an error.
func (q *Quantity) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}
	n, err := ParseQuantity(raw)
	if err != nil {
		return err
	}
	*q = n
	return nil
}

// ParseQuantity parses a whole number from text.
func ParseQuantity(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Quantity(n), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	return Quantity(f), nil
}

// Int64 returns the value, or zero for a nil pointer.
func (q *Quantity) Int64() int64 {
	if q == nil {
		return 0
	}
	return int64(*q)
}
