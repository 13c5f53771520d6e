// Package metric provides the numeric value type shared by every calculator.
// A Value is either a finite number or Unbounded ("never", "infinite"), so the
// zero-vs-unbounded policies of each calculator are explicit at call sites.
package metric

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// unboundedLabel is the JSON encoding of an unbounded value.
const unboundedLabel = "unbounded"

// Value is a tagged number: Finite(x) or Unbounded().
// The zero Value is Finite(0).
type Value struct {
	v         float64
	unbounded bool
}

// Finite wraps a regular number.
func Finite(v float64) Value {
	return Value{v: v}
}

// Unbounded represents a quantity with no finite value (e.g. lifetime at 0% churn).
func Unbounded() Value {
	return Value{unbounded: true}
}

// IsUnbounded reports whether v has no finite value.
func (v Value) IsUnbounded() bool {
	return v.unbounded
}

// Float64 returns the finite number and true, or 0 and false when unbounded.
func (v Value) Float64() (float64, bool) {
	if v.unbounded {
		return 0, false
	}
	return v.v, true
}

// OrZero normalizes unbounded values to 0 for charts and tables.
func (v Value) OrZero() float64 {
	if v.unbounded {
		return 0
	}
	return v.v
}

// String renders "∞" for unbounded values.
func (v Value) String() string {
	if v.unbounded {
		return "∞"
	}
	return strconv.FormatFloat(v.v, 'f', -1, 64)
}

// MarshalJSON encodes finite values as numbers and unbounded as "unbounded".
func (v Value) MarshalJSON() ([]byte, error) {
	if v.unbounded {
		return json.Marshal(unboundedLabel)
	}
	return json.Marshal(v.v)
}

// UnmarshalJSON accepts a number or the string "unbounded".
func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != unboundedLabel {
			return fmt.Errorf("metric: unexpected value %q", s)
		}
		*v = Unbounded()
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("metric: %w", err)
	}
	*v = Finite(f)
	return nil
}
