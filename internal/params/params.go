// Package params holds the guard functions that shows validate their
// parameters with. Values arrive untyped from the YAML settings tree,
// so every guard takes an any and reports a descriptive error naming
// the parameter, the violated constraint and the offending value.
package params

import (
	"fmt"

	"github.com/stripshow/stripshow/internal/strip"
)

// InvalidParameterError reports a show parameter that is missing,
// unrecognized, of the wrong type or out of range.
type InvalidParameterError struct {
	Param      string
	Constraint string
	Value      any
	hasValue   bool
}

func (e *InvalidParameterError) Error() string {
	msg := "parameter"
	if e.Param != "" {
		msg = fmt.Sprintf("parameter %q", e.Param)
	}
	msg += " " + e.Constraint
	if e.hasValue {
		msg += fmt.Sprintf("! (got: %v)", e.Value)
	} else {
		msg += "!"
	}
	return msg
}

func violation(name, constraint string, value any) *InvalidParameterError {
	return &InvalidParameterError{Param: name, Constraint: constraint, Value: value, hasValue: true}
}

// Missing reports a required parameter that was never set.
func Missing(name string) *InvalidParameterError {
	return &InvalidParameterError{Param: name, Constraint: "is missing"}
}

// Unknown reports a parameter name the receiver does not recognize.
func Unknown(name string) *InvalidParameterError {
	return &InvalidParameterError{Param: name, Constraint: "is not recognized"}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint64:
		return int(n), true
	}
	return 0, false
}

// Numeric verifies v is an int or float.
func Numeric(v any, name string) error {
	if _, ok := toFloat(v); !ok {
		return violation(name, "must be a number", v)
	}
	return nil
}

// NotNegativeNumeric verifies v is a number >= 0.
func NotNegativeNumeric(v any, name string) error {
	f, ok := toFloat(v)
	if !ok || f < 0 {
		return violation(name, "must be a non-negative number", v)
	}
	return nil
}

// PositiveNumeric verifies v is a number > 0.
func PositiveNumeric(v any, name string) error {
	f, ok := toFloat(v)
	if !ok || f <= 0 {
		return violation(name, "must be a positive number", v)
	}
	return nil
}

// Integer verifies v is an integer.
func Integer(v any, name string) error {
	if _, ok := toInt(v); !ok {
		return violation(name, "must be an integer", v)
	}
	return nil
}

// NotNegativeInteger verifies v is an integer >= 0.
func NotNegativeInteger(v any, name string) error {
	n, ok := toInt(v)
	if !ok || n < 0 {
		return violation(name, "must be a non-negative integer", v)
	}
	return nil
}

// PositiveInteger verifies v is an integer > 0.
func PositiveInteger(v any, name string) error {
	n, ok := toInt(v)
	if !ok || n <= 0 {
		return violation(name, "must be a positive integer", v)
	}
	return nil
}

// Boolean verifies v is a bool.
func Boolean(v any, name string) error {
	if _, ok := v.(bool); !ok {
		return violation(name, "must be a boolean value", v)
	}
	return nil
}

// RGBColorTuple verifies v is a 3-element sequence of channel values
// 0-255, as a YAML list decodes.
func RGBColorTuple(v any, name string) error {
	if _, err := AsRGB(v); err != nil {
		return violation(name, "must be an RGB color tuple", v)
	}
	return nil
}

// AsFloat coerces a validated numeric value.
func AsFloat(v any) float64 {
	f, _ := toFloat(v)
	return f
}

// AsInt coerces a validated integer value.
func AsInt(v any) int {
	n, _ := toInt(v)
	return n
}

// AsRGB coerces a 3-element channel sequence to a color. It accepts a
// strip.RGB as-is, so shows can be configured programmatically too.
func AsRGB(v any) (strip.RGB, error) {
	if c, ok := v.(strip.RGB); ok {
		return c, nil
	}
	var chans []any
	switch seq := v.(type) {
	case []any:
		chans = seq
	case []int:
		chans = make([]any, len(seq))
		for i, n := range seq {
			chans[i] = n
		}
	default:
		return strip.RGB{}, fmt.Errorf("not a channel sequence: %T", v)
	}
	if len(chans) != 3 {
		return strip.RGB{}, fmt.Errorf("want 3 channels, got %d", len(chans))
	}
	var out [3]uint8
	for i, ch := range chans {
		n, ok := toInt(ch)
		if !ok || n < 0 || n > 255 {
			return strip.RGB{}, fmt.Errorf("channel %d out of range: %v", i, ch)
		}
		out[i] = uint8(n)
	}
	return strip.RGB{R: out[0], G: out[1], B: out[2]}, nil
}
