package params

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stripshow/stripshow/internal/strip"
)

func TestGuards(t *testing.T) {
	tests := []struct {
		name  string
		guard func(any, string) error
		ok    []any
		bad   []any
	}{
		{"Numeric", Numeric, []any{0, -3, 1.5, int64(7)}, []any{"x", true, nil}},
		{"NotNegativeNumeric", NotNegativeNumeric, []any{0, 0.5, 12}, []any{-1, -0.1, "x"}},
		{"PositiveNumeric", PositiveNumeric, []any{0.1, 3}, []any{0, -2, "x"}},
		{"Integer", Integer, []any{0, -5, int64(9)}, []any{1.5, "x", nil}},
		{"NotNegativeInteger", NotNegativeInteger, []any{0, 7}, []any{-1, 2.5}},
		{"PositiveInteger", PositiveInteger, []any{1, 100}, []any{0, -3, 1.0}},
		{"Boolean", Boolean, []any{true, false}, []any{0, 1, "true"}},
		{"RGBColorTuple", RGBColorTuple, []any{[]any{0, 0, 0}, []any{255, 128, 1}, []int{1, 2, 3}}, []any{[]any{1, 2}, []any{1, 2, 256}, []any{-1, 0, 0}, "red", 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range tt.ok {
				assert.NoError(t, tt.guard(v, "p"), "value %v", v)
			}
			for _, v := range tt.bad {
				err := tt.guard(v, "p")
				require.Error(t, err, "value %v", v)
				var pErr *InvalidParameterError
				require.True(t, errors.As(err, &pErr))
				assert.Equal(t, "p", pErr.Param)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	err := PositiveInteger(-4, "num_cycles")
	assert.EqualError(t, err, `parameter "num_cycles" must be a positive integer! (got: -4)`)
	assert.EqualError(t, Missing("pause_sec"), `parameter "pause_sec" is missing!`)
	assert.EqualError(t, Unknown("velocity"), `parameter "velocity" is not recognized!`)
}

func TestAsRGB(t *testing.T) {
	c, err := AsRGB([]any{10, 20, 30})
	require.NoError(t, err)
	assert.Equal(t, strip.RGB{R: 10, G: 20, B: 30}, c)

	c, err = AsRGB(strip.RGB{R: 1})
	require.NoError(t, err)
	assert.Equal(t, strip.RGB{R: 1}, c)

	_, err = AsRGB([]any{10, 20})
	assert.Error(t, err)
}
