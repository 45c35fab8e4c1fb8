package show

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stripshow/stripshow/internal/params"
	"github.com/stripshow/stripshow/internal/strip"
)

func testStrip(n int) *strip.Strip {
	return strip.New(n, &fakeRenderer{})
}

func TestWheelEndpoints(t *testing.T) {
	assert.Equal(t, strip.RGB{R: 255}, Wheel(0))
	assert.Equal(t, strip.RGB{G: 255, B: 255}, Wheel(0.5))
}

func TestSolidColorRequiresColor(t *testing.T) {
	s := testStrip(4)
	r := configured(t, NewSolidColor(s), &fakeRenderer{}, 1, 1)
	// strip mismatch does not matter here, CheckRunnable fails first
	err := r.Run()
	require.Error(t, err)
	var pErr *params.InvalidParameterError
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, "color", pErr.Param)
}

func TestSolidColorPaints(t *testing.T) {
	s := testStrip(4)
	p := NewSolidColor(s)
	require.NoError(t, p.SetParameter("color", []any{10, 20, 30}))
	require.NoError(t, p.BeforeStart())
	for i := 0; i < s.NumLEDs(); i++ {
		assert.Equal(t, strip.RGB{R: 10, G: 20, B: 30}, s.Pixel(i))
	}
	repaint, err := p.Update(0, 0)
	require.NoError(t, err)
	assert.False(t, repaint)
}

func TestSolidColorRejectsBadColor(t *testing.T) {
	p := NewSolidColor(testStrip(4))
	assert.Error(t, p.SetParameter("color", []any{10, 20}))
	assert.Error(t, p.SetParameter("color", []any{10, 20, 300}))
	assert.Error(t, p.SetParameter("color", "red"))
	assert.Error(t, p.SetParameter("hue", 3))
}

func TestRainbowCoversStrip(t *testing.T) {
	s := testStrip(8)
	p := NewRainbow(s)
	repaint, err := p.Update(0, 0)
	require.NoError(t, err)
	assert.True(t, repaint)
	assert.Equal(t, strip.RGB{R: 255}, s.Pixel(0))
	for i := 0; i < s.NumLEDs(); i++ {
		c := s.Pixel(i)
		if c.R != 255 && c.G != 255 && c.B != 255 {
			t.Fatalf("pixel %d not on the wheel: %v", i, c)
		}
	}
}

func TestTheaterChaseSpacing(t *testing.T) {
	s := testStrip(9)
	p := NewTheaterChase(s)
	require.NoError(t, p.SetParameter("color", []any{255, 0, 0}))

	for step := 0; step < chaseSpacing; step++ {
		_, err := p.Update(step, 0)
		require.NoError(t, err)
		for i := 0; i < s.NumLEDs(); i++ {
			lit := i%chaseSpacing == step%chaseSpacing
			if lit {
				assert.Equal(t, strip.RGB{R: 255}, s.Pixel(i), "step %d pixel %d", step, i)
			} else {
				assert.Equal(t, strip.RGB{}, s.Pixel(i), "step %d pixel %d", step, i)
			}
		}
	}
}

func TestPixelRunSinglePixel(t *testing.T) {
	s := testStrip(5)
	p := NewPixelRun(s)
	for step := 0; step < 7; step++ {
		_, err := p.Update(step, 0)
		require.NoError(t, err)
		lit := 0
		for i := 0; i < s.NumLEDs(); i++ {
			if s.Pixel(i) != (strip.RGB{}) {
				lit++
				assert.Equal(t, step%s.NumLEDs(), i)
			}
		}
		assert.Equal(t, 1, lit, "step %d", step)
	}
}

func TestRegistry(t *testing.T) {
	s := testStrip(4)
	for _, name := range Names() {
		p, err := New(name, s)
		require.NoError(t, err)
		require.NotNil(t, p)
	}
	_, err := New("disco", s)
	assert.Error(t, err)
	assert.Equal(t, []string{"pixelrun", "rainbow", "solidcolor", "theaterchase"}, Names())
}
