package show

import "github.com/stripshow/stripshow/internal/strip"

// wheelSteps is the resolution of the color wheel. With
// num_steps_per_cycle set to wheelSteps, one cycle is one full
// rotation through the rainbow.
const wheelSteps = 256

// Wheel maps h in [0,1) onto the rainbow.
func Wheel(h float64) strip.RGB {
	h *= 6
	switch {
	case h < 1:
		return strip.RGB{R: 255, G: byte(255 * h)}
	case h < 2:
		return strip.RGB{R: byte(255 * (2 - h)), G: 255}
	case h < 3:
		return strip.RGB{G: 255, B: byte(255 * (h - 2))}
	case h < 4:
		return strip.RGB{G: byte(255 * (4 - h)), B: 255}
	case h < 5:
		return strip.RGB{R: byte(255 * (h - 4)), B: 255}
	default:
		return strip.RGB{R: 255, B: byte(255 * (6 - h))}
	}
}

// Rainbow spreads the color wheel across the strip and rotates it one
// wheel position per step.
type Rainbow struct {
	s *strip.Strip
}

func NewRainbow(s *strip.Strip) *Rainbow {
	return &Rainbow{s: s}
}

func (p *Rainbow) BeforeStart() error {
	return nil
}

func (p *Rainbow) Update(step, cycle int) (bool, error) {
	n := p.s.NumLEDs()
	for i := 0; i < n; i++ {
		pos := (i*wheelSteps/n + step) % wheelSteps
		p.s.SetPixel(i, Wheel(float64(pos)/wheelSteps))
	}
	return true, nil
}

func (p *Rainbow) Shutdown() error {
	return nil
}
