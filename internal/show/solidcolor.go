package show

import (
	"github.com/stripshow/stripshow/internal/params"
	"github.com/stripshow/stripshow/internal/strip"
)

// SolidColor paints the whole strip in one configured color and holds
// it. Run it with num_steps_per_cycle 1.
type SolidColor struct {
	s        *strip.Strip
	color    strip.RGB
	colorSet bool
}

func NewSolidColor(s *strip.Strip) *SolidColor {
	return &SolidColor{s: s}
}

func (p *SolidColor) SetParameter(name string, value any) error {
	if name != "color" {
		return params.Unknown(name)
	}
	if err := params.RGBColorTuple(value, name); err != nil {
		return err
	}
	p.color, _ = params.AsRGB(value)
	p.colorSet = true
	return nil
}

func (p *SolidColor) CheckRunnable() error {
	if !p.colorSet {
		return params.Missing("color")
	}
	return nil
}

func (p *SolidColor) BeforeStart() error {
	p.s.SetAll(p.color)
	return nil
}

// Update has nothing to do; the initial repaint already showed the
// color.
func (p *SolidColor) Update(step, cycle int) (bool, error) {
	return false, nil
}

func (p *SolidColor) Shutdown() error {
	return nil
}
