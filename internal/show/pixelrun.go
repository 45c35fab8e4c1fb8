package show

import (
	"github.com/stripshow/stripshow/internal/params"
	"github.com/stripshow/stripshow/internal/strip"
)

// PixelRun sends a single pixel wandering down the strip, one position
// per step. Setting num_steps_per_cycle to the strip length makes one
// cycle one full traversal.
type PixelRun struct {
	s     *strip.Strip
	color strip.RGB
}

func NewPixelRun(s *strip.Strip) *PixelRun {
	return &PixelRun{s: s, color: strip.RGB{R: 255, G: 160, B: 40}}
}

func (p *PixelRun) SetParameter(name string, value any) error {
	if name != "color" {
		return params.Unknown(name)
	}
	if err := params.RGBColorTuple(value, name); err != nil {
		return err
	}
	p.color, _ = params.AsRGB(value)
	return nil
}

func (p *PixelRun) BeforeStart() error {
	p.s.Clear()
	return nil
}

func (p *PixelRun) Update(step, cycle int) (bool, error) {
	p.s.Clear()
	p.s.SetPixel(step%p.s.NumLEDs(), p.color)
	return true, nil
}

func (p *PixelRun) Shutdown() error {
	p.s.Clear()
	return nil
}
