package show

import (
	"github.com/stripshow/stripshow/internal/params"
	"github.com/stripshow/stripshow/internal/strip"
)

const chaseSpacing = 3

// TheaterChase lights every third pixel and walks the lit set one
// position per step, the classic marquee effect. The color is
// configurable and defaults to white.
type TheaterChase struct {
	s     *strip.Strip
	color strip.RGB
}

func NewTheaterChase(s *strip.Strip) *TheaterChase {
	return &TheaterChase{s: s, color: strip.RGB{R: 255, G: 255, B: 255}}
}

func (p *TheaterChase) SetParameter(name string, value any) error {
	if name != "color" {
		return params.Unknown(name)
	}
	if err := params.RGBColorTuple(value, name); err != nil {
		return err
	}
	p.color, _ = params.AsRGB(value)
	return nil
}

func (p *TheaterChase) BeforeStart() error {
	p.s.Clear()
	return nil
}

func (p *TheaterChase) Update(step, cycle int) (bool, error) {
	p.s.Clear()
	for i := step % chaseSpacing; i < p.s.NumLEDs(); i += chaseSpacing {
		p.s.SetPixel(i, p.color)
	}
	return true, nil
}

func (p *TheaterChase) Shutdown() error {
	p.s.Clear()
	return nil
}
