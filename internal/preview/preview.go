// Package preview renders the strip to the terminal with ANSI colors,
// for running shows on machines without an SPI port.
package preview

import (
	"image"
	"image/color"
	"math"

	"periph.io/x/conn/v3/display"
	"periph.io/x/extra/devices/screen"

	"github.com/stripshow/stripshow/internal/strip"
)

type Driver struct {
	numLEDs int
	d       display.Drawer
}

func New(numLEDs int) *Driver {
	return &Driver{numLEDs: numLEDs, d: screen.New(numLEDs)}
}

func (p *Driver) String() string {
	return "preview{console}"
}

// Render draws one row of pixels. Brightness is folded into the color
// the same way the hardware does it: quantized to 31 steps, applied
// linearly per channel.
func (p *Driver) Render(colors []strip.RGB, brightness []int) error {
	img := image.NewNRGBA(image.Rect(0, 0, p.numLEDs, 1))
	for i, c := range colors {
		m := int(math.Round(float64(brightness[i]) / 100 * 31))
		img.SetNRGBA(i, 0, color.NRGBA{
			R: uint8(int(c.R) * m / 31),
			G: uint8(int(c.G) * m / 31),
			B: uint8(int(c.B) * m / 31),
			A: 255,
		})
	}
	return p.d.Draw(p.d.Bounds(), img, image.Point{})
}

func (p *Driver) Close() error {
	return p.d.Halt()
}
