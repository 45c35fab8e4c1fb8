package strip

import "fmt"

// RGB is one LED's color. Channels are raw 8-bit values; no gamma or
// color-space handling happens at this layer.
type RGB struct {
	R, G, B uint8
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Renderer pushes the strip's buffers out to some sink, typically the
// SPI bus. Render must not return until the whole frame has been sent.
type Renderer interface {
	Render(colors []RGB, brightness []int) error
	Close() error
}

// Strip owns the logical state of one LED chain: a color and a
// brightness value per LED, indexed in physical wiring order. The two
// buffers always have the same, fixed length.
type Strip struct {
	numLEDs    int
	colors     []RGB
	brightness []int
	r          Renderer
}

// New returns a Strip of numLEDs black pixels at full brightness.
func New(numLEDs int, r Renderer) *Strip {
	s := &Strip{
		numLEDs:    numLEDs,
		colors:     make([]RGB, numLEDs),
		brightness: make([]int, numLEDs),
		r:          r,
	}
	for i := range s.brightness {
		s.brightness[i] = 100
	}
	return s
}

func (s *Strip) NumLEDs() int {
	return s.numLEDs
}

func (s *Strip) Pixel(i int) RGB {
	return s.colors[i]
}

func (s *Strip) SetPixel(i int, c RGB) {
	s.colors[i] = c
}

func (s *Strip) SetAll(c RGB) {
	for i := range s.colors {
		s.colors[i] = c
	}
}

// Brightness returns LED i's brightness in percent (0-100).
func (s *Strip) Brightness(i int) int {
	return s.brightness[i]
}

func (s *Strip) SetBrightness(i int, percent int) {
	s.brightness[i] = percent
}

func (s *Strip) SetGlobalBrightness(percent int) {
	for i := range s.brightness {
		s.brightness[i] = percent
	}
}

// Clear blacks out the color buffer. Brightness is left as-is.
func (s *Strip) Clear() {
	for i := range s.colors {
		s.colors[i] = RGB{}
	}
}

// Show transmits the current buffers. It blocks until the renderer has
// pushed the whole frame.
func (s *Strip) Show() error {
	return s.r.Render(s.colors, s.brightness)
}

// SyncUp flushes the buffers one final time so the physical strip
// matches the logical state, e.g. after a show has finished.
func (s *Strip) SyncUp() error {
	return s.r.Render(s.colors, s.brightness)
}

func (s *Strip) Close() error {
	return s.r.Close()
}
