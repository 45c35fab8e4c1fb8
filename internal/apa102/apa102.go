// Package apa102 drives APA102 ("DotStar") LED chains over SPI.
//
// An APA102 module normally relays its data-in to data-out. 32 zero
// bits switch the first module into update mode: it consumes the next
// 32-bit frame as its own color and, while doing so, emits zeroes
// downstream, priming its neighbor the same way. A full refresh is
// therefore: a 4-byte zero start frame, one 4-byte frame per LED in
// wiring order, and a tail of extra clock pulses.
//
// The tail exists because each module inverts the clock on relay,
// delaying its output half a bit relative to its input. Over the whole
// chain that adds up to numLEDs/2 bits that still have to be clocked
// through before the last module has seen its frame, so the driver
// sends ceil(numLEDs/16) zero bytes after the payload. Zeroes also
// partially prime the chain for the next start frame, which is a
// side benefit, not something callers may rely on.
package apa102

import (
	"fmt"
	"math"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/stripshow/stripshow/internal/strip"
)

// MaxLEDs is the longest chain one driver can address.
const MaxLEDs = 1024

// ConfigurationError means the driver was initialized with a strip the
// hardware cannot address. The driver is unusable; there is no recovery.
type ConfigurationError struct {
	NumLEDs int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("apa102: %d LEDs exceeds the %d-LED limit", e.NumLEDs, MaxLEDs)
}

// TransportError wraps a failed bus transmission. The driver performs
// no retries; whether to retry is the caller's decision.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("apa102: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Driver owns one SPI connection to one LED chain.
type Driver struct {
	numLEDs int
	port    spi.Port
	c       spi.Conn
}

// New connects to the chain on port at maxSpeed. The clock ceiling is
// hardware's business (above ~8MHz signal integrity suffers on long
// wiring); the driver passes maxSpeed through untouched and only
// refuses chains longer than MaxLEDs.
func New(port spi.Port, numLEDs int, maxSpeed physic.Frequency) (*Driver, error) {
	if numLEDs > MaxLEDs {
		return nil, &ConfigurationError{NumLEDs: numLEDs}
	}
	c, err := port.Connect(maxSpeed, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("apa102: connect: %w", err)
	}
	return &Driver{numLEDs: numLEDs, port: port, c: c}, nil
}

func (d *Driver) String() string {
	return fmt.Sprintf("apa102{%s, %d LEDs}", d.c, d.numLEDs)
}

func (d *Driver) NumLEDs() int {
	return d.numLEDs
}

// LEDPrefix builds the first byte of one LED's 4-byte frame from a
// brightness percentage (0-100). The top three bits are the fixed
// marker that distinguishes a color frame from relayed data; the low
// five bits are the brightness scaled to 0-31, rounding half away
// from zero (math.Round), so 50% maps to 16.
func LEDPrefix(brightness int) byte {
	m := int(math.Round(float64(brightness) / 100 * 31))
	return 0b11100000 | byte(m&0b00011111)
}

// payload assembles the per-LED frames: [prefix, blue, green, red] for
// each LED in wiring order. The channel order is how the chips are
// wired, not a choice.
func payload(colors []strip.RGB, brightness []int) []byte {
	msg := make([]byte, 0, 4*len(colors))
	for i, c := range colors {
		msg = append(msg, LEDPrefix(brightness[i]), c.B, c.G, c.R)
	}
	return msg
}

// endFrameLen is ceil(numLEDs/16) bytes, i.e. ceil(numLEDs/2) bits of
// trailing clock.
func endFrameLen(numLEDs int) int {
	return (numLEDs + 15) / 16
}

func (d *Driver) tx(op string, b []byte) error {
	if err := d.c.Tx(b, nil); err != nil {
		return &TransportError{Op: op, Err: err}
	}
	return nil
}

// Render pushes the buffers to the chain: start frame, payload, end
// frame, in that order, each transmission blocking until done. Nothing
// is buffered across calls; the same input renders the same bytes.
func (d *Driver) Render(colors []strip.RGB, brightness []int) error {
	if len(colors) != d.numLEDs || len(brightness) != d.numLEDs {
		return fmt.Errorf("apa102: buffer lengths %d/%d do not match %d LEDs",
			len(colors), len(brightness), d.numLEDs)
	}
	if err := d.tx("start frame", make([]byte, 4)); err != nil {
		return err
	}
	if err := d.tx("payload", payload(colors, brightness)); err != nil {
		return err
	}
	return d.tx("end frame", make([]byte, endFrameLen(d.numLEDs)))
}

// Close releases the port if the driver owns a closeable one.
func (d *Driver) Close() error {
	if pc, ok := d.port.(spi.PortCloser); ok {
		return pc.Close()
	}
	return nil
}
