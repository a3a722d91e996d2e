package segment

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	radTCASWidth   = 6
	radTCASDotAddr = 2
	radioMax       = 999999
	tcasMax        = 9999
)

// Radio/TCAS message identifiers.
const (
	RadTCASMsgRadioDot int16 = iota
	RadTCASMsgAllDots
	RadTCASMsgRadio
	RadTCASMsgTCAS
)

var (
	radioAddrs = []int{0, 1, 2, 3, 4, 5}
	tcasAddrs  = []int{1, 2, 3, 4}

	// "dAtA" framed by blanks, shown instead of a zero radio value.
	noDataGlyphs = []Glyph{GlyphBlank, GlyphD, GlyphA, GlyphT, GlyphA, GlyphBlank}
)

// RadTCAS is the 6 digit radio and TCAS panel readout.
type RadTCAS struct {
	driver
}

// NewRadTCAS attaches a radio/TCAS display on the controller.
func NewRadTCAS(c Conn) (*RadTCAS, error) {
	d := new(RadTCAS)
	d.dispatch = d.Dispatch
	if err := d.init(c, radTCASWidth); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *RadTCAS) String() string {
	return fmt.Sprintf("radio/TCAS LCD %d digits on %s", radTCASWidth, d.c)
}

// SetRadioDot toggles the frequency separator dot.
func (d *RadTCAS) SetRadioDot(on bool) error {
	return d.SetDot(radTCASDotAddr, on)
}

// SetSpecificDot toggles the dot at address 0 to 5.
func (d *RadTCAS) SetSpecificDot(addr int, on bool) error {
	return d.SetDot(addr, on)
}

// SetRadioValue shows v over all six digits, saturated to 999999. Zero shows
// " dAtA " instead. Dots of the digits are cleared.
func (d *RadTCAS) SetRadioValue(v uint32) error {
	if v == 0 {
		return d.renderGlyphs(noDataGlyphs, radioAddrs...)
	}
	return d.renderDigits(saturate(v, radioMax), radioAddrs...)
}

// SetTCASValue shows v on the four middle digits, saturated to 9999.
func (d *RadTCAS) SetTCASValue(v uint32) error {
	return d.renderDigits(saturate(v, tcasMax), tcasAddrs...)
}

// ShowRadio shows a radio frequency, with the separator dot lit unless there is no data.
func (d *RadTCAS) ShowRadio(v uint32) error {
	if err := d.SetRadioValue(v); err != nil {
		return err
	}
	return d.SetRadioDot(v != 0)
}

// ShowTCAS shows a TCAS code with the outer digits blank and no dot.
func (d *RadTCAS) ShowTCAS(v uint32) error {
	if err := d.SetTCASValue(v); err != nil {
		return err
	}
	if err := d.SetDigit(radioAddrs[0], GlyphBlank); err != nil {
		return err
	}
	if err := d.SetDigit(radioAddrs[len(radioAddrs)-1], GlyphBlank); err != nil {
		return err
	}
	return d.SetRadioDot(false)
}

// ShowTest lights every segment, or clears the display.
func (d *RadTCAS) ShowTest(on bool) error {
	if !on {
		return d.Clear()
	}
	if err := d.SetRadioValue(888888); err != nil {
		return err
	}
	return d.SetAllDots(true)
}

// LampTest shows the test pattern for duration on clock, then clears the display.
// The display is cleared early if ctx is done.
func (d *RadTCAS) LampTest(ctx context.Context, clock clockwork.Clock, duration time.Duration) error {
	return lampTest(ctx, d, clock, duration)
}

// Dispatch runs the radio/TCAS action for messageID. Unknown identifiers,
// including shutdown and power saving, are ignored.
func (d *RadTCAS) Dispatch(messageID int16, value int32) error {
	switch messageID {
	case RadTCASMsgRadioDot:
		return d.SetRadioDot(value != 0)
	case RadTCASMsgAllDots:
		return d.SetAllDots(value != 0)
	case RadTCASMsgRadio:
		return d.ShowRadio(uint32(value))
	case RadTCASMsgTCAS:
		return d.ShowTCAS(uint32(value))
	default:
		return nil
	}
}

func lampTest(ctx context.Context, d Display, clock clockwork.Clock, duration time.Duration) error {
	if err := d.ShowTest(true); err != nil {
		return err
	}
	select {
	case <-clock.After(duration):
	case <-ctx.Done():
	}
	return d.ShowTest(false)
}
