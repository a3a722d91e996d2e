package segment

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

// The rudder trim readout shows tenths of a degree as "L dd.d" or "R dd.d".
// Address 0 has no digit segments, only the L marker.
const (
	rudderWidth     = 4
	rudderLeftAddr  = 0
	rudderDotAddr   = 2
	rudderRightAddr = 3
	rudderMax       = 999
)

// Rudder message identifiers.
const (
	RudderMsgLeft int16 = iota
	RudderMsgRight
	RudderMsgDot
	RudderMsgLeftValue
	RudderMsgRightValue
	RudderMsgValue
)

var rudderAddrs = []int{1, 2, 3}

// Rudder is the 4 position rudder trim readout.
type Rudder struct {
	driver
}

// NewRudder attaches a rudder trim display on the controller.
func NewRudder(c Conn) (*Rudder, error) {
	d := new(Rudder)
	d.dispatch = d.Dispatch
	if err := d.init(c, rudderWidth); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Rudder) String() string {
	return fmt.Sprintf("rudder trim LCD %d digits on %s", rudderWidth, d.c)
}

// SetLeft toggles the L marker.
func (d *Rudder) SetLeft(on bool) error {
	return d.SetDot(rudderLeftAddr, on)
}

// SetRight toggles the R marker.
func (d *Rudder) SetRight(on bool) error {
	return d.SetDot(rudderRightAddr, on)
}

// SetDecimal toggles the decimal point between degrees and tenths.
func (d *Rudder) SetDecimal(on bool) error {
	return d.SetDot(rudderDotAddr, on)
}

// SetValue shows the magnitude of v in tenths, saturated to 99.9. It overwrites
// the decimal point and R marker.
func (d *Rudder) SetValue(v int16) error {
	m := int32(v)
	if m < 0 {
		m = -m
	}
	return d.renderDigits(saturate(uint32(m), rudderMax), rudderAddrs...)
}

// ShowLeftValue shows v with the L marker.
func (d *Rudder) ShowLeftValue(v uint16) error {
	return d.show(uint32(v), true, false)
}

// ShowRightValue shows v with the R marker.
func (d *Rudder) ShowRightValue(v uint16) error {
	return d.show(uint32(v), false, true)
}

// ShowLandRValue shows the magnitude of v, marked L when negative and R when positive.
func (d *Rudder) ShowLandRValue(v int16) error {
	m := int32(v)
	if m < 0 {
		m = -m
	}
	return d.show(uint32(m), v < 0, v > 0)
}

func (d *Rudder) show(v uint32, left, right bool) error {
	if err := d.renderDigits(saturate(v, rudderMax), rudderAddrs...); err != nil {
		return err
	}
	if err := d.SetDecimal(true); err != nil {
		return err
	}
	if err := d.SetLeft(left); err != nil {
		return err
	}
	return d.SetRight(right)
}

// ShowTest lights every segment and marker, or clears the display.
func (d *Rudder) ShowTest(on bool) error {
	if !on {
		return d.Clear()
	}
	if err := d.renderDigits(888, rudderAddrs...); err != nil {
		return err
	}
	return d.SetAllDots(true)
}

// LampTest shows the test pattern for duration on clock, then clears the display.
func (d *Rudder) LampTest(ctx context.Context, clock clockwork.Clock, duration time.Duration) error {
	return lampTest(ctx, d, clock, duration)
}

// Dispatch runs the rudder action for messageID. Unknown identifiers are ignored.
func (d *Rudder) Dispatch(messageID int16, value int32) error {
	switch messageID {
	case RudderMsgLeft:
		return d.SetLeft(value != 0)
	case RudderMsgRight:
		return d.SetRight(value != 0)
	case RudderMsgDot:
		return d.SetDecimal(value != 0)
	case RudderMsgLeftValue:
		return d.ShowLeftValue(magnitude16(value))
	case RudderMsgRightValue:
		return d.ShowRightValue(magnitude16(value))
	case RudderMsgValue:
		return d.ShowLandRValue(clamp16(value))
	default:
		return nil
	}
}

func magnitude16(v int32) uint16 {
	if v < 0 {
		v = -v
	}
	if v > 0xffff || v < 0 {
		return 0xffff
	}
	return uint16(v)
}

func clamp16(v int32) int16 {
	switch {
	case v > 32767:
		return 32767
	case v < -32768:
		return -32768
	}
	return int16(v)
}
