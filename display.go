// Package segment contains drivers for multi-digit segment LCDs behind an HT1621 controller.
package segment

import (
	"errors"
	"fmt"
	"log"
	"os"
)

var debug bool

func init() {
	debug = os.Getenv("SEGMENT_DEBUG") != ""
}

// Errors
var (
	ErrNotAttached = errors.New("segment: display is not attached")
	ErrWidth       = errors.New("segment: display is wider than the controller RAM")
)

// Message identifiers sent by the host with a special meaning.
const (
	MsgShutdown    int16 = -1 // host is shutting down
	MsgPowerSaving int16 = -2 // host entered power saving mode
)

// Display is a segment LCD.
type Display interface {
	String() string

	// Close the display driver.
	Close() error

	// Attach runs the controller startup sequence and clears the display.
	Attach() error

	// Detach clears the display and marks the driver inactive.
	Detach() error

	// Clear all addresses.
	Clear() error

	// Width is the number of addresses.
	Width() int

	// Patterns returns a copy of the shadow buffer.
	Patterns() []Pattern

	// SetDigit shows a glyph at an address.
	SetDigit(addr int, g Glyph) error

	// SetDot toggles the dot of an address.
	SetDot(addr int, on bool) error

	// SetAllDots toggles the dot of every address.
	SetAllDots(on bool) error

	// ShowTest toggles the lamp test pattern.
	ShowTest(on bool) error

	// Dispatch runs the action for a message identifier.
	Dispatch(messageID int16, value int32) error

	// Set parses a raw host value and dispatches it.
	Set(messageID int16, raw string) error
}

// driver implements the segment writer and indicator operations shared by all
// display variants. Every write goes to the controller before the shadow buffer,
// so the buffer always holds the last pattern the controller accepted.
type driver struct {
	c        Conn
	buf      *Buffer
	attached bool
	halted   bool
	closed   bool
	dispatch func(int16, int32) error
}

func (d *driver) init(c Conn, width int) error {
	if width*2 > c.MaxAddr() {
		return fmt.Errorf("%w: %d digits, %d addresses", ErrWidth, width, c.MaxAddr())
	}
	d.c = c
	d.buf = NewBuffer(width)
	return d.Attach()
}

func (d *driver) Attach() (err error) {
	d.attached = false
	for _, cmnd := range ht1621Init {
		if err = d.c.Command(cmnd); err != nil {
			return fmt.Errorf("segment: startup command %#02x: %w", cmnd, err)
		}
	}
	for addr := 0; addr < d.c.MaxAddr(); addr++ {
		if err = d.c.Write(byte(addr), 0, 4); err != nil {
			return fmt.Errorf("segment: clear controller RAM: %w", err)
		}
		// Each display address spans two cells, low nibble first.
		if i := addr / 2; i < d.buf.Len() {
			d.buf.Set(i, d.buf.At(i)&^(0x0f<<uint(4*(addr%2))))
		}
	}
	d.attached = true
	d.halted = false
	if debug {
		log.Printf("segment: attached %s", d.c)
	}
	return nil
}

func (d *driver) Detach() error {
	if !d.attached {
		return nil
	}
	err := d.Clear()
	d.attached = false
	return err
}

func (d *driver) Close() error {
	if d.closed {
		return nil
	}
	if !d.halted {
		if err := d.Detach(); err != nil {
			d.closed = true
			_ = d.c.Close()
			return err
		}
		for _, cmnd := range ht1621Shutdown {
			if err := d.c.Command(cmnd); err != nil {
				d.closed = true
				_ = d.c.Close()
				return err
			}
		}
		d.halted = true
	}
	d.closed = true
	return d.c.Close()
}

func (d *driver) Width() int {
	return d.buf.Len()
}

func (d *driver) Patterns() []Pattern {
	return d.buf.Patterns()
}

// write pushes one address to the controller. Each display address spans two
// 4-bit controller cells.
func (d *driver) write(addr int, p Pattern) error {
	if !d.attached {
		return ErrNotAttached
	}
	d.buf.check(addr)
	if err := d.c.Write(byte(addr*2), byte(p), 8); err != nil {
		return fmt.Errorf("segment: write address %d: %w", addr, err)
	}
	d.buf.Set(addr, p)
	return nil
}

func (d *driver) SetDigit(addr int, g Glyph) error {
	return d.write(addr, PatternFor(g))
}

func (d *driver) ClearDigit(addr int) error {
	return d.write(addr, 0)
}

func (d *driver) Clear() error {
	for addr := 0; addr < d.buf.Len(); addr++ {
		if err := d.ClearDigit(addr); err != nil {
			return err
		}
	}
	return nil
}

func (d *driver) setBit(addr, bit int, on bool) error {
	return d.write(addr, SetBit(d.buf.At(addr), bit, on))
}

func (d *driver) SetDot(addr int, on bool) error {
	return d.setBit(addr, SegDot, on)
}

func (d *driver) SetAllDots(on bool) error {
	for addr := 0; addr < d.buf.Len(); addr++ {
		if err := d.SetDot(addr, on); err != nil {
			return err
		}
	}
	return nil
}

// Set parses raw as a base 10 integer and dispatches it. Shutdown and power
// saving messages clear the display, and are ignored once it is detached.
func (d *driver) Set(messageID int16, raw string) error {
	switch messageID {
	case MsgShutdown, MsgPowerSaving:
		if !d.attached {
			return nil
		}
		if debug {
			log.Printf("segment: message %d, clearing display", messageID)
		}
		return d.Clear()
	}
	return d.dispatch(messageID, ParseValue(raw))
}
