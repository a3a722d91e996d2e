package conn

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// ErrBits is returned when more bits are requested than fit in a frame word.
var ErrBits = errors.New("conn: invalid number of bits")

// DefaultSpeed is the default WR clock rate. The HT1621 accepts up to 150kHz at 3V.
const DefaultSpeed = 100 * physic.KiloHertz

// Wire3 is a bit-banged three wire serial bus (CS, WR and DATA), as used by
// the HT1621 family of LCD controllers. Data is latched on the rising edge of WR.
type Wire3 struct {
	cs       gpio.PinOut
	wr       gpio.PinOut
	data     gpio.PinOut
	halfTick time.Duration
	selected bool
}

// OpenWire3 takes ownership of the three pins and drives them to their idle level.
func OpenWire3(cs, wr, data gpio.PinOut) (*Wire3, error) {
	w := &Wire3{
		cs:   cs,
		wr:   wr,
		data: data,
	}
	if err := w.SetMaxSpeed(DefaultSpeed); err != nil {
		return nil, err
	}
	for _, pin := range []gpio.PinOut{cs, wr, data} {
		if err := pin.Out(gpio.High); err != nil {
			return nil, fmt.Errorf("conn: %s: %w", pin, err)
		}
	}
	return w, nil
}

func (w *Wire3) String() string {
	return fmt.Sprintf("3-wire bus CS=%s WR=%s DATA=%s", w.cs, w.wr, w.data)
}

// Close releases chip select. The pins are left as outputs.
func (w *Wire3) Close() error {
	return w.Release()
}

// SetMaxSpeed sets the WR clock rate. Zero disables the delay between edges.
func (w *Wire3) SetMaxSpeed(f physic.Frequency) error {
	if f < 0 {
		return fmt.Errorf("conn: invalid clock rate %s", f)
	}
	if f == 0 {
		w.halfTick = 0
		return nil
	}
	w.halfTick = f.Period() / 2
	return nil
}

// Select pulls chip select low, starting a frame.
func (w *Wire3) Select() error {
	if err := w.cs.Out(gpio.Low); err != nil {
		return err
	}
	w.selected = true
	return nil
}

// Release pulls chip select high, ending a frame.
func (w *Wire3) Release() error {
	if err := w.cs.Out(gpio.High); err != nil {
		return err
	}
	w.selected = false
	return nil
}

// WriteMSB clocks out the lowest n bits of v, most significant bit first.
func (w *Wire3) WriteMSB(v uint32, n int) error {
	if n < 0 || n > 32 {
		return ErrBits
	}
	for i := n - 1; i >= 0; i-- {
		if err := w.clock(v&(1<<uint(i)) != 0); err != nil {
			return err
		}
	}
	return nil
}

// WriteLSB clocks out the lowest n bits of v, least significant bit first.
func (w *Wire3) WriteLSB(v uint32, n int) error {
	if n < 0 || n > 32 {
		return ErrBits
	}
	for i := 0; i < n; i++ {
		if err := w.clock(v&(1<<uint(i)) != 0); err != nil {
			return err
		}
	}
	return nil
}

func (w *Wire3) clock(bit bool) (err error) {
	if err = w.wr.Out(gpio.Low); err != nil {
		return
	}
	if err = w.data.Out(gpio.Level(bit)); err != nil {
		return
	}
	w.tick()
	if err = w.wr.Out(gpio.High); err != nil {
		return
	}
	w.tick()
	return
}

func (w *Wire3) tick() {
	if w.halfTick > 0 {
		time.Sleep(w.halfTick)
	}
}
