package conn

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

type probe struct {
	*gpiotest.Pin
	onOut func(gpio.Level)
	fail  error
}

func (p *probe) Out(l gpio.Level) error {
	if p.fail != nil {
		return p.fail
	}
	if err := p.Pin.Out(l); err != nil {
		return err
	}
	if p.onOut != nil {
		p.onOut(l)
	}
	return nil
}

// recorder samples DATA on every rising WR edge while CS is low.
type recorder struct {
	cs, wr, data *probe
	bits         []byte
	frames       [][]byte
}

func newRecorder() *recorder {
	r := &recorder{
		cs:   &probe{Pin: &gpiotest.Pin{N: "CS", Num: 1}},
		wr:   &probe{Pin: &gpiotest.Pin{N: "WR", Num: 2}},
		data: &probe{Pin: &gpiotest.Pin{N: "DATA", Num: 3}},
	}
	r.cs.onOut = func(l gpio.Level) {
		if l == gpio.High && r.bits != nil {
			r.frames = append(r.frames, r.bits)
			r.bits = nil
		}
		if l == gpio.Low {
			r.bits = []byte{}
		}
	}
	r.wr.onOut = func(l gpio.Level) {
		if l == gpio.High && r.bits != nil {
			if r.data.Pin.Read() == gpio.High {
				r.bits = append(r.bits, 1)
			} else {
				r.bits = append(r.bits, 0)
			}
		}
	}
	return r
}

func (r *recorder) open(t *testing.T) *Wire3 {
	t.Helper()
	w, err := OpenWire3(r.cs, r.wr, r.data)
	if err != nil {
		t.Fatal(err)
	}
	if err = w.SetMaxSpeed(0); err != nil {
		t.Fatal(err)
	}
	return w
}

func TestWire3Idle(t *testing.T) {
	r := newRecorder()
	r.open(t)
	for _, p := range []*probe{r.cs, r.wr, r.data} {
		if l := p.Pin.Read(); l != gpio.High {
			t.Errorf("expected %s to idle high, got %s", p, l)
		}
	}
}

func TestWire3BitOrder(t *testing.T) {
	tests := []struct {
		Name  string
		Write func(*Wire3) error
		Want  []byte
	}{
		{"msb", func(w *Wire3) error { return w.WriteMSB(0b101, 3) }, []byte{1, 0, 1}},
		{"msb-pad", func(w *Wire3) error { return w.WriteMSB(0b11, 4) }, []byte{0, 0, 1, 1}},
		{"lsb", func(w *Wire3) error { return w.WriteLSB(0b0011, 4) }, []byte{1, 1, 0, 0}},
		{"empty", func(w *Wire3) error { return w.WriteLSB(0xff, 0) }, []byte{}},
	}
	for _, test := range tests {
		t.Run(test.Name, func(it *testing.T) {
			r := newRecorder()
			w := r.open(it)
			if err := w.Select(); err != nil {
				it.Fatal(err)
			}
			if err := test.Write(w); err != nil {
				it.Fatal(err)
			}
			if err := w.Release(); err != nil {
				it.Fatal(err)
			}
			if len(r.frames) != 1 {
				it.Fatalf("expected 1 frame, got %d", len(r.frames))
			}
			if got := string(r.frames[0]); got != string(test.Want) {
				it.Errorf("expected bits %v, got %v", test.Want, r.frames[0])
			}
		})
	}
}

func TestWire3InvalidBits(t *testing.T) {
	w := newRecorder().open(t)
	if err := w.WriteMSB(0, 33); !errors.Is(err, ErrBits) {
		t.Errorf("expected ErrBits, got %v", err)
	}
	if err := w.WriteLSB(0, -1); !errors.Is(err, ErrBits) {
		t.Errorf("expected ErrBits, got %v", err)
	}
}

func TestWire3PinError(t *testing.T) {
	r := newRecorder()
	w := r.open(t)
	r.wr.fail = errors.New("pin gone")
	if err := w.WriteMSB(1, 1); err == nil {
		t.Error("expected error from failing WR pin")
	}
}
