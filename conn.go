package segment

import (
	"errors"
	"fmt"
	"log"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"

	"github.com/BeatGlow/segment/conn"
)

// Conn errors.
var (
	ErrCSPin   = errors.New("segment: chip select (CS) GPIO pin is invalid")
	ErrCLKPin  = errors.New("segment: clock (WR) GPIO pin is invalid")
	ErrDataPin = errors.New("segment: data GPIO pin is invalid")
)

// Conn is the connection interface for communicating with an LCD controller.
type Conn interface {
	String() string

	// Close the connection.
	Close() error

	// Command sends a command byte.
	Command(byte) error

	// Write stores the lowest bits of data at a controller RAM address.
	Write(addr, data byte, bits int) error

	// MaxAddr is the number of addressable controller RAM locations.
	MaxAddr() int
}

// HT1621Config describes the pins an HT1621 controller is wired to.
type HT1621Config struct {
	// CS is the chip select pin name.
	CS string

	// CLK is the write clock pin name, sometimes labeled RW or WR.
	CLK string

	// Data pin name.
	Data string
}

// DefaultHT1621Config are the default configuration values.
var DefaultHT1621Config = HT1621Config{
	CS:   "GPIO8",
	CLK:  "GPIO11",
	Data: "GPIO10",
}

type ht1621Conn struct {
	bus *conn.Wire3
}

// OpenHT1621 binds the configured pins and opens a bit-banged bus to the controller.
func OpenHT1621(config *HT1621Config) (Conn, error) {
	if config == nil {
		config = new(HT1621Config)
		*config = DefaultHT1621Config
	}

	cs, err := lookupPin(config.CS, ErrCSPin)
	if err != nil {
		return nil, err
	}
	clk, err := lookupPin(config.CLK, ErrCLKPin)
	if err != nil {
		return nil, err
	}
	data, err := lookupPin(config.Data, ErrDataPin)
	if err != nil {
		return nil, err
	}

	bus, err := conn.OpenWire3(cs, clk, data)
	if err != nil {
		return nil, err
	}
	return &ht1621Conn{bus: bus}, nil
}

func lookupPin(name string, invalid error) (gpio.PinOut, error) {
	if name == "" {
		return nil, invalid
	}
	pin := gpioreg.ByName(name)
	if pin == nil || pin == gpio.INVALID {
		return nil, fmt.Errorf("%w: %q", invalid, name)
	}
	return pin, nil
}

func (c *ht1621Conn) String() string {
	return fmt.Sprintf("HT1621 on %s", c.bus)
}

func (c *ht1621Conn) Close() error {
	return c.bus.Close()
}

func (c *ht1621Conn) MaxAddr() int {
	return ht1621MaxAddr
}

// Command frames are 100 C7..C0 X.
func (c *ht1621Conn) Command(cmnd byte) (err error) {
	if err = c.bus.Select(); err != nil {
		return
	}
	if err = c.bus.WriteMSB(ht1621ModeCommand, 3); err != nil {
		return
	}
	if err = c.bus.WriteMSB(uint32(cmnd)<<1, 9); err != nil {
		return
	}
	return c.bus.Release()
}

// Write frames are 101 A5..A0 D0..Dn.
func (c *ht1621Conn) Write(addr, data byte, bits int) (err error) {
	if int(addr) >= ht1621MaxAddr {
		return fmt.Errorf("segment: HT1621 address %d out of range", addr)
	}
	if bits < 1 || bits > 8 {
		return fmt.Errorf("segment: HT1621 write of %d bits", bits)
	}
	if err = c.bus.Select(); err != nil {
		return
	}
	if err = c.bus.WriteMSB(ht1621ModeWrite, 3); err != nil {
		return
	}
	if err = c.bus.WriteMSB(uint32(addr), 6); err != nil {
		return
	}
	if err = c.bus.WriteLSB(uint32(data), bits); err != nil {
		return
	}
	return c.bus.Release()
}

// simConn is an in-memory controller, for running without hardware.
type simConn struct {
	ram     []byte
	enabled bool
}

// OpenSimulated returns a controller that keeps its RAM in memory. Writes are
// logged when SEGMENT_DEBUG is set.
func OpenSimulated(maxAddr int) Conn {
	if maxAddr <= 0 {
		maxAddr = ht1621MaxAddr
	}
	return &simConn{ram: make([]byte, maxAddr)}
}

func (c *simConn) String() string {
	return fmt.Sprintf("simulated controller (%d addresses)", len(c.ram))
}

func (c *simConn) Close() error {
	if debug {
		log.Println("segment: sim close")
	}
	return nil
}

func (c *simConn) MaxAddr() int {
	return len(c.ram)
}

func (c *simConn) Command(cmnd byte) error {
	switch cmnd {
	case ht1621LCDOn:
		c.enabled = true
	case ht1621LCDOff, ht1621SysDisable:
		c.enabled = false
	}
	if debug {
		log.Printf("segment: sim command %#02x", cmnd)
	}
	return nil
}

// Write spreads bits over consecutive 4-bit RAM cells, like the controller does.
func (c *simConn) Write(addr, data byte, bits int) error {
	for n := 0; n < bits; n += 4 {
		a := int(addr) + n/4
		if a >= len(c.ram) {
			return fmt.Errorf("segment: sim address %d out of range", a)
		}
		c.ram[a] = (data >> uint(n)) & 0x0f
	}
	if debug {
		log.Printf("segment: sim write %#02x = %#02x (%d bits)", addr, data, bits)
	}
	return nil
}
