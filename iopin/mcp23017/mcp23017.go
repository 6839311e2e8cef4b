// iopin/mcp23017/mcp23017.go

// Package mcp23017 drives the MCP23017 16-line I²C expander.
//
// Outputs are push-pull only and inputs offer a pull-up but no pull-down.
// Direction, pull-up and latch registers are shared by all pins of a port and
// kept as shadows under one lock.
package mcp23017

import (
	"errors"
	"sync"

	"tinygo.org/x/drivers"

	"iopin-go/iopin"
)

var ErrBadAddress = errors.New("invalid_address")

var Capabilities = iopin.NewCapabilitySet(iopin.Input, iopin.InputPullUp, iopin.PushPull)

const numPins = 16

type Device struct {
	bus  drivers.I2C
	addr uint16

	mu         sync.Mutex
	iodir      uint16
	gppu       uint16
	olat       uint16
	modes      [numPins]iopin.Mode
	configured uint16
}

// New binds the expander at addr (0x20..0x27). Shadows start at the
// power-on register values; the chip is not written until the first Init.
func New(bus drivers.I2C, addr uint16) (*Device, error) {
	if addr < AddrBase || addr > AddrMax {
		return nil, ErrBadAddress
	}
	return &Device{bus: bus, addr: addr, iodir: 0xFFFF}, nil
}

func (d *Device) Name() string                      { return "mcp23017" }
func (d *Device) Capabilities() iopin.CapabilitySet { return Capabilities }

func (d *Device) writePair(reg byte, v uint16) error {
	return d.bus.Tx(d.addr, []byte{reg, byte(v), byte(v >> 8)}, nil)
}

func (d *Device) NativeInit(id int, mode iopin.Mode, value bool) error {
	if id < 0 || id >= numPins {
		return iopin.ErrUnknownPin
	}
	if !Capabilities.Has(mode) {
		return iopin.ErrUnsupportedMode
	}
	bit := uint16(1) << id

	d.mu.Lock()
	defer d.mu.Unlock()

	iodir, gppu, olat := d.iodir, d.gppu, d.olat
	switch mode {
	case iopin.PushPull:
		if value {
			olat |= bit
		} else {
			olat &^= bit
		}
		gppu &^= bit
		iodir &^= bit
	case iopin.InputPullUp:
		gppu |= bit
		iodir |= bit
	default:
		gppu &^= bit
		iodir |= bit
	}

	// Latch before direction so an output starts at its initial level.
	if olat != d.olat {
		if err := d.writePair(regOLAT, olat); err != nil {
			return err
		}
		d.olat = olat
	}
	if gppu != d.gppu {
		if err := d.writePair(regGPPU, gppu); err != nil {
			return err
		}
		d.gppu = gppu
	}
	if err := d.writePair(regIODIR, iodir); err != nil {
		return err
	}
	d.iodir = iodir
	d.modes[id] = mode
	d.configured |= bit
	return nil
}

func (d *Device) NativeWrite(id int, value bool) error {
	if id < 0 || id >= numPins {
		return iopin.ErrUnknownPin
	}
	bit := uint16(1) << id

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.configured&bit == 0 {
		return iopin.ErrNotInitialised
	}
	if d.iodir&bit != 0 {
		return iopin.ErrNotOutput
	}
	olat := d.olat
	if value {
		olat |= bit
	} else {
		olat &^= bit
	}
	if err := d.writePair(regOLAT, olat); err != nil {
		return err
	}
	d.olat = olat
	return nil
}

func (d *Device) NativeRead(id int) (bool, error) {
	if id < 0 || id >= numPins {
		return false, iopin.ErrUnknownPin
	}
	var buf [2]byte
	d.mu.Lock()
	err := d.bus.Tx(d.addr, []byte{regGPIO}, buf[:])
	d.mu.Unlock()
	if err != nil {
		return false, err
	}
	port := uint16(buf[0]) | uint16(buf[1])<<8
	return port&(1<<id) != 0, nil
}

func (d *Device) Mode(id int) (iopin.Mode, bool) {
	if id < 0 || id >= numPins {
		return 0, false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.configured&(1<<id) == 0 {
		return 0, false
	}
	return d.modes[id], true
}
