// iopin/pcf857x/pcf857x.go

// Package pcf857x drives PCF8574/PCF8575 quasi-bidirectional I²C expanders.
//
// The chips have no direction register. A latch bit of 1 releases the line to
// a weak internal pull-up (usable as input), 0 sinks it. Every write loads the
// whole latch, so all pins of one device share a shadow copy.
package pcf857x

import (
	"errors"
	"sync"

	"tinygo.org/x/drivers"

	"iopin-go/iopin"
)

const (
	// 7-bit base addresses; A2..A0 select the low three bits.
	AddrPCF8574  uint16 = 0x20
	AddrPCF8574A uint16 = 0x38
	AddrPCF8575  uint16 = 0x20
)

var ErrBadWidth = errors.New("invalid_width")

// Capabilities are the modes the latch structure realises natively.
var Capabilities = iopin.NewCapabilitySet(iopin.Input, iopin.InputPullUp, iopin.QuasiBidirectional)

type Device struct {
	bus   drivers.I2C
	addr  uint16
	lines int

	mu         sync.Mutex
	latch      uint16
	modes      [16]iopin.Mode
	configured uint16
}

// New binds a device with lines pins (8 for PCF8574, 16 for PCF8575).
// The shadow latch starts at the power-on value (all released); the chip is
// not touched until the first Init.
func New(bus drivers.I2C, addr uint16, lines int) (*Device, error) {
	if lines != 8 && lines != 16 {
		return nil, ErrBadWidth
	}
	return &Device{bus: bus, addr: addr, lines: lines, latch: 0xFFFF}, nil
}

func (d *Device) Name() string                      { return "pcf857x" }
func (d *Device) Capabilities() iopin.CapabilitySet { return Capabilities }

func (d *Device) valid(id int) bool { return id >= 0 && id < d.lines }

// flush writes the shadow latch; caller holds d.mu.
func (d *Device) flush() error {
	if d.lines == 8 {
		return d.bus.Tx(d.addr, []byte{byte(d.latch)}, nil)
	}
	return d.bus.Tx(d.addr, []byte{byte(d.latch), byte(d.latch >> 8)}, nil)
}

// setBit updates one latch bit and writes it out, restoring the shadow if
// the bus write fails.
func (d *Device) setBit(id int, high bool) error {
	old := d.latch
	if high {
		d.latch |= 1 << id
	} else {
		d.latch &^= 1 << id
	}
	if err := d.flush(); err != nil {
		d.latch = old
		return err
	}
	return nil
}

func (d *Device) NativeInit(id int, mode iopin.Mode, value bool) error {
	if !d.valid(id) {
		return iopin.ErrUnknownPin
	}
	if !Capabilities.Has(mode) {
		return iopin.ErrUnsupportedMode
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	high := true
	if mode == iopin.QuasiBidirectional {
		high = value
	}
	if err := d.setBit(id, high); err != nil {
		return err
	}
	d.modes[id] = mode
	d.configured |= 1 << id
	return nil
}

func (d *Device) NativeWrite(id int, value bool) error {
	if !d.valid(id) {
		return iopin.ErrUnknownPin
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.configured&(1<<id) == 0 {
		return iopin.ErrNotInitialised
	}
	if d.modes[id] != iopin.QuasiBidirectional {
		return iopin.ErrNotOutput
	}
	return d.setBit(id, value)
}

func (d *Device) NativeRead(id int) (bool, error) {
	if !d.valid(id) {
		return false, iopin.ErrUnknownPin
	}
	buf := make([]byte, d.lines/8)
	d.mu.Lock()
	err := d.bus.Tx(d.addr, nil, buf)
	d.mu.Unlock()
	if err != nil {
		return false, err
	}
	port := uint16(buf[0])
	if len(buf) > 1 {
		port |= uint16(buf[1]) << 8
	}
	return port&(1<<id) != 0, nil
}

func (d *Device) Mode(id int) (iopin.Mode, bool) {
	if !d.valid(id) {
		return 0, false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.configured&(1<<id) == 0 {
		return 0, false
	}
	return d.modes[id], true
}
