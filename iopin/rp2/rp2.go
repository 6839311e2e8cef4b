//go:build rp2040 || rp2350

// Package rp2 is the on-chip GPIO backend for RP2040/RP2350 under TinyGo.
package rp2

import (
	"machine"
	"sync"

	"iopin-go/iopin"
)

// The SIO block has no open-drain or quasi-bidirectional drive.
var Capabilities = iopin.NewCapabilitySet(iopin.Input, iopin.InputPullUp, iopin.InputPullDown, iopin.PushPull)

type Backend struct {
	mu         sync.Mutex
	modes      [maxPin + 1]iopin.Mode
	configured uint64
}

func New() *Backend { return &Backend{} }

func (b *Backend) Name() string                      { return "rp2" }
func (b *Backend) Capabilities() iopin.CapabilitySet { return Capabilities }

func valid(id int) bool { return id >= 0 && id <= maxPin }

func (b *Backend) NativeInit(id int, mode iopin.Mode, value bool) error {
	if !valid(id) {
		return iopin.ErrUnknownPin
	}
	var pm machine.PinMode
	switch mode {
	case iopin.Input:
		pm = machine.PinInput
	case iopin.InputPullUp:
		pm = machine.PinInputPullup
	case iopin.InputPullDown:
		pm = machine.PinInputPulldown
	case iopin.PushPull:
		pm = machine.PinOutput
	default:
		return iopin.ErrUnsupportedMode
	}
	p := machine.Pin(id)
	b.mu.Lock()
	defer b.mu.Unlock()
	// Load the output level before enabling the driver.
	if mode == iopin.PushPull {
		p.Set(value)
	}
	p.Configure(machine.PinConfig{Mode: pm})
	b.modes[id] = mode
	b.configured |= 1 << id
	return nil
}

func (b *Backend) NativeWrite(id int, value bool) error {
	if !valid(id) {
		return iopin.ErrUnknownPin
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.configured&(1<<id) == 0 {
		return iopin.ErrNotInitialised
	}
	if b.modes[id] != iopin.PushPull {
		return iopin.ErrNotOutput
	}
	machine.Pin(id).Set(value)
	return nil
}

func (b *Backend) NativeRead(id int) (bool, error) {
	if !valid(id) {
		return false, iopin.ErrUnknownPin
	}
	return machine.Pin(id).Get(), nil
}

func (b *Backend) Mode(id int) (iopin.Mode, bool) {
	if !valid(id) {
		return 0, false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.configured&(1<<id) == 0 {
		return 0, false
	}
	return b.modes[id], true
}
