// internal/i2csim/i2csim.go

// Package i2csim emulates I²C GPIO expanders behind a tinygo drivers.I2C so
// the expander backends run on host builds and in tests.
package i2csim

import (
	"errors"
	"sync"

	"tinygo.org/x/drivers"
)

var ErrNoAck = errors.New("i2c_no_ack")

// Target is one emulated device on the bus.
type Target interface {
	Tx(w, r []byte) error
}

// Bus implements drivers.I2C and routes each transaction by address.
type Bus struct {
	mu      sync.Mutex
	targets map[uint16]Target
	LastTx  struct {
		Addr uint16
		W    []byte
		Rn   int
	}
	Count int
}

var _ drivers.I2C = (*Bus)(nil)

func NewBus() *Bus { return &Bus{targets: make(map[uint16]Target)} }

// Attach places t at addr, replacing any previous target.
func (b *Bus) Attach(addr uint16, t Target) {
	b.mu.Lock()
	b.targets[addr] = t
	b.mu.Unlock()
}

func (b *Bus) Tx(addr uint16, w, r []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Count++
	b.LastTx.Addr = addr
	b.LastTx.W = append([]byte(nil), w...)
	b.LastTx.Rn = len(r)
	t, ok := b.targets[addr]
	if !ok {
		return ErrNoAck
	}
	return t.Tx(w, r)
}
