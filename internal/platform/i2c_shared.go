// internal/platform/i2c_shared.go
package platform

import (
	"sync"

	"tinygo.org/x/drivers"
)

// SharedI2C owns one bus and serialises every transaction on it. Expanders
// on the same bus lock only their own shadow registers, so they must all be
// handed the same SharedI2C.
type SharedI2C struct {
	mu  sync.Mutex
	bus drivers.I2C
}

var _ drivers.I2C = (*SharedI2C)(nil)

func NewSharedI2C(bus drivers.I2C) *SharedI2C { return &SharedI2C{bus: bus} }

func (s *SharedI2C) Tx(addr uint16, w, r []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bus.Tx(addr, w, r)
}
