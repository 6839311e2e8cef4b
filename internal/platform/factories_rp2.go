// internal/platform/factories_rp2.go
//go:build rp2040 || rp2350

package platform

import (
	"machine"

	"iopin-go/iopin/mcp23017"
	"iopin-go/iopin/pcf857x"
	"iopin-go/iopin/rp2"
)

// Expander addresses on i2c0.
const (
	PCFAddr uint16 = 0x20
	MCPAddr uint16 = 0x21
)

// defaultBackends registers the on-chip GPIO and the expanders on i2c0
// (board-default pins, 400 kHz). Both expanders go through one SharedI2C.
// Expanders are registered even if absent; their operations then fail with
// the bus error.
func defaultBackends() *Set {
	s := NewSet()
	s.Add("mcu", rp2.New())

	b0 := machine.I2C0
	if err := b0.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.I2C0_SDA_PIN,
		SCL:       machine.I2C0_SCL_PIN,
	}); err != nil {
		println("[platform] i2c0 configure failed:", err.Error())
		return s
	}
	i2c0 := NewSharedI2C(b0)
	if d, err := pcf857x.New(i2c0, PCFAddr, 16); err == nil {
		s.Add("pcf", d)
	}
	if d, err := mcp23017.New(i2c0, MCPAddr); err == nil {
		s.Add("mcp", d)
	}
	return s
}
