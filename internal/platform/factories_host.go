// internal/platform/factories_host.go
//go:build !rp2040 && !rp2350

package platform

import (
	"iopin-go/internal/i2csim"
	"iopin-go/iopin"
	"iopin-go/iopin/hostsim"
	"iopin-go/iopin/mcp23017"
	"iopin-go/iopin/pcf857x"
)

// Host addresses of the emulated expanders on the simulated i2c0.
const (
	HostPCFAddr uint16 = 0x20
	HostMCPAddr uint16 = 0x21
)

// Host holds the emulated hardware behind the default host backends so
// tests can stimulate lines.
type Host struct {
	MCU *hostsim.Backend
	Bus *i2csim.Bus
	PCF *i2csim.PCF857x
	MCP *i2csim.MCP23017
}

// NewHost builds an emulated board: a simulated MCU with open-drain outputs
// but no quasi mode, plus a PCF8575 and an MCP23017 on one I²C bus.
func NewHost() (*Set, *Host) {
	h := &Host{
		MCU: hostsim.New("mcu", iopin.NewCapabilitySet(
			iopin.Input, iopin.InputPullUp, iopin.InputPullDown, iopin.PushPull, iopin.OpenDrain,
		), 32),
		Bus: i2csim.NewBus(),
		PCF: i2csim.NewPCF857x(16),
		MCP: i2csim.NewMCP23017(),
	}
	h.Bus.Attach(HostPCFAddr, h.PCF)
	h.Bus.Attach(HostMCPAddr, h.MCP)

	s := NewSet()
	s.Add("mcu", h.MCU)
	i2c0 := NewSharedI2C(h.Bus)
	if d, err := pcf857x.New(i2c0, HostPCFAddr, 16); err == nil {
		s.Add("pcf", d)
	}
	if d, err := mcp23017.New(i2c0, HostMCPAddr); err == nil {
		s.Add("mcp", d)
	}
	return s, h
}

func defaultBackends() *Set {
	s, _ := NewHost()
	return s
}
