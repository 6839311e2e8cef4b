//go:build rp2040 || rp2350

package setups

// Default for a Pico: onboard LED plus expander lines on i2c0.
var Default = Setup{
	Pins: []PinSetup{
		{Name: "onboard", Backend: "mcu", Pin: 25, Mode: "push_pull", Check: true},
		{Name: "button", Backend: "mcu", Pin: 15, Mode: "input_pullup"},
		{Name: "ext_od", Backend: "mcu", Pin: 16, Mode: "open_drain", Initial: true},
		{Name: "pcf0", Backend: "pcf", Pin: 0, Mode: "quasi_bidirectional", Initial: true},
		{Name: "mcp_a0", Backend: "mcp", Pin: 0, Mode: "push_pull"},
	},
}
