//go:build !rp2040 && !rp2350

package setups

// Default exercises every fallback path on the emulated host board.
var Default = Setup{
	Pins: []PinSetup{
		{Name: "led", Backend: "mcu", Pin: 25, Mode: "push_pull", Check: true},
		{Name: "bus_sda_sim", Backend: "mcu", Pin: 2, Mode: "quasi_bidirectional", Initial: true, Check: true},
		{Name: "button", Backend: "mcu", Pin: 14, Mode: "input_pullup"},
		{Name: "reset_n", Backend: "pcf", Pin: 0, Mode: "open_drain", Initial: true, Check: true},
		{Name: "sense", Backend: "pcf", Pin: 7, Mode: "input_pulldown"},
		{Name: "relay", Backend: "mcp", Pin: 8, Mode: "push_pull", Check: true},
		{Name: "irq_n", Backend: "mcp", Pin: 3, Mode: "quasi_bidirectional", Initial: true},
	},
}
