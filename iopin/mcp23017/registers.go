package mcp23017

// Register addresses with IOCON.BANK = 0 (power-on layout). A and B
// registers are adjacent, so a two-byte sequential transfer covers both
// ports, port A first.
const (
	regIODIR = 0x00 // 1: input, 0: output
	regGPPU  = 0x0C // 1: 100k pull-up enabled
	regGPIO  = 0x12 // reads pin levels
	regOLAT  = 0x14 // output latches
)

const (
	AddrBase uint16 = 0x20
	AddrMax  uint16 = 0x27
)
