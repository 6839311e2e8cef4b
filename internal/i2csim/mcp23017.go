package i2csim

import "sync"

// MCP23017 register addresses, IOCON.BANK = 0 (paired layout).
const (
	mcpIODIRA = 0x00
	mcpGPPUA  = 0x0C
	mcpGPIOA  = 0x12
	mcpGPIOB  = 0x13
	mcpOLATA  = 0x14
	mcpNumReg = 0x16
)

// MCP23017 emulates the register file and sequential addressing of the
// expander. Port A is lines 0..7, port B lines 8..15.
type MCP23017 struct {
	mu     sync.Mutex
	regs   [mcpNumReg]byte
	ptr    byte
	extSet uint16
	ext    uint16
}

func NewMCP23017() *MCP23017 {
	m := &MCP23017{}
	m.regs[mcpIODIRA] = 0xFF
	m.regs[mcpIODIRA+1] = 0xFF
	return m
}

func (m *MCP23017) Tx(w, r []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(w) > 0 {
		m.ptr = w[0] % mcpNumReg
		for _, b := range w[1:] {
			reg := m.ptr
			if reg == mcpGPIOA || reg == mcpGPIOB {
				reg += mcpOLATA - mcpGPIOA // GPIO writes land in OLAT
			}
			m.regs[reg] = b
			m.ptr = (m.ptr + 1) % mcpNumReg
		}
	}
	for i := range r {
		r[i] = m.read(m.ptr)
		m.ptr = (m.ptr + 1) % mcpNumReg
	}
	return nil
}

func (m *MCP23017) read(reg byte) byte {
	if reg != mcpGPIOA && reg != mcpGPIOB {
		return m.regs[reg]
	}
	port := reg - mcpGPIOA
	iodir := m.regs[mcpIODIRA+port]
	gppu := m.regs[mcpGPPUA+port]
	olat := m.regs[mcpOLATA+port]
	extSet := byte(m.extSet >> (8 * port))
	ext := byte(m.ext >> (8 * port))
	var v byte
	for bit := 0; bit < 8; bit++ {
		mask := byte(1) << bit
		switch {
		case iodir&mask == 0:
			v |= olat & mask
		case extSet&mask != 0:
			v |= ext & mask
		default:
			v |= gppu & mask
		}
	}
	return v
}

// Drive makes an external device hold line n at level.
func (m *MCP23017) Drive(n int, level bool) {
	m.mu.Lock()
	m.extSet |= 1 << n
	if level {
		m.ext |= 1 << n
	} else {
		m.ext &^= 1 << n
	}
	m.mu.Unlock()
}

// Reg returns the raw value of register reg.
func (m *MCP23017) Reg(reg byte) byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.regs[reg%mcpNumReg]
}
