package i2csim

import "sync"

// PCF857x emulates a PCF8574 (8 lines) or PCF8575 (16 lines).
// There are no registers: writes load the latch, reads return the port.
// A latch bit of 1 releases the line to the weak pull-up.
type PCF857x struct {
	mu    sync.Mutex
	width int // bytes per transfer: 1 or 2
	latch uint16
	low   uint16 // lines held low by an external device
}

func NewPCF857x(lines int) *PCF857x {
	w := 1
	if lines > 8 {
		w = 2
	}
	return &PCF857x{width: w, latch: 0xFFFF}
}

func (p *PCF857x) Tx(w, r []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(w) >= p.width {
		v := uint16(w[0])
		if p.width == 2 {
			v |= uint16(w[1]) << 8
		} else {
			v |= 0xFF00
		}
		p.latch = v
	}
	port := p.latch &^ p.low
	for i := range r {
		r[i] = byte(port >> (8 * (i % p.width)))
	}
	return nil
}

// PullLow makes an external device sink line n.
func (p *PCF857x) PullLow(n int) {
	p.mu.Lock()
	p.low |= 1 << n
	p.mu.Unlock()
}

// Free removes the external sink from line n.
func (p *PCF857x) Free(n int) {
	p.mu.Lock()
	p.low &^= 1 << n
	p.mu.Unlock()
}

func (p *PCF857x) Latch() uint16 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.latch
}
