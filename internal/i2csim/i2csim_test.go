package i2csim

import (
	"errors"
	"testing"
)

func TestBusUnknownAddressNacks(t *testing.T) {
	b := NewBus()
	if err := b.Tx(0x40, []byte{1}, nil); !errors.Is(err, ErrNoAck) {
		t.Fatalf("want no ack, got %v", err)
	}
	if b.LastTx.Addr != 0x40 || b.Count != 1 {
		t.Fatalf("last tx not recorded: %+v", b.LastTx)
	}
}

func TestPCF8574SingleByte(t *testing.T) {
	p := NewPCF857x(8)
	b := NewBus()
	b.Attach(0x20, p)
	if err := b.Tx(0x20, []byte{0xF0}, nil); err != nil {
		t.Fatal(err)
	}
	p.PullLow(7)
	r := make([]byte, 1)
	if err := b.Tx(0x20, nil, r); err != nil {
		t.Fatal(err)
	}
	if r[0] != 0x70 {
		t.Fatalf("port=%#02x want 0x70", r[0])
	}
	p.Free(7)
	_ = b.Tx(0x20, nil, r)
	if r[0] != 0xF0 {
		t.Fatalf("port=%#02x want 0xf0", r[0])
	}
}

func TestMCP23017GPIOWriteLandsInOLAT(t *testing.T) {
	m := NewMCP23017()
	if err := m.Tx([]byte{mcpGPIOA, 0x0F, 0xA0}, nil); err != nil {
		t.Fatal(err)
	}
	if m.Reg(mcpOLATA) != 0x0F || m.Reg(mcpOLATA+1) != 0xA0 {
		t.Fatalf("OLAT=%#02x,%#02x", m.Reg(mcpOLATA), m.Reg(mcpOLATA+1))
	}
	// All lines are inputs at power-on, so GPIO reflects pulls, not OLAT.
	r := make([]byte, 2)
	_ = m.Tx([]byte{mcpGPIOA}, r)
	if r[0] != 0 || r[1] != 0 {
		t.Fatalf("inputs without pulls read %#v", r)
	}
}
