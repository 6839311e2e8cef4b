package platform

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"iopin-go/internal/i2csim"
	"iopin-go/iopin"
	"iopin-go/iopin/hostsim"
	"iopin-go/iopin/mcp23017"
	"iopin-go/iopin/pcf857x"
)

func TestHostSetRegistersAllBackends(t *testing.T) {
	s, h := NewHost()
	names := s.Names()
	if len(names) != 3 || names[0] != "mcu" || names[1] != "pcf" || names[2] != "mcp" {
		t.Fatalf("names=%v", names)
	}
	b, ok := s.Lookup("mcu")
	if !ok || b != iopin.Backend(h.MCU) {
		t.Fatal("mcu lookup mismatch")
	}
	if _, ok := s.Lookup("nope"); ok {
		t.Fatal("unexpected backend")
	}
}

func TestExpanderThroughSharedBus(t *testing.T) {
	s, h := NewHost()
	pcf, _ := s.Lookup("pcf")
	mcp, _ := s.Lookup("mcp")

	a := iopin.NewPin(pcf, 4)
	if _, err := a.Init(iopin.QuasiBidirectional, false); err != nil {
		t.Fatal(err)
	}
	b := iopin.NewPin(mcp, 4)
	if _, err := b.Init(iopin.PushPull, true); err != nil {
		t.Fatal(err)
	}
	if a.ReadToReturn() || !b.ReadToReturn() {
		t.Fatal("expanders interfere on the shared bus")
	}
	if h.PCF.Latch()&(1<<4) != 0 {
		t.Fatal("pcf latch not updated")
	}
}

func TestAddReplacesAndKeepsOrder(t *testing.T) {
	s := NewSet()
	s.Add("x", hostsim.New("x1", iopin.NewCapabilitySet(iopin.Input), 1))
	s.Add("y", hostsim.New("y", iopin.NewCapabilitySet(iopin.Input), 1))
	s.Add("x", hostsim.New("x2", iopin.NewCapabilitySet(iopin.Input), 1))
	if n := s.Names(); len(n) != 2 || n[0] != "x" || n[1] != "y" {
		t.Fatalf("names=%v", n)
	}
	b, _ := s.Lookup("x")
	if b.Name() != "x2" {
		t.Fatalf("replacement not applied: %s", b.Name())
	}
}

func TestDefectiveBackendStillRegistered(t *testing.T) {
	s := NewSet()
	s.Add("bad", hostsim.New("bad", iopin.NewCapabilitySet(iopin.PushPull), 1))
	b, ok := s.Lookup("bad")
	if !ok {
		t.Fatal("defective backend should be registered")
	}
	if _, err := iopin.NewPin(b, 0).Init(iopin.Input, false); iopin.StatusOf(err) != iopin.HardwareUnsupported {
		t.Fatalf("want hardware unsupported, got %v", err)
	}
}

func TestDefaultIsSingleton(t *testing.T) {
	if Default() != Default() {
		t.Fatal("Default must be built once")
	}
}

// rawBus is a drivers.I2C with no locking of its own. It records the highest
// number of transactions seen in flight at once.
type rawBus struct {
	targets  map[uint16]i2csim.Target
	inflight atomic.Int32
	peak     atomic.Int32
}

func (b *rawBus) Tx(addr uint16, w, r []byte) error {
	n := b.inflight.Add(1)
	for {
		p := b.peak.Load()
		if n <= p || b.peak.CompareAndSwap(p, n) {
			break
		}
	}
	runtime.Gosched()
	err := b.targets[addr].Tx(w, r)
	b.inflight.Add(-1)
	return err
}

func TestExpandersSerialisedOnSharedBus(t *testing.T) {
	raw := &rawBus{targets: map[uint16]i2csim.Target{
		0x20: i2csim.NewPCF857x(16),
		0x21: i2csim.NewMCP23017(),
	}}
	i2c0 := NewSharedI2C(raw)
	pcf, err := pcf857x.New(i2c0, 0x20, 16)
	if err != nil {
		t.Fatal(err)
	}
	mcp, err := mcp23017.New(i2c0, 0x21)
	if err != nil {
		t.Fatal(err)
	}

	pins := []struct {
		p    iopin.Pin
		mode iopin.Mode
	}{
		{iopin.NewPin(pcf, 1), iopin.QuasiBidirectional},
		{iopin.NewPin(mcp, 1), iopin.PushPull},
	}
	var wg sync.WaitGroup
	for _, x := range pins {
		if _, err := x.p.Init(x.mode, false); err != nil {
			t.Fatalf("init: %v", err)
		}
		wg.Add(1)
		go func(p iopin.Pin) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				v := i%2 == 0
				if err := p.Write(v); err != nil {
					t.Errorf("write: %v", err)
					return
				}
				if got, err := p.Read(); err != nil || got != v {
					t.Errorf("read %v, %v want %v", got, err, v)
					return
				}
			}
		}(x.p)
	}
	wg.Wait()
	if peak := raw.peak.Load(); peak != 1 {
		t.Fatalf("%d transactions overlapped on the shared bus", peak)
	}
}
