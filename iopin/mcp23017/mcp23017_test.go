package mcp23017

import (
	"errors"
	"testing"

	"iopin-go/internal/i2csim"
	"iopin-go/iopin"
)

func setup(t *testing.T) (*Device, *i2csim.MCP23017) {
	t.Helper()
	bus := i2csim.NewBus()
	chip := i2csim.NewMCP23017()
	bus.Attach(0x21, chip)
	d, err := New(bus, 0x21)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	return d, chip
}

func TestNewRejectsAddress(t *testing.T) {
	for _, a := range []uint16{0x1F, 0x28, 0x00} {
		if _, err := New(i2csim.NewBus(), a); !errors.Is(err, ErrBadAddress) {
			t.Fatalf("addr %#x: %v", a, err)
		}
	}
}

func TestPushPullPortB(t *testing.T) {
	d, chip := setup(t)
	p := iopin.NewPin(d, 10)
	if _, err := p.Init(iopin.PushPull, true); err != nil {
		t.Fatalf("init: %v", err)
	}
	if chip.Reg(regIODIR+1)&(1<<2) != 0 {
		t.Fatal("IODIRB bit 2 should be output")
	}
	if chip.Reg(regOLAT+1)&(1<<2) == 0 {
		t.Fatal("OLATB bit 2 should hold initial high")
	}
	for _, v := range []bool{false, false, true} {
		if err := p.Write(v); err != nil {
			t.Fatal(err)
		}
		if got := p.ReadToReturn(); got != v {
			t.Fatalf("read %v want %v", got, v)
		}
	}
}

func TestQuasiAndOpenDrainDowngradeToPushPull(t *testing.T) {
	d, _ := setup(t)
	for i, m := range []iopin.Mode{iopin.QuasiBidirectional, iopin.OpenDrain} {
		res, err := iopin.NewPin(d, i).Init(m, false)
		if !iopin.Advisory(err) || res.Resolved != iopin.PushPull {
			t.Fatalf("%v: %+v %v", m, res, err)
		}
	}
}

func TestPullUpNativeAndPullDownDowngrade(t *testing.T) {
	d, chip := setup(t)
	up := iopin.NewPin(d, 0)
	if _, err := up.Init(iopin.InputPullUp, false); err != nil {
		t.Fatal(err)
	}
	if chip.Reg(regGPPU)&1 == 0 {
		t.Fatal("GPPUA bit 0 not set")
	}
	if !up.ReadToReturn() {
		t.Fatal("pulled-up input reads high")
	}
	chip.Drive(0, false)
	if up.ReadToReturn() {
		t.Fatal("external low must win")
	}

	down := iopin.NewPin(d, 1)
	res, err := down.Init(iopin.InputPullDown, true)
	if !iopin.Advisory(err) || res.Resolved != iopin.Input {
		t.Fatalf("%+v %v", res, err)
	}
	if chip.Reg(regGPPU)&2 != 0 {
		t.Fatal("plain input must not enable pull-up")
	}
}

func TestReinitOutputToInputClearsDirection(t *testing.T) {
	d, chip := setup(t)
	p := iopin.NewPin(d, 4)
	if _, err := p.Init(iopin.PushPull, true); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Init(iopin.Input, false); err != nil {
		t.Fatal(err)
	}
	if chip.Reg(regIODIR)&(1<<4) == 0 {
		t.Fatal("pin should be input again")
	}
	if err := d.NativeWrite(4, true); !errors.Is(err, iopin.ErrNotOutput) {
		t.Fatalf("backend must refuse writes to inputs: %v", err)
	}
}

func TestBusFailureLeavesShadows(t *testing.T) {
	d, err := New(i2csim.NewBus(), 0x20)
	if err != nil {
		t.Fatal(err)
	}
	_, err = iopin.NewPin(d, 0).Init(iopin.PushPull, true)
	if iopin.StatusOf(err) != iopin.NormalError {
		t.Fatalf("want normal error, got %v", err)
	}
	if d.olat != 0 || d.iodir != 0xFFFF {
		t.Fatalf("shadows changed: olat=%#x iodir=%#x", d.olat, d.iodir)
	}
	if _, ok := d.Mode(0); ok {
		t.Fatal("mode recorded after failure")
	}
}
