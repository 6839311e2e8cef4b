// iopin/hostsim/hostsim.go

// Package hostsim is an in-memory pin backend for host builds and tests.
//
// Each line models its latch, its applied mode and an optional external
// driver, so open-drain contention and pull resistors read back the way they
// would on a board.
package hostsim

import (
	"sync"

	"iopin-go/iopin"
)

type line struct {
	mode       iopin.Mode
	configured bool
	latch      bool
	extSet     bool // an external driver holds the line
	ext        bool
}

// level is the electrical state seen on the line.
func (l *line) level() bool {
	if !l.configured {
		return l.extSet && l.ext
	}
	switch l.mode {
	case iopin.PushPull:
		return l.latch
	case iopin.OpenDrain, iopin.QuasiBidirectional:
		if !l.latch {
			return false // we sink the line
		}
		if l.extSet {
			return l.ext
		}
		return true // pulled up
	case iopin.InputPullUp:
		if l.extSet {
			return l.ext
		}
		return true
	default: // Input, InputPullDown: floating lines read low
		return l.extSet && l.ext
	}
}

// Backend simulates one GPIO controller with a fixed capability set.
type Backend struct {
	name  string
	caps  iopin.CapabilitySet
	lines int

	mu    sync.Mutex
	pins  map[int]*line
	calls Calls
}

// Calls counts native operations that reached the backend.
type Calls struct {
	Init, Write, Read int
}

// New returns a backend named name exposing lines pins (0..lines-1).
func New(name string, caps iopin.CapabilitySet, lines int) *Backend {
	return &Backend{name: name, caps: caps, lines: lines, pins: make(map[int]*line)}
}

func (b *Backend) Name() string                      { return b.name }
func (b *Backend) Capabilities() iopin.CapabilitySet { return b.caps }

func (b *Backend) get(id int) (*line, bool) {
	if id < 0 || id >= b.lines {
		return nil, false
	}
	l, ok := b.pins[id]
	if !ok {
		l = &line{}
		b.pins[id] = l
	}
	return l, true
}

func (b *Backend) NativeInit(id int, mode iopin.Mode, value bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls.Init++
	l, ok := b.get(id)
	if !ok {
		return iopin.ErrUnknownPin
	}
	if !b.caps.Has(mode) {
		return iopin.ErrUnsupportedMode
	}
	l.mode = mode
	l.configured = true
	if mode.OutputCapable() {
		l.latch = value
	}
	return nil
}

func (b *Backend) NativeWrite(id int, value bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls.Write++
	l, ok := b.get(id)
	switch {
	case !ok:
		return iopin.ErrUnknownPin
	case !l.configured:
		return iopin.ErrNotInitialised
	case !l.mode.OutputCapable():
		return iopin.ErrNotOutput
	}
	l.latch = value
	return nil
}

func (b *Backend) NativeRead(id int) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls.Read++
	l, ok := b.get(id)
	if !ok {
		return false, iopin.ErrUnknownPin
	}
	return l.level(), nil
}

func (b *Backend) Mode(id int) (iopin.Mode, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	l, ok := b.get(id)
	if !ok || !l.configured {
		return 0, false
	}
	return l.mode, true
}

// Drive makes an external device hold line id at level.
func (b *Backend) Drive(id int, level bool) {
	b.mu.Lock()
	if l, ok := b.get(id); ok {
		l.extSet, l.ext = true, level
	}
	b.mu.Unlock()
}

// Release removes the external driver from line id.
func (b *Backend) Release(id int) {
	b.mu.Lock()
	if l, ok := b.get(id); ok {
		l.extSet = false
	}
	b.mu.Unlock()
}

// Latch exposes the output latch of line id for tests.
func (b *Backend) Latch(id int) (bool, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	l, ok := b.get(id)
	if !ok {
		return false, false
	}
	return l.latch, true
}

// Calls returns a snapshot of the native call counters.
func (b *Backend) Calls() Calls {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}
