// iopin/pin.go
package iopin

// Pin is a lightweight handle to one IO line on a backend. It holds no
// state of its own; copies refer to the same line.
type Pin struct {
	b  Backend
	id int
}

func NewPin(b Backend, id int) Pin { return Pin{b: b, id: id} }

func (p Pin) ID() int          { return p.id }
func (p Pin) Backend() Backend { return p.b }

// Init (re)initialises the pin in mode, or in the closest mode the backend
// supports. initial is the output level and has no effect for input modes.
//
// A nil error means the exact mode was applied. A downgrade returns the
// applied Resolution with an advisory error (see Advisory). The resolution
// is recomputed on every call.
func (p Pin) Init(mode Mode, initial bool) (Resolution, error) {
	if !mode.Valid() {
		return Resolution{Requested: mode, Resolved: Invalid}, p.fail("init", InputRangeError, ErrInvalidMode)
	}
	if p.b == nil {
		return Resolution{Requested: mode, Resolved: Invalid}, p.fail("init", NormalError, ErrUnknownPin)
	}
	res, err := Resolve(p.b, mode)
	if err != nil {
		if e, ok := err.(*Error); ok {
			e.Op, e.Pin = "init", p.id
		}
		return res, err
	}
	if err := p.b.NativeInit(p.id, res.Resolved, initial); err != nil {
		return res, p.fail("init", NormalError, err)
	}
	if res.Downgraded {
		return res, &Error{
			S:   HardwareUnsupported,
			Op:  "init",
			Pin: p.id,
			Msg: res.Requested.String() + " -> " + res.Resolved.String(),
			Err: ErrDowngraded,
		}
	}
	return res, nil
}

// Write drives the pin high (true) or low (false). The pin must have been
// initialised in an output-capable mode.
func (p Pin) Write(level bool) error {
	if p.b == nil {
		return p.fail("write", NormalError, ErrUnknownPin)
	}
	if mr, ok := p.b.(ModeReporter); ok {
		m, known := mr.Mode(p.id)
		if !known {
			return p.fail("write", NormalError, ErrNotInitialised)
		}
		if !m.OutputCapable() {
			return p.fail("write", NormalError, ErrNotOutput)
		}
	}
	if err := p.b.NativeWrite(p.id, level); err != nil {
		return p.fail("write", NormalError, err)
	}
	return nil
}

// Read samples the current electrical level. Valid in any mode, including
// reading back a driven output.
func (p Pin) Read() (bool, error) {
	if p.b == nil {
		return false, p.fail("read", NormalError, ErrUnknownPin)
	}
	v, err := p.b.NativeRead(p.id)
	if err != nil {
		return false, p.fail("read", NormalError, err)
	}
	return v, nil
}

// ReadToReturn is Read with errors reported as false.
func (p Pin) ReadToReturn() bool {
	v, err := p.Read()
	return err == nil && v
}

// Mode reports the mode the backend has applied, when it tracks one.
func (p Pin) Mode() (Mode, bool) {
	if mr, ok := p.b.(ModeReporter); ok {
		return mr.Mode(p.id)
	}
	return Invalid, false
}

func (p Pin) fail(op string, s Status, err error) *Error {
	return &Error{S: s, Op: op, Pin: p.id, Err: err}
}
