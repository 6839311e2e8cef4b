// iopin/status.go
package iopin

import (
	"errors"
	"strconv"
)

// Status is the outcome code of a pin operation.
type Status int8

const (
	Success             Status = 0
	NormalError         Status = -1
	InputRangeError     Status = -2
	HardwareUnsupported Status = -3 // advisory when paired with ErrDowngraded
)

func (s Status) String() string {
	switch s {
	case Success:
		return "ok"
	case NormalError:
		return "error"
	case InputRangeError:
		return "input_range"
	case HardwareUnsupported:
		return "hardware_unsupported"
	default:
		return "status(" + strconv.Itoa(int(s)) + ")"
	}
}

var (
	// Range
	ErrInvalidMode = errors.New("invalid_mode")

	// Capability
	ErrDowngraded    = errors.New("downgraded")
	ErrNoCapableMode = errors.New("no_capable_mode")
	ErrNoBaseline    = errors.New("no_input_baseline")

	// Backend / pass-through
	ErrUnknownPin      = errors.New("unknown_pin")
	ErrNotInitialised  = errors.New("not_initialised")
	ErrNotOutput       = errors.New("not_output")
	ErrUnsupportedMode = errors.New("unsupported_mode")
)

// Error carries a Status together with the failing operation and its cause.
type Error struct {
	S   Status
	Op  string // "init", "write", "read", "resolve", "parse"
	Pin int    // -1 when not tied to a pin
	Msg string
	Err error
}

func (e *Error) Error() string {
	s := e.Op
	if e.Pin >= 0 {
		s += " pin " + strconv.Itoa(e.Pin)
	}
	s += ": " + e.S.String()
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	if e.Msg != "" {
		s += " (" + e.Msg + ")"
	}
	return s
}

func (e *Error) Unwrap() error  { return e.Err }
func (e *Error) Status() Status { return e.S }

// StatusOf extracts a Status from an error. nil maps to Success and
// errors carrying no status map to NormalError.
func StatusOf(err error) Status {
	if err == nil {
		return Success
	}
	type statuser interface{ Status() Status }
	var x statuser
	if errors.As(err, &x) {
		return x.Status()
	}
	return NormalError
}

// Advisory reports whether err only signals a mode downgrade: the pin was
// initialised, just not in the requested mode.
func Advisory(err error) bool {
	return StatusOf(err) == HardwareUnsupported && errors.Is(err, ErrDowngraded)
}
