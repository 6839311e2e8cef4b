// iopin/mode.go
package iopin

import "strings"

// Mode is the electrical drive/sense configuration of a pin.
type Mode uint8

const (
	Input Mode = iota
	InputPullUp
	InputPullDown
	QuasiBidirectional
	PushPull
	OpenDrain

	numModes
)

// Invalid is the Resolved mode of a Resolution that applied nothing.
const Invalid = numModes

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool { return m < numModes }

// OutputCapable reports whether a pin in mode m can drive a level.
func (m Mode) OutputCapable() bool {
	switch m {
	case QuasiBidirectional, PushPull, OpenDrain:
		return true
	default:
		return false
	}
}

func (m Mode) String() string {
	switch m {
	case Input:
		return "input"
	case InputPullUp:
		return "input_pullup"
	case InputPullDown:
		return "input_pulldown"
	case QuasiBidirectional:
		return "quasi_bidirectional"
	case PushPull:
		return "push_pull"
	case OpenDrain:
		return "open_drain"
	default:
		return "invalid"
	}
}

// ParseMode converts a configuration string to a Mode.
// Accepts the String() names plus a few common aliases (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "input", "in":
		return Input, nil
	case "input_pullup", "pullup", "up":
		return InputPullUp, nil
	case "input_pulldown", "pulldown", "down":
		return InputPullDown, nil
	case "quasi_bidirectional", "quasi":
		return QuasiBidirectional, nil
	case "push_pull", "output", "out":
		return PushPull, nil
	case "open_drain", "od":
		return OpenDrain, nil
	default:
		return Invalid, &Error{S: InputRangeError, Op: "parse", Pin: -1, Msg: s, Err: ErrInvalidMode}
	}
}
