// iopin/capability.go
package iopin

import "strings"

// CapabilitySet is the fixed set of modes a backend realises without
// substitution. It is a value; copies are independent.
type CapabilitySet uint8

func NewCapabilitySet(modes ...Mode) CapabilitySet {
	var cs CapabilitySet
	for _, m := range modes {
		if m.Valid() {
			cs |= 1 << m
		}
	}
	return cs
}

func (cs CapabilitySet) Has(m Mode) bool {
	return m.Valid() && cs&(1<<m) != 0
}

// Modes lists the members in Mode order.
func (cs CapabilitySet) Modes() []Mode {
	var out []Mode
	for m := Input; m < numModes; m++ {
		if cs.Has(m) {
			out = append(out, m)
		}
	}
	return out
}

func (cs CapabilitySet) String() string {
	ms := cs.Modes()
	names := make([]string, 0, len(ms))
	for _, m := range ms {
		names = append(names, m.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Validate checks the set against the mandatory Input baseline.
func (cs CapabilitySet) Validate() error {
	if !cs.Has(Input) {
		return &Error{S: HardwareUnsupported, Op: "validate", Pin: -1, Msg: cs.String(), Err: ErrNoBaseline}
	}
	return nil
}

// Fallback order per requested mode. Independent of backend.
var fallbacks = [numModes][]Mode{
	Input:              nil,
	InputPullUp:        {Input},
	InputPullDown:      {Input},
	QuasiBidirectional: {OpenDrain, PushPull},
	PushPull:           {QuasiBidirectional, OpenDrain},
	OpenDrain:          {QuasiBidirectional, PushPull},
}

// FallbackChain returns a copy of the substitution order for m, excluding m
// itself. Invalid modes have no chain.
func FallbackChain(m Mode) []Mode {
	if !m.Valid() {
		return nil
	}
	return append([]Mode(nil), fallbacks[m]...)
}
