// iopin/backend.go
package iopin

// Backend is a concrete pin driver for one device family.
//
// NativeInit must only be handed modes present in Capabilities; all
// substitution happens in this package, never in the backend. Backends that
// share one register between several pins serialise access themselves.
type Backend interface {
	Capable
	Name() string
	NativeInit(id int, mode Mode, value bool) error
	NativeWrite(id int, value bool) error
	NativeRead(id int) (bool, error)
}

// ModeReporter is implemented by backends that track the applied mode.
type ModeReporter interface {
	Mode(id int) (Mode, bool)
}
