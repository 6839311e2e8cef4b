// iopin/resolve.go
package iopin

// Capable is anything that declares a CapabilitySet; every Backend is one.
type Capable interface {
	Capabilities() CapabilitySet
}

// Resolution is the outcome of mode negotiation for one Init call. When
// negotiation fails Resolved is Invalid and Downgraded is false.
type Resolution struct {
	Requested  Mode
	Resolved   Mode
	Downgraded bool
}

// Resolve picks the mode to apply for requested on b.
//
// A native mode resolves to itself. Otherwise the first entry of the
// requested mode's fallback chain present in b's capabilities is chosen and
// Downgraded is set. An exhausted chain means the backend description is
// defective: the result is a HardwareUnsupported error wrapping
// ErrNoCapableMode, Resolved is Invalid and nothing may be applied.
func Resolve(b Capable, requested Mode) (Resolution, error) {
	res := Resolution{Requested: requested, Resolved: Invalid}
	if !requested.Valid() {
		return res, &Error{S: InputRangeError, Op: "resolve", Pin: -1, Err: ErrInvalidMode}
	}
	cs := b.Capabilities()
	if cs.Has(requested) {
		res.Resolved = requested
		return res, nil
	}
	for _, m := range fallbacks[requested] {
		if cs.Has(m) {
			res.Resolved = m
			res.Downgraded = true
			return res, nil
		}
	}
	return res, &Error{
		S:   HardwareUnsupported,
		Op:  "resolve",
		Pin: -1,
		Msg: requested.String() + " on " + cs.String(),
		Err: ErrNoCapableMode,
	}
}
