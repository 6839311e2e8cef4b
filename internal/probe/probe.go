// internal/probe/probe.go

// Package probe applies a pin setup and reports how each request was
// honoured, for board bring-up.
package probe

import (
	"iopin-go/internal/platform/setups"
	"iopin-go/iopin"
)

// Backends resolves setup backend names.
type Backends interface {
	Lookup(name string) (iopin.Backend, bool)
}

// Report is the outcome for one configured pin.
type Report struct {
	Name    string
	Backend string
	Pin     int
	Res     iopin.Resolution
	Status  iopin.Status
	Err     error
	Checked bool
	CheckOK bool
	Level   bool // level read after setup
}

// Run initialises every pin in s, in order. A failing pin does not stop the
// run.
func Run(s setups.Setup, bs Backends) []Report {
	out := make([]Report, 0, len(s.Pins))
	for _, ps := range s.Pins {
		out = append(out, runOne(ps, bs))
	}
	return out
}

func runOne(ps setups.PinSetup, bs Backends) Report {
	r := Report{Name: ps.Name, Backend: ps.Backend, Pin: ps.Pin}
	mode, err := iopin.ParseMode(ps.Mode)
	if err != nil {
		r.Status, r.Err = iopin.StatusOf(err), err
		return r
	}
	b, ok := bs.Lookup(ps.Backend)
	if !ok {
		r.Res = iopin.Resolution{Requested: mode, Resolved: iopin.Invalid}
		r.Status, r.Err = iopin.NormalError, &iopin.Error{S: iopin.NormalError, Op: "lookup", Pin: ps.Pin, Msg: ps.Backend, Err: iopin.ErrUnknownPin}
		return r
	}
	p := iopin.NewPin(b, ps.Pin)
	r.Res, r.Err = p.Init(mode, ps.Initial)
	r.Status = iopin.StatusOf(r.Err)
	if r.Err != nil && !iopin.Advisory(r.Err) {
		return r
	}
	if ps.Check && r.Res.Resolved.OutputCapable() {
		r.Checked = true
		r.CheckOK = check(p, ps.Initial)
	}
	r.Level = p.ReadToReturn()
	return r
}

// check drives high then low, reading each back, then restores initial.
func check(p iopin.Pin, initial bool) bool {
	ok := true
	for _, v := range []bool{true, false} {
		if err := p.Write(v); err != nil {
			return false
		}
		got, err := p.Read()
		if err != nil || got != v {
			ok = false
		}
	}
	if err := p.Write(initial); err != nil {
		return false
	}
	return ok
}

// Summary counts exact, downgraded and failed pins. A pin whose write/read
// check failed counts as failed.
func Summary(rs []Report) (exact, downgraded, failed int) {
	for _, r := range rs {
		switch {
		case r.Checked && !r.CheckOK:
			failed++
		case r.Err == nil:
			exact++
		case iopin.Advisory(r.Err):
			downgraded++
		default:
			failed++
		}
	}
	return
}
