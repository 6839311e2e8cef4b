// internal/platform/setups/setup.go
package setups

import (
	"encoding/json"
	"errors"
	"io"

	"iopin-go/iopin"
)

var (
	ErrMissingBackend = errors.New("missing_backend")
	ErrDuplicateName  = errors.New("duplicate_name")
)

// Setup lists the pins a bring-up run configures.
type Setup struct {
	Pins []PinSetup `json:"pins"`
}

// PinSetup describes one pin: which backend line, which mode, which level.
type PinSetup struct {
	Name    string `json:"name"`
	Backend string `json:"backend"` // e.g. "mcu", "pcf", "mcp"
	Pin     int    `json:"pin"`
	Mode    string `json:"mode"` // see iopin.ParseMode
	Initial bool   `json:"initial,omitempty"`
	// Check drives the pin high then low and reads each level back.
	Check bool `json:"check,omitempty"`
}

// Decode reads a JSON setup and validates every entry.
func Decode(r io.Reader) (Setup, error) {
	var s Setup
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Setup{}, err
	}
	if err := s.Validate(); err != nil {
		return Setup{}, err
	}
	return s, nil
}

// Validate checks names, backends and modes. Mode errors carry
// iopin.InputRangeError.
func (s Setup) Validate() error {
	seen := make(map[string]bool, len(s.Pins))
	for _, p := range s.Pins {
		if p.Backend == "" {
			return &iopin.Error{S: iopin.NormalError, Op: "setup", Pin: p.Pin, Msg: p.Name, Err: ErrMissingBackend}
		}
		if p.Name != "" {
			if seen[p.Name] {
				return &iopin.Error{S: iopin.NormalError, Op: "setup", Pin: p.Pin, Msg: p.Name, Err: ErrDuplicateName}
			}
			seen[p.Name] = true
		}
		if _, err := iopin.ParseMode(p.Mode); err != nil {
			return err
		}
	}
	return nil
}
