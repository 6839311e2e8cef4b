// internal/platform/platform.go
package platform

import (
	"sync"

	"iopin-go/iopin"
)

// Set is the group of backends available on the running target, by name.
type Set struct {
	mu    sync.RWMutex
	order []string
	by    map[string]iopin.Backend
}

func NewSet() *Set { return &Set{by: make(map[string]iopin.Backend)} }

// Add registers b under name. A capability set lacking the Input baseline is
// still registered (its Init calls fail) but is reported on the console.
func (s *Set) Add(name string, b iopin.Backend) {
	if err := b.Capabilities().Validate(); err != nil {
		println("[platform] backend", name, "defective:", err.Error())
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.by[name]; !exists {
		s.order = append(s.order, name)
	}
	s.by[name] = b
}

func (s *Set) Lookup(name string) (iopin.Backend, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.by[name]
	return b, ok
}

// Names lists backends in registration order.
func (s *Set) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.order...)
}

var (
	defOnce sync.Once
	defSet  *Set
)

// Default returns the target's backend set, built on first use.
func Default() *Set {
	defOnce.Do(func() { defSet = defaultBackends() })
	return defSet
}
