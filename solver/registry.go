package solver

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownSolver is returned when a name has no registered algorithm.
var ErrUnknownSolver = errors.New("unknown solver")

// ErrAnimateUnsupported is returned when iterative output is requested
// from an algorithm that only implements Solve.
var ErrAnimateUnsupported = errors.New("solver does not support animation")

// Factory constructs a fresh algorithm instance.
type Factory func() Solver

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register makes an algorithm available under the given name.
//
// Algorithm implementations should typically call this from an init()
// function. Registering the same name twice is a programmer error and
// panics.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("solver: duplicate registration of %q", name))
	}
	registry[name] = f
}

// New returns a fresh instance of the named algorithm.
func New(name string) (Solver, error) {
	registryMu.RLock()
	f, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, name)
	}
	return f(), nil
}

// Names returns the registered algorithm names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
