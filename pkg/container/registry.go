package container

import (
	"fmt"
	"sync"

	"github.com/satyamsoni2211/lazy-env-configurator/pkg/schema"
)

// registration holds the one-time construction result for a named
// container. The sync.Once guarantees the factory runs exactly once per
// name; the result, error included, is what every later accessor sees.
// done is closed when the factory has finished, so readers never observe
// the window between the map insert and the construction result.
type registration struct {
	once      sync.Once
	done      chan struct{}
	container *Container
	err       error
}

var (
	// registryMu protects the registrations map.
	registryMu sync.RWMutex

	// registrations holds one entry per registered container name.
	registrations = make(map[string]*registration)
)

// Register constructs the singleton container for name from the schema
// and stores it process-wide. The construction runs exactly once per
// name; registering a name twice fails with ErrAlreadyRegistered even if
// the first construction failed. A construction failure is sticky: the
// name stays registered and Instance keeps returning the original error.
func Register(name string, s *schema.Schema, opts ...Option) (*Container, error) {
	registryMu.Lock()
	if _, dup := registrations[name]; dup {
		registryMu.Unlock()
		return nil, fmt.Errorf("%q: %w", name, ErrAlreadyRegistered)
	}
	reg := &registration{done: make(chan struct{})}
	registrations[name] = reg
	registryMu.Unlock()

	reg.once.Do(func() {
		defer close(reg.done)
		reg.container, reg.err = New(s, append(opts, WithName(name))...)
	})
	return reg.container, reg.err
}

// Instance returns the singleton container registered under name, or the
// sticky construction error if its registration failed.
func Instance(name string) (*Container, error) {
	registryMu.RLock()
	reg, ok := registrations[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNotRegistered)
	}
	<-reg.done
	return reg.container, reg.err
}

// MustInstance is Instance panicking on error. Use it in code paths that
// run only after a successful Register.
func MustInstance(name string) *Container {
	c, err := Instance(name)
	if err != nil {
		panic(fmt.Sprintf("container instance %q: %v", name, err))
	}
	return c
}

// Unregister removes a registration. It exists for tests; production
// containers live for the process lifetime.
func Unregister(name string) {
	registryMu.Lock()
	delete(registrations, name)
	registryMu.Unlock()
}
