package source

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

// LookupFunc looks a key up in the process environment. It matches the
// signature of os.LookupEnv, the default.
type LookupFunc func(key string) (string, bool)

// SetFunc writes a key into the process environment. It matches the
// signature of os.Setenv, the default.
type SetFunc func(key, value string) error

// Config describes how a Source is built.
type Config struct {
	// Path is the .env overlay file. Empty means no overlay.
	Path string

	// Propagate writes overlay keys into the process environment at load
	// time. When false the overlay stays private to this source.
	Propagate bool

	// Environ overrides the process-environment lookup. Nil means
	// os.LookupEnv. Tests use this to isolate from the real environment.
	Environ LookupFunc

	// Setenv overrides the process-environment write used by
	// propagation. Nil means os.Setenv.
	Setenv SetFunc

	// Logger receives warnings about missing overlay files. Nil means
	// slog.Default().
	Logger *slog.Logger
}

// LoadError reports an overlay file that exists but could not be read or
// parsed. It is fatal to container construction.
type LoadError struct {
	Path string
	Err  error
}

// Error returns the formatted load failure.
func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load env file %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying read/parse error.
func (e *LoadError) Unwrap() error { return e.Err }

// Source is the merged key/value view over an overlay mapping and the
// process environment.
type Source struct {
	path      string
	propagate bool
	environ   LookupFunc
	setenv    SetFunc
	logger    *slog.Logger

	mu       sync.RWMutex
	overlay  map[string]string
	warnings []Warning
}

// New builds a Source and performs the one-time overlay load and, when
// configured, propagation into the process environment.
func New(cfg Config) (*Source, error) {
	s := &Source{
		path:      cfg.Path,
		propagate: cfg.Propagate,
		environ:   cfg.Environ,
		setenv:    cfg.Setenv,
		logger:    cfg.Logger,
	}
	if s.environ == nil {
		s.environ = os.LookupEnv
	}
	if s.setenv == nil {
		s.setenv = os.Setenv
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load reads the overlay file and applies the containment policy. It is
// called once by New and again by Reload.
func (s *Source) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		s.overlay = map[string]string{}
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		if !s.propagate {
			w := newWarning(s.path, "env file not found, falling back to process environment")
			s.warnings = append(s.warnings, w)
			s.logger.Warn("env file not found",
				"path", s.path,
				"warning_id", w.ID.String())
		}
		s.overlay = map[string]string{}
		return nil
	}

	// A failed read keeps the previous overlay, so a reload against a
	// half-written file serves last-good values instead of none.
	overlay, err := godotenv.Read(s.path)
	if err != nil {
		if s.overlay == nil {
			s.overlay = map[string]string{}
		}
		return &LoadError{Path: s.path, Err: err}
	}
	s.overlay = overlay

	if s.propagate {
		for key, value := range overlay {
			// External values win: propagation never overwrites a key
			// that is already set in the process environment.
			if _, exists := s.environ(key); exists {
				continue
			}
			if err := s.setenv(key, value); err != nil {
				return &LoadError{Path: s.path, Err: fmt.Errorf("propagating %s: %w", key, err)}
			}
		}
	}

	return nil
}

// Lookup returns the value for key from the merged view. A contained
// source consults the private overlay first and falls back to the process
// environment; a propagating source reads the process environment, into
// which the overlay was merged at load time.
func (s *Source) Lookup(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.propagate {
		if v, ok := s.overlay[key]; ok {
			return v, true
		}
	}
	return s.environ(key)
}

// Reload re-reads the overlay file and re-applies the containment policy.
// Accumulated warnings are kept. A failed re-read returns a *LoadError
// and leaves the previously loaded overlay in place.
func (s *Source) Reload() error {
	return s.load()
}

// Warnings returns a copy of the warnings recorded so far.
func (s *Source) Warnings() []Warning {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Warning, len(s.warnings))
	copy(out, s.warnings)
	return out
}

// Overlay returns a copy of the private overlay mapping. It is empty for
// a propagating source after load, since propagation moves the values
// into the process environment view.
func (s *Source) Overlay() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.overlay))
	for k, v := range s.overlay {
		out[k] = v
	}
	return out
}

// Path returns the configured overlay file path.
func (s *Source) Path() string { return s.path }
