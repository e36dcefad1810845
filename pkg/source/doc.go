// Package source provides the key/value view a container resolves fields
// from: an optional .env overlay file merged with the process environment.
//
// The overlay is parsed once, at container construction, by godotenv.
// Containment decides how the two layers relate. A contained source keeps
// the overlay private: lookups consult the overlay first and fall back to
// the process environment per key, and the process environment is never
// mutated. A propagating source writes every overlay key into the process
// environment exactly once at load time; keys already set externally keep
// their external value. Propagation is a deliberate, documented side
// effect: it makes overlay values visible to other containers and to
// non-managed code.
//
// A missing overlay file is not fatal. For a contained source it is
// recorded as a Warning (retrievable via Warnings, logged through slog)
// and lookups fall through to the process environment. An unreadable or
// malformed overlay file is a *LoadError and aborts container
// construction.
//
// Watcher provides optional hot-reload: it watches the overlay file with
// fsnotify and invokes a reload callback after a debounce interval.
package source
