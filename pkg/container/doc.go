// Package container implements lazily-resolved, validated configuration
// containers backed by environment variables and optional .env overlays.
//
// A Container is built from a schema.Schema. Each declared field gets its
// own resolver: the first read looks the value up in the merged key/value
// source (the rule's alias takes precedence over the field name for the
// lookup), falls back to the declared default, runs the validation
// pipeline, and caches the result. Later reads are served from the cache
// without consulting the source again. A failed validation is never
// cached; the next read retries from scratch.
//
// Set installs an explicit override for a field. The override is validated
// against the field's rule, then replaces any cached value; subsequent
// reads return it regardless of source state, and a Reload keeps it.
//
// Each field's cache slot is guarded by its own mutex, so resolving one
// field never serializes access to the others, and an override is
// linearizable with respect to an in-flight resolution of the same field.
//
// Construction is all-or-nothing in eager mode: with EagerValidate set,
// every field is resolved up front and all failures are aggregated into a
// single *validate.Errors; no container is returned.
//
// The Registry provides the one-singleton-per-name policy: Register
// constructs a named container exactly once, Instance hands the singleton
// back thereafter. A construction failure is sticky: the name stays
// registered and unusable, and Instance keeps returning the original
// error.
package container
