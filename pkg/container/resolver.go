package container

import (
	"sync"

	"github.com/satyamsoni2211/lazy-env-configurator/pkg/schema"
	"github.com/satyamsoni2211/lazy-env-configurator/pkg/source"
	"github.com/satyamsoni2211/lazy-env-configurator/pkg/validate"
)

// Resolution states of a field's cache slot.
const (
	stateEmpty = iota
	stateResolved
	stateOverridden
)

// fieldResolver resolves one declared field on first access and caches
// the result. The mutex guards the slot alone, so unrelated fields never
// contend with each other.
type fieldResolver struct {
	field schema.Field
	src   *source.Source

	mu    sync.Mutex
	state int
	value any
}

func newFieldResolver(f schema.Field, src *source.Source) *fieldResolver {
	return &fieldResolver{field: f, src: src}
}

// resolve returns the field's value, resolving and caching it on first
// access. cached reports whether the value was served from the slot
// without consulting the source. A validation failure leaves the slot
// empty, so the next access retries from scratch.
func (r *fieldResolver) resolve() (value any, cached bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != stateEmpty {
		return r.value, true, nil
	}

	var candidate any
	if raw, ok := r.src.Lookup(r.field.LookupKey()); ok {
		candidate = raw
	} else {
		candidate = r.field.EffectiveDefault()
	}

	v, verr := validate.Field(r.field.Name, candidate, r.field.Rule)
	if verr != nil {
		return nil, false, verr
	}

	r.value = v
	r.state = stateResolved
	return v, false, nil
}

// override validates the assigned value against the field's rule and
// installs it in the slot. An invalid value is rejected and the previous
// slot state is preserved. The write happens under the slot lock, so a
// resolution racing with the override can never clobber it afterwards.
func (r *fieldResolver) override(value any) error {
	v, err := validate.Field(r.field.Name, value, r.field.Rule)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.value = v
	r.state = stateOverridden
	r.mu.Unlock()
	return nil
}

// invalidate clears a resolved slot so the next access re-resolves from
// the source. Overridden slots are explicit caller state and are kept.
func (r *fieldResolver) invalidate() {
	r.mu.Lock()
	if r.state == stateResolved {
		r.state = stateEmpty
		r.value = nil
	}
	r.mu.Unlock()
}

// overridden reports whether the slot holds an explicit override.
func (r *fieldResolver) overridden() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state == stateOverridden
}
