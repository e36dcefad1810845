package container

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/satyamsoni2211/lazy-env-configurator/pkg/schema"
	"github.com/satyamsoni2211/lazy-env-configurator/pkg/source"
	"github.com/satyamsoni2211/lazy-env-configurator/pkg/telemetry/metrics"
	"github.com/satyamsoni2211/lazy-env-configurator/pkg/validate"
)

// Container exposes a schema's fields as lazily-resolved, validated,
// cached values.
type Container struct {
	name      string
	schema    *schema.Schema
	src       *source.Source
	logger    *slog.Logger
	collector *metrics.Collector
	resolvers map[string]*fieldResolver
}

// New constructs a container from a schema.
//
// The sequence follows the factory contract: check the schema definition,
// load the overlay file and apply the containment policy, install one
// resolver per declared field, then eagerly validate every field if the
// schema asks for it. A definition error, an unreadable overlay file, or
// any eager-validation failure aborts construction; eager failures across
// fields are aggregated into one *validate.Errors.
//
// A nil schema is legal and yields a container managing no fields.
func New(s *schema.Schema, opts ...Option) (*Container, error) {
	if s == nil {
		s = &schema.Schema{}
	}
	if err := s.Check(); err != nil {
		return nil, err
	}

	o := newOptions(opts)

	src, err := source.New(source.Config{
		Path:      s.DotEnvPath,
		Propagate: s.Propagate,
		Environ:   o.environ,
		Setenv:    o.setenv,
		Logger:    o.logger,
	})
	if err != nil {
		return nil, err
	}

	c := &Container{
		name:      o.name,
		schema:    s,
		src:       src,
		logger:    o.logger,
		collector: o.collector,
		resolvers: make(map[string]*fieldResolver, len(s.Fields)),
	}
	for _, f := range s.Fields {
		c.resolvers[f.Name] = newFieldResolver(f, src)
	}
	c.collector.SetFieldCount(c.name, len(s.Fields))

	if s.EagerValidate {
		if _, err := c.resolveAll(); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Get resolves and returns the field's value. The first access consults
// the source and validates; later accesses are served from the cache.
// Accessing a name the schema does not declare returns an
// *UnknownFieldError wrapping ErrUnknownField.
func (c *Container) Get(name string) (any, error) {
	r, ok := c.resolvers[name]
	if !ok {
		return nil, &UnknownFieldError{Container: c.name, Field: name}
	}

	v, cached, err := r.resolve()
	if cached {
		c.collector.RecordCacheHit(c.name)
		return v, nil
	}
	c.collector.RecordResolution(c.name, outcomeOf(err))
	if err != nil {
		return nil, err
	}
	return v, nil
}

// MustGet is Get panicking on error. Use it only where the field is known
// to resolve, such as after eager validation.
func (c *Container) MustGet(name string) any {
	v, err := c.Get(name)
	if err != nil {
		panic(fmt.Sprintf("container %q: %v", c.name, err))
	}
	return v
}

// GetString returns the field as a string.
func (c *Container) GetString(name string) (string, error) {
	v, err := c.Get(name)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeMismatchError{Field: name, Want: "string", Got: v}
	}
	return s, nil
}

// GetInt returns the field as an int.
func (c *Container) GetInt(name string) (int, error) {
	v, err := c.Get(name)
	if err != nil {
		return 0, err
	}
	n, ok := v.(int)
	if !ok {
		return 0, &TypeMismatchError{Field: name, Want: "int", Got: v}
	}
	return n, nil
}

// GetFloat returns the field as a float64.
func (c *Container) GetFloat(name string) (float64, error) {
	v, err := c.Get(name)
	if err != nil {
		return 0, err
	}
	f, ok := v.(float64)
	if !ok {
		return 0, &TypeMismatchError{Field: name, Want: "float64", Got: v}
	}
	return f, nil
}

// GetBool returns the field as a bool.
func (c *Container) GetBool(name string) (bool, error) {
	v, err := c.Get(name)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, &TypeMismatchError{Field: name, Want: "bool", Got: v}
	}
	return b, nil
}

// GetDuration returns the field as a time.Duration.
func (c *Container) GetDuration(name string) (time.Duration, error) {
	v, err := c.Get(name)
	if err != nil {
		return 0, err
	}
	d, ok := v.(time.Duration)
	if !ok {
		return 0, &TypeMismatchError{Field: name, Want: "duration", Got: v}
	}
	return d, nil
}

// GetURL returns the field as a *url.URL.
func (c *Container) GetURL(name string) (*url.URL, error) {
	v, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	u, ok := v.(*url.URL)
	if !ok {
		return nil, &TypeMismatchError{Field: name, Want: "url", Got: v}
	}
	return u, nil
}

// Set installs an explicit override for the field. The value is validated
// against the field's rule first; a rejected value leaves the previous
// state untouched. After a successful Set, every read returns the
// override regardless of source state, until the next Set.
func (c *Container) Set(name string, value any) error {
	r, ok := c.resolvers[name]
	if !ok {
		return &UnknownFieldError{Container: c.name, Field: name}
	}
	if err := r.override(value); err != nil {
		return err
	}
	c.collector.RecordOverride(c.name)
	return nil
}

// IsOverridden reports whether the field currently holds an explicit
// override installed by Set.
func (c *Container) IsOverridden(name string) bool {
	r, ok := c.resolvers[name]
	return ok && r.overridden()
}

// Has reports whether the schema declares the field.
func (c *Container) Has(name string) bool {
	_, ok := c.resolvers[name]
	return ok
}

// FieldNames returns the declared field names in declaration order.
func (c *Container) FieldNames() []string {
	return c.schema.FieldNames()
}

// Warnings returns the source diagnostics recorded so far, such as a
// missing contained overlay file.
func (c *Container) Warnings() []source.Warning {
	return c.src.Warnings()
}

// ResolveAll resolves every declared field in declaration order and
// returns the values by name. Failures across fields are aggregated into
// a single *validate.Errors; fields that resolved stay cached.
func (c *Container) ResolveAll() (map[string]any, error) {
	return c.resolveAll()
}

func (c *Container) resolveAll() (map[string]any, error) {
	values := make(map[string]any, len(c.schema.Fields))
	var failed []*validate.Error

	for _, f := range c.schema.Fields {
		v, err := c.Get(f.Name)
		if err != nil {
			var ve *validate.Error
			if errors.As(err, &ve) {
				failed = append(failed, ve)
				continue
			}
			return nil, err
		}
		values[f.Name] = v
	}

	if len(failed) > 0 {
		return nil, &validate.Errors{Errors: failed}
	}
	return values, nil
}

// Reload re-reads the overlay file and clears every cached value that was
// not explicitly overridden, so the next access of each field re-resolves
// against the fresh source. Overrides survive a reload.
func (c *Container) Reload() error {
	if err := c.src.Reload(); err != nil {
		return err
	}
	for _, r := range c.resolvers {
		r.invalidate()
	}
	c.logger.Info("container reloaded", "container", c.name, "path", c.src.Path())
	return nil
}

// Watch blocks watching the overlay file and reloads the container after
// each debounced change, until the context is cancelled. It fails
// immediately when the schema declares no overlay file.
func (c *Container) Watch(ctx context.Context) error {
	w, err := source.NewWatcher(c.src.Path(), source.DefaultDebounceInterval, c.logger)
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()
	return w.Watch(ctx, c.Reload)
}

// outcomeOf maps a resolution result to a metrics outcome label.
func outcomeOf(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}
	switch {
	case validate.IsMissingRequired(err):
		return metrics.OutcomeMissingRequired
	case validate.IsTypeCoercion(err):
		return metrics.OutcomeTypeCoercion
	case validate.IsConstraint(err):
		return metrics.OutcomeConstraint
	}
	return "error"
}
