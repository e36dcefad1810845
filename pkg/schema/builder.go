package schema

// Builder provides a fluent API for assembling Schema instances.
type Builder struct {
	s Schema
}

// NewSchema creates a Builder for an empty schema with default policy:
// contained overlay, lazy validation, no .env file.
func NewSchema() *Builder {
	return &Builder{}
}

// WithField appends a field with no default.
func (b *Builder) WithField(name string, rule *Rule) *Builder {
	b.s.Fields = append(b.s.Fields, Field{Name: name, Rule: rule})
	return b
}

// WithFieldDefault appends a field with a default value.
func (b *Builder) WithFieldDefault(name string, def any, rule *Rule) *Builder {
	b.s.Fields = append(b.s.Fields, Field{Name: name, Default: def, Rule: rule})
	return b
}

// WithDotEnv sets the .env overlay file path.
func (b *Builder) WithDotEnv(path string) *Builder {
	b.s.DotEnvPath = path
	return b
}

// WithPropagation merges overlay keys into the process environment at
// construction time instead of keeping them private to the container.
func (b *Builder) WithPropagation() *Builder {
	b.s.Propagate = true
	return b
}

// WithEagerValidation validates every field at construction time.
func (b *Builder) WithEagerValidation() *Builder {
	b.s.EagerValidate = true
	return b
}

// Build returns the assembled Schema. The schema is not checked here;
// Check runs at container construction.
func (b *Builder) Build() *Schema {
	return &b.s
}
