package schema

// TypeTag identifies the target type a raw environment string is coerced
// into during validation.
type TypeTag string

const (
	// TypeString passes the raw value through unchanged.
	TypeString TypeTag = "string"
	// TypeInt coerces the raw value with strconv.ParseInt semantics.
	TypeInt TypeTag = "int"
	// TypeFloat coerces the raw value into a float64.
	TypeFloat TypeTag = "float"
	// TypeBool coerces the raw value with strconv.ParseBool semantics.
	TypeBool TypeTag = "bool"
	// TypeDuration coerces the raw value with time.ParseDuration.
	TypeDuration TypeTag = "duration"
	// TypeURL parses the raw value as an absolute URL.
	TypeURL TypeTag = "url"
)

// Field declares one managed environment variable.
type Field struct {
	// Name is the attribute exposed on the container and, unless the Rule
	// carries an Alias, the environment variable consulted for the value.
	Name string

	// Default is used as the raw candidate when the source has no value.
	// A string default goes through coercion like a sourced value; any
	// other type is taken as an already-typed value.
	Default any

	// Rule is the optional validation rule. A nil Rule means the field is
	// an optional string: the value passes through unchanged.
	Rule *Rule
}

// Schema describes a container: the fields it manages and the policy for
// sourcing their values.
type Schema struct {
	// Fields is the ordered list of managed variables. Names must be
	// unique and non-empty.
	Fields []Field

	// DotEnvPath is the optional .env overlay file loaded once at
	// container construction. Empty means no overlay.
	DotEnvPath string

	// Propagate controls containment. When false (the default) overlay
	// values stay private to the container. When true, every overlay key
	// is written into the process environment at construction time;
	// keys already set externally keep their external value.
	Propagate bool

	// EagerValidate resolves and validates every field at construction
	// time instead of on first access. Any failure aborts construction
	// as a whole.
	EagerValidate bool
}

// Contained reports whether overlay values stay private to the container.
// This is the inverse of Propagate and exists for readability at call
// sites that reason about containment.
func (s *Schema) Contained() bool {
	return !s.Propagate
}

// FieldNames returns the declared field names in declaration order.
func (s *Schema) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}
	return names
}

// LookupKey returns the environment key consulted for the field: the
// Rule's Alias when set, the field name otherwise.
func (f *Field) LookupKey() string {
	if f.Rule != nil && f.Rule.Alias != "" {
		return f.Rule.Alias
	}
	return f.Name
}

// EffectiveDefault returns the default used when the source has no value
// for the field. A default declared on the Rule overrides the field-level
// default.
func (f *Field) EffectiveDefault() any {
	if f.Rule != nil && f.Rule.Default != nil {
		return f.Rule.Default
	}
	return f.Default
}
