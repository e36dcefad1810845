package schema

import (
	"regexp"
	"sync"
)

// Rule declares the validation applied to a field's raw value.
//
// Numeric constraints (GT, GE, LT, LE, MultipleOf) apply only to int and
// float fields. Text constraints (MinLength, MaxLength,
// Pattern) apply only to string and url fields. Declaring a constraint on
// an incompatible type is a definition error reported by Schema.Check,
// never a runtime validation failure.
type Rule struct {
	// Type is the target type the raw value is coerced into. An empty
	// tag is normalized to TypeString.
	Type TypeTag `yaml:"type"`

	// Required rejects a field that has no source value and no default.
	Required bool `yaml:"required"`

	// Alias is the environment key consulted instead of the field name.
	// The field name remains the attribute exposed on the container.
	Alias string `yaml:"alias"`

	// Default overrides the field-level default when non-nil.
	Default any `yaml:"default"`

	// Numeric constraints, checked in this order after coercion.
	GT         *float64 `yaml:"gt"`
	GE         *float64 `yaml:"ge"`
	LT         *float64 `yaml:"lt"`
	LE         *float64 `yaml:"le"`
	MultipleOf *float64 `yaml:"multiple_of"`

	// Text constraints, checked after the numeric group.
	MinLength *int   `yaml:"min_length"`
	MaxLength *int   `yaml:"max_length"`
	Pattern   string `yaml:"pattern"`

	patternOnce sync.Once
	patternRe   *regexp.Regexp
}

// CompiledPattern returns the compiled Pattern regexp, compiling it on
// first use and caching it for every later validation. It returns nil for
// an empty or invalid pattern; Schema.Check rejects invalid patterns at
// definition time.
func (r *Rule) CompiledPattern() *regexp.Regexp {
	if r == nil || r.Pattern == "" {
		return nil
	}
	r.patternOnce.Do(func() {
		r.patternRe, _ = regexp.Compile(r.Pattern)
	})
	return r.patternRe
}

// Required returns a rule requiring a value of the given type with no
// further constraints.
func Required(t TypeTag) *Rule {
	return &Rule{Type: t, Required: true}
}

// Typed returns an optional rule coercing to the given type.
func Typed(t TypeTag) *Rule {
	return &Rule{Type: t}
}

// FloatPtr returns a pointer to v, for use in Rule constraint literals.
func FloatPtr(v float64) *float64 { return &v }

// IntPtr returns a pointer to v, for use in Rule constraint literals.
func IntPtr(v int) *int { return &v }

// EffectiveType returns the rule's type tag with the empty tag normalized
// to TypeString.
func (r *Rule) EffectiveType() TypeTag {
	if r == nil || r.Type == "" {
		return TypeString
	}
	return r.Type
}

// HasNumericConstraints reports whether any numeric constraint is set.
func (r *Rule) HasNumericConstraints() bool {
	return r.GT != nil || r.GE != nil || r.LT != nil || r.LE != nil || r.MultipleOf != nil
}

// HasTextConstraints reports whether any text constraint is set.
func (r *Rule) HasTextConstraints() bool {
	return r.MinLength != nil || r.MaxLength != nil || r.Pattern != ""
}

// IsNumeric reports whether the tag names a type compatible with numeric
// constraints. Durations are excluded: a bare number has no unambiguous
// unit to compare a duration against.
func (t TypeTag) IsNumeric() bool {
	switch t {
	case TypeInt, TypeFloat:
		return true
	}
	return false
}

// IsText reports whether the tag names a type compatible with text
// constraints.
func (t TypeTag) IsText() bool {
	switch t {
	case TypeString, TypeURL:
		return true
	}
	return false
}

// Known reports whether the tag is one of the supported target types.
func (t TypeTag) Known() bool {
	switch t {
	case TypeString, TypeInt, TypeFloat, TypeBool, TypeDuration, TypeURL:
		return true
	}
	return false
}
