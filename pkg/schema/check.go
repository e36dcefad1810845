package schema

import (
	"fmt"
	"net/url"
	"regexp"
	"time"
)

// Check validates the schema definition and returns a *DefinitionError
// collecting every problem found, or nil if the schema is well formed.
//
// Check is concerned with the declaration only. Whether the overlay file
// exists or the environment holds acceptable values is decided later, when
// the container resolves fields.
func (s *Schema) Check() error {
	var errs []FieldError

	seen := make(map[string]int, len(s.Fields))
	for i := range s.Fields {
		f := &s.Fields[i]

		if f.Name == "" {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("fields[%d]", i),
				Message: "field name must not be empty",
			})
			continue
		}
		if prev, dup := seen[f.Name]; dup {
			errs = append(errs, FieldError{
				Field:   f.Name,
				Message: fmt.Sprintf("duplicate field name (first declared at index %d)", prev),
			})
			continue
		}
		seen[f.Name] = i

		errs = append(errs, checkRule(f)...)
	}

	if len(errs) > 0 {
		return &DefinitionError{Errors: errs}
	}
	return nil
}

// checkRule validates one field's rule for internal consistency and
// constraint/type compatibility.
func checkRule(f *Field) []FieldError {
	r := f.Rule
	if r == nil {
		return nil
	}

	var errs []FieldError

	t := r.EffectiveType()
	if !t.Known() {
		errs = append(errs, FieldError{
			Field:   f.Name,
			Message: fmt.Sprintf("unknown type %q", r.Type),
		})
		return errs
	}

	if r.HasNumericConstraints() && !t.IsNumeric() {
		errs = append(errs, FieldError{
			Field:   f.Name,
			Message: fmt.Sprintf("numeric constraints (gt/ge/lt/le/multiple_of) are not valid for type %q", t),
		})
	}
	if r.HasTextConstraints() && !t.IsText() {
		errs = append(errs, FieldError{
			Field:   f.Name,
			Message: fmt.Sprintf("text constraints (min_length/max_length/pattern) are not valid for type %q", t),
		})
	}

	if r.MultipleOf != nil && *r.MultipleOf <= 0 {
		errs = append(errs, FieldError{
			Field:   f.Name,
			Message: "multiple_of must be greater than zero",
		})
	}
	if r.MinLength != nil && *r.MinLength < 0 {
		errs = append(errs, FieldError{
			Field:   f.Name,
			Message: "min_length must not be negative",
		})
	}
	if r.MaxLength != nil && *r.MaxLength < 0 {
		errs = append(errs, FieldError{
			Field:   f.Name,
			Message: "max_length must not be negative",
		})
	}
	if r.MinLength != nil && r.MaxLength != nil && *r.MinLength > *r.MaxLength {
		errs = append(errs, FieldError{
			Field:   f.Name,
			Message: "min_length must not exceed max_length",
		})
	}

	if r.Pattern != "" {
		if _, err := regexp.Compile(r.Pattern); err != nil {
			errs = append(errs, FieldError{
				Field:   f.Name,
				Message: fmt.Sprintf("invalid pattern: %v", err),
			})
		}
	}

	// String defaults go through coercion at resolution time like any
	// sourced value; only already-typed defaults can be checked here.
	if def := f.EffectiveDefault(); def != nil {
		if _, isString := def.(string); !isString && !defaultAssignable(def, t) {
			errs = append(errs, FieldError{
				Field:   f.Name,
				Message: fmt.Sprintf("default of type %T is not assignable to type %q", def, t),
			})
		}
	}

	return errs
}

// defaultAssignable reports whether a non-string default value has a Go
// type the target type accepts.
func defaultAssignable(def any, t TypeTag) bool {
	switch t {
	case TypeString:
		return false
	case TypeInt:
		switch v := def.(type) {
		case int, int64:
			return true
		case float64:
			return v == float64(int(v))
		}
	case TypeFloat:
		switch def.(type) {
		case float64, int, int64:
			return true
		}
	case TypeBool:
		_, ok := def.(bool)
		return ok
	case TypeDuration:
		_, ok := def.(time.Duration)
		return ok
	case TypeURL:
		_, ok := def.(*url.URL)
		return ok
	}
	return false
}
