package validate

import (
	"fmt"
	"math"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/satyamsoni2211/lazy-env-configurator/pkg/schema"
)

// Field validates one raw candidate against a rule and returns the typed
// value.
//
// The raw candidate is nil when the source had no value and the field
// declares no default, a string when it came from the environment or a
// string default, and any other type when it is an already-typed default
// or override. A nil rule is the permissive pass-through: the candidate is
// returned unchanged, including an empty string.
func Field(name string, raw any, rule *schema.Rule) (any, error) {
	if rule == nil {
		return raw, nil
	}

	if raw == nil {
		if rule.Required {
			return nil, &Error{
				Field:   name,
				Kind:    KindMissingRequired,
				Message: "required field has no value and no default",
			}
		}
		return nil, nil
	}

	value, text, err := coerce(name, raw, rule.EffectiveType())
	if err != nil {
		return nil, err
	}

	if cerr := checkConstraints(name, value, text, rule); cerr != nil {
		return nil, cerr
	}
	return value, nil
}

// coerce converts the raw candidate into the target type. It also returns
// the textual form used by the text constraints.
func coerce(name string, raw any, t schema.TypeTag) (any, string, error) {
	if s, ok := raw.(string); ok {
		fn, known := coercers[t]
		if !known {
			return nil, "", &Error{
				Field:   name,
				Kind:    KindTypeCoercion,
				Message: fmt.Sprintf("no coercer registered for type %q", t),
			}
		}
		value, err := fn(s)
		if err != nil {
			return nil, "", &Error{Field: name, Kind: KindTypeCoercion, Message: err.Error()}
		}
		return value, s, nil
	}

	value, err := coerceTyped(raw, t)
	if err != nil {
		return nil, "", &Error{Field: name, Kind: KindTypeCoercion, Message: err.Error()}
	}
	switch v := value.(type) {
	case string:
		return value, v, nil
	case *url.URL:
		return value, v.String(), nil
	}
	return value, "", nil
}

// checkConstraints applies the rule's constraints in the fixed order
// gt, ge, lt, le, multiple_of, min_length, max_length, pattern. The first
// violation short-circuits the rest.
func checkConstraints(name string, value any, text string, rule *schema.Rule) error {
	num, isNum := asFloat(value)

	if rule.GT != nil && isNum && num <= *rule.GT {
		return constraintError(name, "gt", fmt.Sprintf("%v is not greater than %v", value, *rule.GT))
	}
	if rule.GE != nil && isNum && num < *rule.GE {
		return constraintError(name, "ge", fmt.Sprintf("%v is less than %v", value, *rule.GE))
	}
	if rule.LT != nil && isNum && num >= *rule.LT {
		return constraintError(name, "lt", fmt.Sprintf("%v is not less than %v", value, *rule.LT))
	}
	if rule.LE != nil && isNum && num > *rule.LE {
		return constraintError(name, "le", fmt.Sprintf("%v is greater than %v", value, *rule.LE))
	}
	if rule.MultipleOf != nil && isNum && !isMultipleOf(num, *rule.MultipleOf) {
		return constraintError(name, "multiple_of", fmt.Sprintf("%v is not a multiple of %v", value, *rule.MultipleOf))
	}

	if rule.MinLength != nil && utf8.RuneCountInString(text) < *rule.MinLength {
		return constraintError(name, "min_length", fmt.Sprintf("%q is shorter than %d characters", text, *rule.MinLength))
	}
	if rule.MaxLength != nil && utf8.RuneCountInString(text) > *rule.MaxLength {
		return constraintError(name, "max_length", fmt.Sprintf("%q is longer than %d characters", text, *rule.MaxLength))
	}
	if re := rule.CompiledPattern(); re != nil && !re.MatchString(text) {
		return constraintError(name, "pattern", fmt.Sprintf("%q does not match pattern %q", text, rule.Pattern))
	}

	return nil
}

func constraintError(name, constraint, message string) error {
	return &Error{Field: name, Kind: KindConstraint, Constraint: constraint, Message: message}
}

// asFloat extracts the numeric magnitude used by comparison constraints.
func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case float64:
		return v, true
	case time.Duration:
		return float64(v), true
	}
	return 0, false
}

// isMultipleOf checks divisibility with a small tolerance for float
// remainders.
func isMultipleOf(num, m float64) bool {
	rem := math.Abs(math.Mod(num, m))
	const eps = 1e-9
	return rem < eps || math.Abs(rem-math.Abs(m)) < eps
}
