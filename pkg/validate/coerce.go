package validate

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/satyamsoni2211/lazy-env-configurator/pkg/schema"
)

// coercer converts a raw string into the target type's value.
type coercer func(raw string) (any, error)

// coercers maps each target type to its string coercer. Registration is
// static: the supported type set is fixed by the schema package.
var coercers = map[schema.TypeTag]coercer{
	schema.TypeString:   coerceString,
	schema.TypeInt:      coerceInt,
	schema.TypeFloat:    coerceFloat,
	schema.TypeBool:     coerceBool,
	schema.TypeDuration: coerceDuration,
	schema.TypeURL:      coerceURL,
}

func coerceString(raw string) (any, error) {
	return raw, nil
}

func coerceInt(raw string) (any, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%q is not a valid integer", raw)
	}
	return int(n), nil
}

func coerceFloat(raw string) (any, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%q is not a valid number", raw)
	}
	return f, nil
}

func coerceBool(raw string) (any, error) {
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%q is not a valid boolean", raw)
	}
	return b, nil
}

func coerceDuration(raw string) (any, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return nil, fmt.Errorf("%q is not a valid duration", raw)
	}
	return d, nil
}

func coerceURL(raw string) (any, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%q is not a valid URL: %v", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%q is not an absolute URL", raw)
	}
	return u, nil
}

// coerceTyped accepts an already-typed candidate (a non-string default or
// an override value) and converts it to the target type's canonical Go
// representation.
func coerceTyped(value any, t schema.TypeTag) (any, error) {
	switch t {
	case schema.TypeString:
		if s, ok := value.(string); ok {
			return s, nil
		}
	case schema.TypeInt:
		switch v := value.(type) {
		case int:
			return v, nil
		case int64:
			return int(v), nil
		case float64:
			if v == float64(int(v)) {
				return int(v), nil
			}
		}
	case schema.TypeFloat:
		switch v := value.(type) {
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		case int64:
			return float64(v), nil
		}
	case schema.TypeBool:
		if b, ok := value.(bool); ok {
			return b, nil
		}
	case schema.TypeDuration:
		if d, ok := value.(time.Duration); ok {
			return d, nil
		}
	case schema.TypeURL:
		if u, ok := value.(*url.URL); ok {
			return u, nil
		}
	}
	return nil, fmt.Errorf("value of type %T is not assignable to %s", value, t)
}
