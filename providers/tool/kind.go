package tool

import (
	"fmt"
	"strconv"
)

// Kind identifies one of the four primitive parameter kinds the coercion
// layer supports. Composite, optional, and union parameter types are out of
// scope; this is a deliberate simplification of the protocol, not an
// oversight.
type Kind string

const (
	KindInt    Kind = "int"
	KindString Kind = "str"
	KindBool   Kind = "bool"
	KindFloat  Kind = "float"
)

// Valid reports whether k is one of the four supported kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindInt, KindString, KindBool, KindFloat:
		return true
	}
	return false
}

// Coerce converts value to kind k. A value that already has the declared
// kind passes through unchanged; anything else goes through the kind's
// canonical conversion (strconv for strings, numeric narrowing for JSON
// numbers, which always arrive as float64). Conversions that cannot be
// performed return an error wrapping [ErrTypeCoercion].
//
// Note that a float coerced to int is truncated toward zero, matching the
// canonical integer constructor.
func (k Kind) Coerce(value any) (any, error) {
	switch k {
	case KindInt:
		switch v := value.(type) {
		case int:
			return v, nil
		case int64:
			return int(v), nil
		case float64:
			return int(v), nil
		case bool:
			if v {
				return 1, nil
			}
			return 0, nil
		case string:
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not an integer", ErrTypeCoercion, v)
			}
			return n, nil
		}

	case KindFloat:
		switch v := value.(type) {
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		case int64:
			return float64(v), nil
		case bool:
			if v {
				return 1.0, nil
			}
			return 0.0, nil
		case string:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not a number", ErrTypeCoercion, v)
			}
			return f, nil
		}

	case KindBool:
		switch v := value.(type) {
		case bool:
			return v, nil
		case string:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not a boolean", ErrTypeCoercion, v)
			}
			return b, nil
		case float64:
			return v != 0, nil
		case int:
			return v != 0, nil
		}

	case KindString:
		switch v := value.(type) {
		case string:
			return v, nil
		case float64:
			// Keep integral JSON numbers free of a trailing ".0".
			if v == float64(int64(v)) {
				return strconv.FormatInt(int64(v), 10), nil
			}
			return strconv.FormatFloat(v, 'f', -1, 64), nil
		case int:
			return strconv.Itoa(v), nil
		case bool:
			return strconv.FormatBool(v), nil
		}
	}

	return nil, fmt.Errorf("%w: cannot convert %T value %v to %s", ErrTypeCoercion, value, value, k)
}
