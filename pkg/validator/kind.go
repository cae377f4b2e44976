package validator

import (
	"fmt"
	"strings"
)

// Kind names a validation rule.
type Kind string

const (
	KindInt      Kind = "int"
	KindFloat    Kind = "float"
	KindBool     Kind = "bool"
	KindString   Kind = "string"
	KindUsername Kind = "username"
	KindEnum     Kind = "enum"
	KindDatetime Kind = "datetime"
	KindEmail    Kind = "email"
)

// Kinds returns every supported rule name in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindInt,
		KindFloat,
		KindBool,
		KindString,
		KindUsername,
		KindEnum,
		KindDatetime,
		KindEmail,
	}
}

// ParseKind resolves a case-insensitive rule name.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return k, nil
}

// Valid reports whether k names a supported rule.
func (k Kind) Valid() bool {
	switch k {
	case KindInt, KindFloat, KindBool, KindString, KindUsername, KindEnum, KindDatetime, KindEmail:
		return true
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}

// Constraints is the union of every validator's options, used when the rule
// is selected at runtime. Fields a rule does not read are ignored.
//
//   - int, string: MaxLen
//   - float: MaxLen is the overall length and Decimals the decimal places
//   - username: MinLen, MaxLen
//   - enum: Values, compared against the string form of the input
type Constraints struct {
	MaxLen   int
	MinLen   int
	Decimals int
	Values   []string
}

// Validate runs the validator named by kind. The error is non-nil only when
// kind is unknown; a failing value is reported as false.
func Validate(kind Kind, value any, c Constraints) (bool, error) {
	switch kind {
	case KindInt:
		return Int(value, IntOptions{MaxLen: c.MaxLen}), nil
	case KindFloat:
		return Float(value, FloatOptions{MaxLen: [2]int{c.MaxLen, c.Decimals}}), nil
	case KindBool:
		return Bool(value), nil
	case KindString:
		return String(value, StringOptions{MaxLen: c.MaxLen}), nil
	case KindUsername:
		return Username(value, UsernameOptions{MinLen: c.MinLen, MaxLen: c.MaxLen}), nil
	case KindEnum:
		s, ok := textOf(value)
		if !ok {
			return false, nil
		}
		return Enum(s, EnumOptions[string]{Values: c.Values}), nil
	case KindDatetime:
		return Datetime(value), nil
	case KindEmail:
		return Email(value), nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
}
