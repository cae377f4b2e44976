package validator

import "slices"

// EnumOptions configures Enum.
type EnumOptions[T comparable] struct {
	// Values lists the accepted values. Duplicates are allowed.
	Values []T
}

// Bool reports whether value is a bool. No coercion is applied:
// "true", 1 and 0 all fail.
func Bool(value any) bool {
	_, ok := value.(bool)
	return ok
}

// Enum reports whether value equals one of opts.Values.
// An empty Values list matches nothing.
//
// When T is an interface type the dynamic values must be comparable.
func Enum[T comparable](value T, opts EnumOptions[T]) bool {
	return slices.Contains(opts.Values, value)
}
