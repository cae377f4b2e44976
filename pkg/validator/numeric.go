package validator

// defaultFloatLength is the overall length used when FloatOptions.MaxLen[0] is unset.
const defaultFloatLength = 1

// IntOptions configures Int.
type IntOptions struct {
	// MaxLen caps the number of digits. Zero means unbounded.
	MaxLen int
}

// FloatOptions configures Float.
type FloatOptions struct {
	// MaxLen is the [overall length, decimal places] pair.
	// A zero overall length falls back to 1; zero decimal places forbids a fraction.
	MaxLen [2]int
}

// Int reports whether the string form of value consists only of ASCII digits.
// Signs, decimal points and surrounding whitespace are rejected.
// With a positive MaxLen the digit count must be in [1, MaxLen].
func Int(value any, opts IntOptions) bool {
	s, ok := textOf(value)
	if !ok {
		return false
	}

	n := leadingDigits(s)
	if n == 0 || n != len(s) {
		return false
	}
	if opts.MaxLen == 0 {
		return true
	}
	return n <= opts.MaxLen
}

// Float reports whether the string form of value is an unsigned decimal number
// of the form `<int>(.<frac>)?`.
//
// The integer part may have at most MaxLen[0]-MaxLen[1] digits and the
// fractional part at most MaxLen[1] digits. The fractional part is optional
// and may be empty after the point ("9." passes). A leading sign never passes.
//
// With zero options only single-digit integers pass.
func Float(value any, opts FloatOptions) bool {
	s, ok := textOf(value)
	if !ok {
		return false
	}

	overall, decimals := opts.MaxLen[0], opts.MaxLen[1]
	if overall == 0 {
		overall = defaultFloatLength
	}
	intCap := overall - decimals
	if intCap < 1 || decimals < 0 {
		return false
	}

	n := leadingDigits(s)
	if n == 0 || n > intCap {
		return false
	}

	rest := s[n:]
	if rest == "" {
		return true
	}
	if rest[0] != '.' {
		return false
	}

	frac := rest[1:]
	d := leadingDigits(frac)
	return d == len(frac) && d <= decimals
}
