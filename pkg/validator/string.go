package validator

import "regexp"

// A letter followed by at least two letters, digits, hyphens, underscores or periods.
var usernameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_.\-]{2,}$`)

// StringOptions configures String.
type StringOptions struct {
	// MaxLen caps the length in runes. Zero means unbounded.
	MaxLen int
}

// UsernameOptions configures Username. Zero values disable the bound.
type UsernameOptions struct {
	MinLen int
	MaxLen int
}

// String reports whether the string form of value is at most MaxLen runes long.
// Without MaxLen every value passes, including ones with no textual form.
func String(value any, opts StringOptions) bool {
	if opts.MaxLen == 0 {
		return true
	}
	s, ok := textOf(value)
	if !ok {
		return false
	}
	return runeLen(s) <= opts.MaxLen
}

// Username checks length bounds first, then the character pattern: an ASCII
// letter followed by two or more of [A-Za-z0-9_.-]. Structurally valid
// usernames are therefore at least 3 characters long whatever MinLen says.
func Username(value any, opts UsernameOptions) bool {
	s, ok := textOf(value)
	if !ok {
		return false
	}

	length := runeLen(s)
	if opts.MaxLen != 0 && length > opts.MaxLen {
		return false
	}
	if opts.MinLen != 0 && length < opts.MinLen {
		return false
	}

	return usernameRegex.MatchString(s)
}
