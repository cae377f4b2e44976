package validator

import (
	"unicode/utf8"

	"github.com/spf13/cast"
)

// textOf returns the string form of a raw input value.
// The second result is false when the value has no textual representation.
func textOf(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case nil:
		return "", true
	}
	s, err := cast.ToStringE(value)
	if err != nil {
		return "", false
	}
	return s, true
}

// runeLen counts Unicode code points, not bytes.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// leadingDigits returns the number of ASCII decimal digits at the start of s.
func leadingDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}
