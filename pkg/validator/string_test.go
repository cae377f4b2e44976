package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  any
		maxLen int
		want   bool
	}{
		{name: "zero string", value: "0", maxLen: 11, want: true},
		{name: "match max length", value: "12345678901", maxLen: 11, want: true},
		{name: "over max length", value: "123456789012", maxLen: 11, want: false},
		{name: "string no options", value: "123456789012", want: true},
		{name: "int no options", value: 123456789012, want: true},
		{name: "int under max length", value: 1234567890, maxLen: 11, want: true},
		{name: "int max length", value: 12345678901, maxLen: 11, want: true},
		{name: "int over max length", value: 123456789012, maxLen: 11, want: false},
		{name: "whole float over max length", value: 123456789012.00, maxLen: 11, want: false},
		{name: "float at max length", value: 12345678.01, maxLen: 11, want: true},
		{name: "float over max length", value: 123456789.01, maxLen: 11, want: false},
		{name: "multibyte counted as runes", value: "héllo wörld", maxLen: 11, want: true},
		{name: "emoji counted as runes", value: "👍👍👍", maxLen: 3, want: true},
		{name: "empty string", value: "", maxLen: 1, want: true},
		{name: "map without bound", value: map[string]int{}, want: true},
		{name: "slice without bound", value: []int{1}, want: true},
		{name: "struct without bound", value: struct{}{}, want: true},
		{name: "nil without bound", value: nil, want: true},
		{name: "nil counts as empty", value: nil, maxLen: 1, want: true},
		{name: "map with bound has no text form", value: map[string]int{}, maxLen: 5, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.String(tt.value, validator.StringOptions{MaxLen: tt.maxLen}))
		})
	}
}

func TestUsername(t *testing.T) {
	t.Parallel()

	wide := validator.UsernameOptions{MinLen: 2, MaxLen: 50}

	tests := []struct {
		name  string
		value any
		opts  validator.UsernameOptions
		want  bool
	}{
		{name: "too short", value: "a", opts: wide, want: false},
		{name: "maximum", value: "abc", opts: validator.UsernameOptions{MinLen: 2, MaxLen: 3}, want: true},
		{name: "over maximum", value: "abcd", opts: validator.UsernameOptions{MinLen: 2, MaxLen: 3}, want: false},
		{name: "bad leading number", value: "9er", opts: wide, want: false},
		{name: "bad leading underscore", value: "_er", opts: wide, want: false},
		{name: "ok random string", value: "This__should-be--ok-now", opts: wide, want: true},
		{name: "fail random string", value: "This__should-be--ok-now&^%$£^**", opts: wide, want: false},
		{name: "two characters pass min length but fail pattern", value: "ab", opts: wide, want: false},
		{name: "periods and digits", value: "john.doe42", opts: wide, want: true},
		{name: "whitespace", value: "john doe", opts: wide, want: false},
		{name: "non-ascii letter", value: "zoë", opts: wide, want: false},
		{name: "under minimum", value: "abcd", opts: validator.UsernameOptions{MinLen: 5}, want: false},
		{name: "no options", value: "abc", want: true},
		{name: "non-string", value: 123, opts: wide, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.Username(tt.value, tt.opts))
		})
	}
}
