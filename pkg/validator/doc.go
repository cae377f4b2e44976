// Package validator provides a set of stateless field validators that check
// whether a single scalar input conforms to a named type or format rule.
//
// Every validator is a pure function taking the raw value and, where the rule
// is tunable, an options struct. The zero value of each options struct means
// "no constraints" and applies the documented defaults. A validator returns a
// plain boolean verdict: malformed or out-of-range input is reported as false,
// never as an error or a panic.
//
// # Architecture
//
// Each source file groups validators of one family (`numeric.go`,
// `string.go`, `choice.go`, `format.go`). There is no package-level mutable
// state; regular expressions are compiled once at init and only read
// afterwards, so every function is safe for concurrent use without any setup
// or teardown.
//
// Validators that work on the textual form of the input coerce it with
// github.com/spf13/cast: integers become decimal strings and floats use the
// shortest round-trip decimal notation (999.99 becomes "999.99", 1e11 becomes
// "100000000000"). Values without a textual form (slices, maps, structs) never
// pass.
//
// # Usage
//
//	validator.Int("12345", validator.IntOptions{MaxLen: 11})            // true
//	validator.Float(999.99, validator.FloatOptions{MaxLen: [2]int{10, 2}}) // true
//	validator.Username("john.doe", validator.UsernameOptions{MinLen: 2, MaxLen: 50})
//	validator.Enum("b", validator.EnumOptions[string]{Values: []string{"a", "b"}})
//	validator.Email("user@test.com")
//
// When the rule is only known at runtime (configuration files, form schemas),
// use Validate with a Kind and the unified Constraints struct:
//
//	ok, err := validator.Validate(validator.KindFloat, "12.5", validator.Constraints{MaxLen: 5, Decimals: 2})
//
// Validate returns an error only for an unknown Kind, which is a programming
// error rather than a verdict.
//
// # Shape checks
//
// Datetime confirms the `YYYY-MM-DD HH:MM:SS` layout only. It does not check
// calendar validity: "0000-00-00 00:00:00" and "2024-13-99 99:99:99" pass.
package validator
