// Package checkfile evaluates a YAML document of field checks with the
// validators from pkg/validator.
//
// A check file looks like:
//
//	checks:
//	  - field: price
//	    kind: float
//	    value: 999.99
//	    max_len: [10, 2]
//	  - field: login
//	    kind: username
//	    value: john.doe
//	    min_len: 2
//	    max_len: 50
//	  - field: plan
//	    kind: enum
//	    value: pro
//	    values: [free, pro]
//
// `max_len` is a scalar for int, string and username checks and may be an
// `[overall, decimals]` pair for float checks. Values keep their YAML type, so
// `value: true` is a bool while `value: "true"` is a string.
//
// The package only orchestrates: each check produces one Result in input
// order and the verdicts come straight from the validators.
package checkfile
