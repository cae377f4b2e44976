package checkfile

import "errors"

var (
	// ErrDecode is returned when a check file is not valid YAML or has the wrong shape.
	ErrDecode = errors.New("checkfile: failed to decode")

	// ErrInvalidCheck is returned when a check names an unknown kind or misses its field name.
	ErrInvalidCheck = errors.New("checkfile: invalid check")

	// ErrInvalidLength is returned when max_len is neither an integer nor an integer pair.
	ErrInvalidLength = errors.New("checkfile: max_len must be an integer or a [length, decimals] pair")
)
