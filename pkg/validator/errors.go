package validator

import "errors"

// ErrUnknownKind is returned by ParseKind and Validate for a rule name that
// has no validator.
var ErrUnknownKind = errors.New("unknown validation kind")
