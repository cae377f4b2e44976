package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Field records the checked field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Kind records the validation rule name under the key "kind".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Verdict records a validation result under the key "valid".
func Verdict(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
