// Package logger builds *slog.Logger instances from functional options and
// injects values carried by context.Context into every record.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler according to the
// configured Format and wraps it with a decorator that adds the run id stored
// by WithRunID and runs the registered ContextExtractor callbacks on each
// Handle call. Attribute helpers in attr.go
// keep key names consistent across the code base.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "fieldcheck"),
//	    logger.WithContextValue("file", fileKey{}),
//	)
//	ctx = logger.WithRunID(ctx, uuid.NewString())
//	log.InfoContext(ctx, "check failed", logger.Field("email"), logger.Kind("email"))
//
// Error returns an empty attribute for a nil error so it can be passed
// unconditionally.
package logger
