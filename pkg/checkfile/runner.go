package checkfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

// Decode reads a check file from r.
func Decode(r io.Reader) ([]Check, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Join(ErrDecode, err)
	}
	return f.Checks, nil
}

// Load reads a check file from disk.
func Load(path string) ([]Check, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("checkfile: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Runner evaluates checks.
type Runner struct {
	log *slog.Logger
}

// NewRunner creates a Runner. A nil logger discards output.
func NewRunner(log *slog.Logger) *Runner {
	if log == nil {
		log = logger.Discard()
	}
	return &Runner{log: log.With(logger.Component("checkfile"))}
}

// Run validates every check and returns the results in input order.
// All checks are resolved before any is evaluated, so a file with an unknown
// kind yields no results. Run stops early when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, checks []Check) ([]Result, error) {
	kinds := make([]validator.Kind, len(checks))
	for i, c := range checks {
		if c.Field == "" {
			return nil, fmt.Errorf("%w: check %d has no field name", ErrInvalidCheck, i)
		}
		k, err := validator.ParseKind(c.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %w", ErrInvalidCheck, c.Field, err)
		}
		kinds[i] = k
	}

	results := make([]Result, 0, len(checks))
	for i, c := range checks {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		ok, err := validator.Validate(kinds[i], c.Value, c.Constraints())
		if err != nil {
			return results, fmt.Errorf("%w: field %q: %w", ErrInvalidCheck, c.Field, err)
		}

		attrs := []any{logger.Field(c.Field), logger.Kind(kinds[i].String()), logger.Verdict(ok)}
		if ok {
			r.log.DebugContext(ctx, "check passed", attrs...)
		} else {
			r.log.WarnContext(ctx, "check failed", attrs...)
		}

		results = append(results, Result{Field: c.Field, Kind: kinds[i], Valid: ok})
	}
	return results, nil
}
