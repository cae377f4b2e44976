package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldcheck/pkg/checkfile"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

// errInvalid signals a false verdict; main maps it to exit code 1.
var errInvalid = errors.New("validation failed")

type rootOptions struct {
	envFiles []string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "fieldcheck",
		Short:         "Validate field values against type and format rules",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", nil, "env files to load before reading configuration")

	root.AddCommand(newCheckCmd(opts), newRunCmd(opts), newKindsCmd())
	return root
}

// setup loads configuration and returns a logger writing to the command's stderr
// together with a context carrying a fresh run id.
func setup(cmd *cobra.Command, opts *rootOptions) (context.Context, *slog.Logger, error) {
	cfg, err := loadConfig(opts.envFiles)
	if err != nil {
		return nil, nil, err
	}
	log, err := newLogger(cfg, logger.WithOutput(cmd.ErrOrStderr()))
	if err != nil {
		return nil, nil, err
	}
	ctx := logger.WithRunID(cmd.Context(), uuid.NewString())
	return ctx, log, nil
}

func newCheckCmd(root *rootOptions) *cobra.Command {
	var c validator.Constraints

	cmd := &cobra.Command{
		Use:   "check <kind> <value>",
		Short: "Validate a single value",
		Long: `Validate a single value against a rule. Kinds: int, float, bool, string,
username, enum, datetime, email. The value is always passed as text, so the
bool kind never matches from the command line.`,
		Example: `  fieldcheck check float 999.99 --max-len 10 --decimals 2
  fieldcheck check enum pro --values free,pro`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, log, err := setup(cmd, root)
			if err != nil {
				return err
			}

			kind, err := validator.ParseKind(args[0])
			if err != nil {
				return err
			}

			ok, err := validator.Validate(kind, args[1], c)
			if err != nil {
				return err
			}
			log.DebugContext(ctx, "checked value", logger.Kind(kind.String()), logger.Verdict(ok))

			fmt.Fprintln(cmd.OutOrStdout(), ok)
			if !ok {
				return errInvalid
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&c.MaxLen, "max-len", 0, "maximum length (float: overall length)")
	flags.IntVar(&c.MinLen, "min-len", 0, "minimum length (username)")
	flags.IntVar(&c.Decimals, "decimals", 0, "decimal places (float)")
	flags.StringSliceVar(&c.Values, "values", nil, "allowed values (enum)")
	return cmd
}

func newRunCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <file.yaml>",
		Short: "Evaluate every check in a YAML check file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, log, err := setup(cmd, root)
			if err != nil {
				return err
			}

			checks, err := checkfile.Load(args[0])
			if err != nil {
				return err
			}

			results, err := checkfile.NewRunner(log).Run(ctx, checks)
			if err != nil {
				return err
			}

			summary := checkfile.Summarize(results)
			printSummary(cmd.OutOrStdout(), results, summary)
			log.InfoContext(ctx, "check file evaluated",
				slog.String("file", args[0]),
				slog.Int("total", summary.Total),
				slog.Int("passed", summary.Passed),
			)
			if !summary.OK() {
				return errInvalid
			}
			return nil
		},
	}
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List supported validation kinds",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, k := range validator.Kinds() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
		},
	}
}

func printSummary(w io.Writer, results []checkfile.Result, s checkfile.Summary) {
	for _, r := range results {
		status := "ok"
		if !r.Valid {
			status = "FAIL"
		}
		fmt.Fprintf(w, "%-4s  %-8s  %s\n", status, r.Kind, r.Field)
	}
	fmt.Fprintf(w, "%d/%d passed", s.Passed, s.Total)
	if !s.OK() {
		fmt.Fprintf(w, " (failed: %s)", strings.Join(s.Failed, ", "))
	}
	fmt.Fprintln(w)
}
