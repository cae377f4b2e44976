package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/logger"
)

type fileKey struct{}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	log.Debug("hidden")
	assert.Empty(t, buf.String(), "debug is below the default level")

	log.Info("visible", logger.Field("email"))
	rec := decode(t, &buf)
	assert.Equal(t, "visible", rec["msg"])
	assert.Equal(t, "email", rec["field"])
}

func TestNew_TextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatText))
	log.Info("hello", logger.Kind("int"))

	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "kind=int")
}

func TestWithFormat_Invalid(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		logger.New(logger.WithFormat("xml"))
	})
}

func TestWithEnvironment(t *testing.T) {
	t.Parallel()

	t.Run("production uses json at info", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithEnvironment("prod", "fieldcheck"), logger.WithOutput(&buf))

		log.Debug("hidden")
		assert.Empty(t, buf.String())

		log.Info("shown")
		rec := decode(t, &buf)
		assert.Equal(t, "fieldcheck", rec["service"])
		assert.Equal(t, logger.EnvProduction, rec["env"])
	})

	t.Run("unknown falls back to development", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithEnvironment("local", ""), logger.WithOutput(&buf))

		log.Debug("shown")
		assert.Contains(t, buf.String(), "env="+logger.EnvDevelopment)
		assert.NotContains(t, buf.String(), "service=")
	})
}

func TestWithContextValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithContextValue("file", fileKey{}),
	)

	ctx := context.WithValue(context.Background(), fileKey{}, "checks.yaml")
	log.InfoContext(ctx, "with file")
	rec := decode(t, &buf)
	assert.Equal(t, "checks.yaml", rec["file"])

	buf.Reset()
	log.InfoContext(context.Background(), "without file")
	rec = decode(t, &buf)
	_, ok := rec["file"]
	assert.False(t, ok)
}

func TestWithRunID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	ctx := logger.WithRunID(context.Background(), "run-1")
	id, ok := logger.RunIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "run-1", id)

	log.InfoContext(ctx, "with run")
	rec := decode(t, &buf)
	assert.Equal(t, "run-1", rec["run_id"], "run id is injected without any option")

	buf.Reset()
	log.InfoContext(context.Background(), "without run")
	rec = decode(t, &buf)
	_, ok = rec["run_id"]
	assert.False(t, ok)

	buf.Reset()
	log.InfoContext(logger.WithRunID(context.Background(), ""), "empty run")
	rec = decode(t, &buf)
	_, ok = rec["run_id"]
	assert.False(t, ok, "empty run id is skipped")
}

func TestNewLogHandlerDecorator_NilContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), nil)
	require.NoError(t, h.Handle(nil, slog.Record{Message: "no ctx"}))
	assert.Contains(t, buf.String(), `"msg":"no ctx"`)
}

func TestWithAttr_PreservedByWith(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithAttr(logger.Component("checkfile")),
	)

	ctx := logger.WithRunID(context.Background(), "run-2")
	log.With(logger.Field("age")).WithGroup("result").InfoContext(ctx, "grouped", logger.Verdict(true))

	out := buf.String()
	assert.True(t, strings.Contains(out, `"component":"checkfile"`))
	assert.True(t, strings.Contains(out, `"field":"age"`))
	assert.True(t, strings.Contains(out, `"valid":true`))
	assert.True(t, strings.Contains(out, `"run_id":"run-2"`))
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: " warn ", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "loud", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := logger.ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := logger.ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, logger.FormatJSON, f)

	_, err = logger.ParseFormat("yaml")
	require.Error(t, err)
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	assert.Equal(t, "error", logger.Error(errors.New("boom")).Key)
	assert.Equal(t, "kind", logger.Kind("email").Key)
	assert.Equal(t, "valid", logger.Verdict(false).Key)
}
