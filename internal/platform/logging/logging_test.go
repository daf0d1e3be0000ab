package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/m-mizutani/masq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, b []byte) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(b), &entry))

	return entry
}

func TestFromContext(t *testing.T) {
	//nolint:staticcheck // nil context is handled explicitly
	assert.Equal(t, defaultLogger, FromContext(nil))
	assert.Equal(t, defaultLogger, FromContext(context.Background()))

	custom := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.Equal(t, custom, FromContext(WithContext(context.Background(), custom)))
}

func TestFromContextOr(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	custom := slog.New(slog.NewJSONHandler(io.Discard, nil))

	assert.Equal(t, fallback, FromContextOr(context.Background(), fallback))
	assert.Equal(t, custom, FromContextOr(WithContext(context.Background(), custom), fallback))
}

func TestSetDefault(t *testing.T) {
	original := defaultLogger
	t.Cleanup(func() { SetDefault(original) })

	custom := slog.New(slog.NewTextHandler(io.Discard, nil))
	SetDefault(custom)

	assert.Equal(t, custom, FromContext(context.Background()))
	assert.Equal(t, custom, slog.Default())
}

func TestContextIDs(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	ctx = WithRequestID(ctx, "req-123")
	ctx = WithTraceID(ctx, "trace-456")
	ctx = WithCorrelationID(ctx, "corr-789")
	ctx = With(ctx, slog.String("operation", "todo.sync"))

	FromContext(ctx).Info("synced")

	entry := decodeLine(t, buf.Bytes())
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "trace-456", entry["trace_id"])
	assert.Equal(t, "corr-789", entry["correlation_id"])
	assert.Equal(t, "todo.sync", entry["operation"])
}

func TestNewWithWriter_JSONFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(&Config{Level: "info", Format: FormatJSON, Service: "portfolio", Version: "1.0.0"}, &buf)
	logger.Info("quote added", slog.String("id", "ym1"))
	logger.Debug("hidden")

	entry := decodeLine(t, buf.Bytes())
	assert.Equal(t, "quote added", entry["msg"])
	assert.Equal(t, "portfolio", entry["service_name"])
	assert.Equal(t, "1.0.0", entry["service_version"])
	assert.Equal(t, "ym1", entry["id"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewWithWriter_TextFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(&Config{Level: "debug", Format: FormatText, Service: "portfolio"}, &buf)
	logger.Debug("mirror saved")

	assert.Contains(t, buf.String(), "mirror saved")
	assert.Contains(t, buf.String(), "service_name=portfolio")
}

func TestNewWithWriter_PrettyFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(&Config{Level: "info", Format: FormatPretty, Service: "portfolio"}, &buf)
	logger.Info("pretty message", slog.String("password", "hunter2"))

	assert.Contains(t, buf.String(), "pretty message")
	assert.NotContains(t, buf.String(), "hunter2")
}

func TestNewWithWriter_PrettyTraceLevel(t *testing.T) {
	var traceBuf, debugBuf bytes.Buffer

	NewWithWriter(&Config{Level: "trace", Format: FormatPretty}, &traceBuf).Log(context.Background(), LevelTrace, "remote call")
	NewWithWriter(&Config{Level: "debug", Format: FormatPretty}, &debugBuf).Log(context.Background(), LevelTrace, "remote call")

	assert.Contains(t, traceBuf.String(), "remote call")
	assert.Empty(t, debugBuf.String())
}

func TestNewWithWriter_WithFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "portfolio.log")

	var buf bytes.Buffer
	cfg := &Config{
		Level:   "info",
		Format:  FormatText,
		Service: "portfolio",
		File: FileConfig{
			Enabled:    true,
			Path:       logFile,
			MaxSizeMB:  1,
			MaxBackups: 1,
			MaxAgeDays: 1,
		},
	}

	NewWithWriter(cfg, &buf).Info("todo created", slog.String("token", "abc"))

	assert.Contains(t, buf.String(), "todo created")
	require.FileExists(t, logFile)

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)

	entry := decodeLine(t, content)
	assert.Equal(t, "todo created", entry["msg"])
	assert.NotEqual(t, "abc", entry["token"])
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"trace":   LevelTrace,
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, want, parseLevel(input))
		})
	}
}

func TestSlogToCharmLevel(t *testing.T) {
	tests := []struct {
		input slog.Level
		want  log.Level
	}{
		{LevelTrace, log.DebugLevel},
		{slog.LevelDebug, log.DebugLevel},
		{slog.LevelInfo, log.InfoLevel},
		{slog.LevelWarn, log.WarnLevel},
		{slog.LevelError, log.ErrorLevel},
		{slog.Level(12), log.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, slogToCharmLevel(tt.input))
		})
	}
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { //nolint:gocritic // slog.Handler interface requires value
	return errors.New("disk full")
}

func TestMultiHandler(t *testing.T) {
	var infoBuf, errorBuf bytes.Buffer

	multi := NewMultiHandler(
		slog.NewJSONHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&errorBuf, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	assert.True(t, multi.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, multi.Enabled(context.Background(), slog.LevelDebug))

	logger := slog.New(multi).With(slog.String("component", "mirror")).WithGroup("todo")
	logger.Info("saved", slog.Int("count", 3))
	logger.Error("failed")

	assert.Contains(t, infoBuf.String(), "saved")
	assert.Contains(t, infoBuf.String(), `"component":"mirror"`)
	assert.Contains(t, infoBuf.String(), `"todo":{"count":3}`)
	assert.NotContains(t, errorBuf.String(), "saved")
	assert.Contains(t, errorBuf.String(), "failed")
}

func TestMultiHandler_JoinsErrors(t *testing.T) {
	var buf bytes.Buffer
	ok := slog.NewJSONHandler(&buf, nil)

	multi := NewMultiHandler(ok, failingHandler{Handler: ok})
	err := multi.Handle(context.Background(), slog.Record{Level: slog.LevelInfo, Message: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Contains(t, buf.String(), `"msg":"x"`)
}

func TestNewReplaceAttr(t *testing.T) {
	tests := []struct {
		field  string
		value  string
		redact bool
	}{
		{"password", "secret123", true},
		{"token", "my-token", true},
		{"api_key", "key-value", true},
		{"authorization", "Bearer abc123xyz", true},
		{"secret_config", "sensitive", true},
		{"header", "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.sig", true},
		{"title", "read 传习录", false},
		{"author", "王阳明", false},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{ReplaceAttr: NewReplaceAttr()}))

			logger.Info("test", slog.String(tt.field, tt.value))

			if tt.redact {
				assert.NotContains(t, buf.String(), tt.value)
				assert.Contains(t, buf.String(), tt.field)
			} else {
				assert.Contains(t, buf.String(), tt.value)
			}
		})
	}
}

func TestNewReplaceAttr_ExtraOptions(t *testing.T) {
	var buf bytes.Buffer
	replace := NewReplaceAttr(masq.WithFieldName("user_id"))
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{ReplaceAttr: replace}))

	logger.Info("test", slog.String("user_id", "u-42"))

	assert.NotContains(t, buf.String(), "u-42")
}
