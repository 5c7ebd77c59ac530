package logger_test

import (
	"bytes"
	"errors"
	"log"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/wanderlust/logger"
)

var (
	logLevelRegexp = regexp.MustCompile(`^\[[A-Z]+\]`)
	fpRegexp       = regexp.MustCompile(`logger/logger_test\.go:\d+`)
	msgRegexp      = regexp.MustCompile(`'(.*)'`)
)

func newTestLogger(b *bytes.Buffer) *log.Logger {
	return log.New(b, "", 0)
}

func TestWanderLoggerLevels(t *testing.T) {
	for _, tc := range []struct {
		name  string
		level logger.LogLevel
		fn    func(l logger.Logger)
		want  string
	}{
		{"debug-at-debug", logger.LogLevelDebug, func(l logger.Logger) { l.Debug("hi", nil) }, "[DEBUG]"},
		{"debug-at-info", logger.LogLevelInfo, func(l logger.Logger) { l.Debug("hi", nil) }, ""},
		{"info-at-info", logger.LogLevelInfo, func(l logger.Logger) { l.Info("hi", nil) }, "[INFO]"},
		{"warn-at-error", logger.LogLevelError, func(l logger.Logger) { l.Warn("hi", nil) }, ""},
		{"error-at-warn", logger.LogLevelWarn, func(l logger.Logger) { l.Error("hi", nil) }, "[ERROR]"},
		{"fatal-at-fatal", logger.LogLevelFatal, func(l logger.Logger) { l.Fatal("hi", nil) }, "[FATAL]"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			b := new(bytes.Buffer)
			l := logger.NewLogger(logger.WithLogger(newTestLogger(b)), logger.WithLevel(tc.level))

			// Act
			tc.fn(l)

			// Assert
			if tc.want == "" {
				require.Empty(t, b.String())
				return
			}

			out := stripColor(b.String())
			require.Equal(t, tc.want, logLevelRegexp.FindString(out))
			require.Regexp(t, fpRegexp, out)
			require.Equal(t, "hi", msgRegexp.FindStringSubmatch(out)[1])
		})
	}
}

func TestWanderLoggerContext(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := logger.NewLogger(logger.WithLogger(newTestLogger(b)))

	// Act
	l.Error("boom", &logger.LogContext{Error: errors.New("broken"), Caller: "web/auth.go:12"})

	// Assert
	out := stripColor(b.String())
	require.Contains(t, out, "web/auth.go:12")
	require.Contains(t, out, `log_context: {"error":"broken"}`)
}

func TestNewLogLevel(t *testing.T) {
	tcs := []struct {
		name     string
		val      string
		expected logger.LogLevel
	}{
		{"Upper", "WARN", logger.LogLevelWarn},
		{"Lower", "debug", logger.LogLevelDebug},
		{"Mixed", "Error", logger.LogLevelError},
		{"Padded", " fatal\n", logger.LogLevelFatal},
		{"Bracketed", logger.LogLevelInfo.String(), logger.LogLevelInfo},
		{"Unknown", "loud", logger.LogLevelUnk},
		{"Empty", "", logger.LogLevelUnk},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, logger.NewLogLevel(tc.val))
		})
	}

	require.Equal(t, "[UNK]", logger.LogLevelUnk.String())
}

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripColor(s string) string { return ansi.ReplaceAllString(s, "") }
