package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

//go:generate mockgen -destination=../../internal/domain/mocks/mock_logger.go -package=mocks github.com/rllL1/portfolio/pkg/logger Logger

type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
	Fatal(msg string)
	WithField(key string, value interface{}) Logger
	WithFields(fields map[string]interface{}) Logger
}

type zerologLogger struct {
	logger zerolog.Logger
}

func NewLogger() Logger {
	return newLogger(os.Stdout, zerolog.InfoLevel)
}

// NewLoggerWithLevel builds a JSON logger writing to stdout. Unknown levels fall back to info.
func NewLoggerWithLevel(level string) Logger {
	return newLogger(os.Stdout, ParseLevel(level))
}

// NewLoggerWithWriter is used by tests that need to inspect output.
func NewLoggerWithWriter(w io.Writer, level string) Logger {
	return newLogger(w, ParseLevel(level))
}

func newLogger(w io.Writer, level zerolog.Level) Logger {
	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return &zerologLogger{
		logger: logger,
	}
}

// ParseLevel maps LOG_LEVEL values to zerolog levels
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off", "none":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func (l *zerologLogger) Debug(msg string) {
	l.logger.Debug().Msg(msg)
}

func (l *zerologLogger) Info(msg string) {
	l.logger.Info().Msg(msg)
}

func (l *zerologLogger) Warn(msg string) {
	l.logger.Warn().Msg(msg)
}

func (l *zerologLogger) Error(msg string) {
	l.logger.Error().Msg(msg)
}

func (l *zerologLogger) Fatal(msg string) {
	l.logger.Fatal().Msg(msg)
}

func (l *zerologLogger) WithField(key string, value interface{}) Logger {
	return &zerologLogger{
		logger: l.logger.With().Interface(key, value).Logger(),
	}
}

func (l *zerologLogger) WithFields(fields map[string]interface{}) Logger {
	ctx := l.logger.With()
	for key, value := range fields {
		ctx = ctx.Interface(key, value)
	}
	return &zerologLogger{
		logger: ctx.Logger(),
	}
}
