package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SafeLogger wraps a zap logger so that a nil receiver or an unset logger
// never panics. Every package logs through it.
type SafeLogger struct {
	logger *zap.Logger
}

var (
	// Logger is the global logger instance. It starts as a no-op logger and is
	// replaced by InitLogger.
	Logger = &SafeLogger{logger: zap.NewNop()}
)

// InitLogger initializes the global logger
func InitLogger() error {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Set log level from environment
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(logLevel)); err == nil {
			config.Level = zap.NewAtomicLevelAt(level)
		}
	}

	zapLogger, err := config.Build(
		zap.AddCallerSkip(1),
		zap.Fields(
			zap.String("service", "app-inscricao"),
			zap.String("version", "v1"),
		),
	)
	if err != nil {
		return err
	}

	Logger = &SafeLogger{logger: zapLogger}
	zap.ReplaceGlobals(zapLogger)
	return nil
}

// New wraps an existing zap logger.
func New(l *zap.Logger) *SafeLogger {
	return &SafeLogger{logger: l}
}

// Nop returns a logger that discards everything.
func Nop() *SafeLogger {
	return &SafeLogger{logger: zap.NewNop()}
}

func (s *SafeLogger) ok() bool {
	return s != nil && s.logger != nil
}

func (s *SafeLogger) Debug(msg string, fields ...zap.Field) {
	if s.ok() {
		s.logger.Debug(msg, fields...)
	}
}

func (s *SafeLogger) Info(msg string, fields ...zap.Field) {
	if s.ok() {
		s.logger.Info(msg, fields...)
	}
}

func (s *SafeLogger) Warn(msg string, fields ...zap.Field) {
	if s.ok() {
		s.logger.Warn(msg, fields...)
	}
}

func (s *SafeLogger) Error(msg string, fields ...zap.Field) {
	if s.ok() {
		s.logger.Error(msg, fields...)
	}
}

// Fatal logs and exits. With no logger configured it still exits.
func (s *SafeLogger) Fatal(msg string, fields ...zap.Field) {
	if s.ok() {
		s.logger.Fatal(msg, fields...)
		return
	}
	os.Exit(1)
}

// With returns a child logger carrying the given fields.
func (s *SafeLogger) With(fields ...zap.Field) *SafeLogger {
	if !s.ok() {
		return s
	}
	return &SafeLogger{logger: s.logger.With(fields...)}
}

// Named returns a child logger with the given name segment.
func (s *SafeLogger) Named(name string) *SafeLogger {
	if !s.ok() {
		return s
	}
	return &SafeLogger{logger: s.logger.Named(name)}
}

// Unwrap returns the underlying zap logger, or a no-op logger.
func (s *SafeLogger) Unwrap() *zap.Logger {
	if !s.ok() {
		return zap.NewNop()
	}
	return s.logger
}

// Sync flushes buffered log entries.
func (s *SafeLogger) Sync() error {
	if !s.ok() {
		return nil
	}
	return s.logger.Sync()
}
