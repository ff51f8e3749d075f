package coloc

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with coloc-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithAlgorithm adds an algorithm field to the logger.
func (l *Logger) WithAlgorithm(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("algorithm", name),
	}
}

// WithSample adds a sample (input file) field to the logger.
func (l *Logger) WithSample(path string) *Logger {
	return &Logger{
		Logger: l.Logger.With("sample", path),
	}
}

// WithSeed adds a seed field to the logger.
func (l *Logger) WithSeed(seed int64) *Logger {
	return &Logger{
		Logger: l.Logger.With("seed", seed),
	}
}

// LogBuild logs the outcome of a measurement graph build.
func (l *Logger) LogBuild(nodes int, sigma, visibility float64, connected bool) {
	l.Debug("measurement graph built",
		"nodes", nodes,
		"sigma", sigma,
		"visibility", visibility,
		"connected", connected,
	)
}

// LogSolve logs the outcome of a solve.
func (l *Logger) LogSolve(algorithm string, nodes, underDetermined int, err error) {
	if err != nil {
		l.Error("solve failed",
			"algorithm", algorithm,
			"error", err,
		)
	} else {
		l.Debug("solve completed",
			"algorithm", algorithm,
			"nodes", nodes,
			"under_determined", underDetermined,
		)
	}
}
