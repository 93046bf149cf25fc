// Package logging provides the shared zap logger.
package logging

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu           sync.Mutex
	sharedLogger *zap.SugaredLogger
)

// Init builds the shared logger. An explicit level wins over LOG_LEVEL, and
// warn is used when neither parses. Output goes to w (stderr when nil) so
// tables and JSON on stdout stay clean.
func Init(level string, w io.Writer) *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	sharedLogger = New(resolveLevel(level), w)
	return sharedLogger
}

// New creates a console logger writing to w at the given level
func New(level zapcore.Level, w io.Writer) *zap.SugaredLogger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		MessageKey:     "M",
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.0000"),
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		level,
	)

	return zap.New(core).Sugar()
}

func resolveLevel(level string) zapcore.Level {
	for _, candidate := range []string{level, os.Getenv("LOG_LEVEL")} {
		if candidate == "" {
			continue
		}
		if parsed, err := zapcore.ParseLevel(candidate); err == nil {
			return parsed
		}
	}
	return zapcore.WarnLevel
}

// Get returns the shared logger, initializing it with defaults if needed
func Get() *zap.SugaredLogger {
	mu.Lock()
	l := sharedLogger
	mu.Unlock()
	if l == nil {
		return Init("", nil)
	}
	return l
}

// Sync flushes the shared logger
func Sync() {
	mu.Lock()
	defer mu.Unlock()
	if sharedLogger != nil {
		_ = sharedLogger.Sync()
	}
}

// Nop returns a logger that discards everything
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
