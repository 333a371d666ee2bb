package logger

import (
	"io"
	"os"
	"sync/atomic"

	charmlog "github.com/charmbracelet/log"
)

type (
	LogLevel string

	// Logger defines structured logging used across the module
	Logger interface {
		Debug(msg string, keyvals ...any)
		Info(msg string, keyvals ...any)
		Warn(msg string, keyvals ...any)
		Error(msg string, keyvals ...any)
	}

	loggerImpl struct {
		charmLogger *charmlog.Logger
	}

	Config struct {
		Level  LogLevel
		Output io.Writer
		JSON   bool
	}
)

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

var defaultLogger atomic.Pointer[Logger]

func (l LogLevel) charmLevel() charmlog.Level {
	switch l {
	case DebugLevel:
		return charmlog.DebugLevel
	case InfoLevel:
		return charmlog.InfoLevel
	case ErrorLevel:
		return charmlog.ErrorLevel
	default:
		return charmlog.WarnLevel
	}
}

func (l *loggerImpl) Debug(msg string, keyvals ...any) { l.charmLogger.Debug(msg, keyvals...) }

func (l *loggerImpl) Info(msg string, keyvals ...any) { l.charmLogger.Info(msg, keyvals...) }

func (l *loggerImpl) Warn(msg string, keyvals ...any) { l.charmLogger.Warn(msg, keyvals...) }

func (l *loggerImpl) Error(msg string, keyvals ...any) { l.charmLogger.Error(msg, keyvals...) }

// DefaultConfig returns warn level stderr text logging
func DefaultConfig() *Config {
	return &Config{Level: WarnLevel, Output: os.Stderr}
}

// New creates a logger
func New(cfg *Config) Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	charmLogger := charmlog.NewWithOptions(output, charmlog.Options{
		ReportTimestamp: true,
		Prefix:          "xconv",
		Level:           cfg.Level.charmLevel(),
	})
	if cfg.JSON {
		charmLogger.SetFormatter(charmlog.JSONFormatter)
	}
	return &loggerImpl{charmLogger: charmLogger}
}

// Default returns process logger
func Default() Logger {
	if l := defaultLogger.Load(); l != nil {
		return *l
	}
	l := New(nil)
	if defaultLogger.CompareAndSwap(nil, &l) {
		return l
	}
	return *defaultLogger.Load()
}

// SetDefault replaces process logger
func SetDefault(l Logger) {
	if l == nil {
		return
	}
	defaultLogger.Store(&l)
}
