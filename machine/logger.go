package machine

import (
	"fmt"

	u "github.com/araddon/gou"
)

// Level is the severity of a log message.
type Level uint8

const (
	// LevelDebug carries simulation traces: prefilter choice and substring
	// outcomes.
	LevelDebug Level = iota

	// LevelInfo carries informational messages.
	LevelInfo

	// LevelWarn carries recoverable oddities.
	LevelWarn

	// LevelError carries construction and mode errors, which are also
	// returned to the caller.
	LevelError

	// LevelFatalError reports an unrecoverable misuse. The logger only
	// records it; the caller still receives an error value.
	LevelFatalError
)

// String returns a human-readable level name
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatalError:
		return "fatal"
	default:
		return fmt.Sprintf("level(%d)", l)
	}
}

// Logger is the diagnostics sink of an automaton. Implementations must be
// safe for concurrent use when the automaton is shared between goroutines.
type Logger interface {
	Log(level Level, msg string)
}

// NopLogger discards every message.
type NopLogger struct{}

// Log implements Logger.
func (NopLogger) Log(Level, string) {}

// GouLogger forwards messages to the package-level github.com/araddon/gou
// logger. Configure output and verbosity with SetupGouLogging (or gou
// directly) before use.
type GouLogger struct{}

// NewGouLogger returns a Logger backed by gou.
func NewGouLogger() GouLogger {
	return GouLogger{}
}

// Log implements Logger.
func (GouLogger) Log(level Level, msg string) {
	switch level {
	case LevelDebug:
		u.Debugf("%s", msg)
	case LevelInfo:
		u.Infof("%s", msg)
	case LevelWarn:
		u.Warnf("%s", msg)
	case LevelError:
		u.Errorf("%s", msg)
	default:
		u.LogTracef(u.ERROR, "%s", msg)
	}
}

// SetupGouLogging initialises gou at the given level ("debug", "info",
// "warn", "error") with colored output.
func SetupGouLogging(level string) {
	u.SetupLogging(level)
	u.SetColorOutput()
}

func logf(l Logger, level Level, format string, args ...any) {
	if l == nil {
		return
	}
	if _, nop := l.(NopLogger); nop {
		return
	}
	l.Log(level, fmt.Sprintf(format, args...))
}
