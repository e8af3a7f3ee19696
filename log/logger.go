// SPDX-License-Identifier: MIT

package log

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	unilogger "github.com/neuronlabs/uni-logger"
)

const (
	// LDEBUG3 is the logger DEBUG3 level.
	LDEBUG3 = unilogger.DEBUG3
	// LDEBUG2 is the logger DEBUG2 level.
	LDEBUG2 = unilogger.DEBUG2
	// LDEBUG is the logger DEBUG level.
	LDEBUG = unilogger.DEBUG
	// LINFO is the logger INFO level.
	LINFO = unilogger.INFO
	// LWARNING is the logger WARNING level.
	LWARNING = unilogger.WARNING
	// LERROR is the logger ERROR level.
	LERROR = unilogger.ERROR
	// LCRITICAL is the logger CRITICAL level.
	LCRITICAL = unilogger.CRITICAL
	// LUNKNOWN is the unspecified logger level.
	LUNKNOWN = unilogger.UNKNOWN
)

var (
	// ErrUnknownLevel is returned for a level name or value outside the known set.
	ErrUnknownLevel = errors.New("log: unknown level")
	// ErrLevelNotSupported is returned when the current logger cannot change its level.
	ErrLevelNotSupported = errors.New("log: logger does not implement LevelSetter")
)

var levelNames = map[string]unilogger.Level{
	"debug3":   LDEBUG3,
	"debug2":   LDEBUG2,
	"debug":    LDEBUG,
	"info":     LINFO,
	"warning":  LWARNING,
	"warn":     LWARNING,
	"error":    LERROR,
	"critical": LCRITICAL,
}

var (
	logger       unilogger.LeveledLogger
	currentLevel = LINFO
)

// Default creates and sets new unilogger.BasicLogger with writer to 'os.Stderr'.
func Default() {
	New(os.Stderr, "", log.Ldate|log.Ltime|log.Lshortfile)
}

// New creates new unilogger.BasicLogger that writes to provided 'out' io.Writer
// with specific 'prefix' and provided 'flags'.
func New(out io.Writer, prefix string, flags int) {
	basic := unilogger.NewBasicLogger(out, prefix, flags)
	basic.SetOutputDepth(4)
	SetLogger(basic)
}

// SetLogger sets the 'l' as the current logger and applies the current level to it.
func SetLogger(l unilogger.LeveledLogger) {
	logger = l
	if l == nil {
		return
	}

	if depth, ok := l.(unilogger.OutputDepthGetter); ok {
		if setter, ok := l.(unilogger.OutputDepthSetter); ok {
			setter.SetOutputDepth(depth.GetOutputDepth() + 1)
		}
	}
	if lvlSetter, ok := l.(unilogger.LevelSetter); ok {
		lvlSetter.SetLevel(currentLevel)
	}
}

// Logger returns the current logger (nil when none is set).
func Logger() unilogger.LeveledLogger {
	return logger
}

// Level returns current logger Level.
func Level() unilogger.Level {
	return currentLevel
}

// SetLevel sets the level if possible for the current logger.
func SetLevel(level unilogger.Level) error {
	if !knownLevel(level) {
		return fmt.Errorf("%d: %w", int(level), ErrUnknownLevel)
	}

	currentLevel = level
	if logger == nil {
		return nil
	}

	lvl, ok := logger.(unilogger.LevelSetter)
	if !ok {
		return ErrLevelNotSupported
	}
	lvl.SetLevel(currentLevel)

	return nil
}

// ParseLevel maps a case-insensitive level name ("debug", "info", "warning",
// "error", ...) to its unilogger.Level.
func ParseLevel(name string) (unilogger.Level, error) {
	lvl, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return LUNKNOWN, fmt.Errorf("%q: %w", name, ErrUnknownLevel)
	}

	return lvl, nil
}

func knownLevel(level unilogger.Level) bool {
	for _, l := range levelNames {
		if l == level {
			return true
		}
	}

	return false
}

// Debugf writes the formated LDEBUG level log.
func Debugf(format string, args ...interface{}) {
	if logger != nil {
		logger.Debugf(format, args...)
	}
}

// Infof writes the formated LINFO level log.
func Infof(format string, args ...interface{}) {
	if logger != nil {
		logger.Infof(format, args...)
	}
}

// Warningf writes the formated warning level log.
func Warningf(format string, args ...interface{}) {
	if logger != nil {
		logger.Warningf(format, args...)
	}
}

// Errorf writes the formated LERROR level log.
func Errorf(format string, args ...interface{}) {
	if logger != nil {
		logger.Errorf(format, args...)
	}
}
