// Package logger provides the shared logrus logger. Every package logs
// through a component entry from NewLogger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var base = newBase()

func newBase() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	l.SetLevel(logrus.InfoLevel)
	if debugFromEnv() {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

func debugFromEnv() bool {
	return os.Getenv("MCKEYS_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}

// NewLogger returns a logger tagged with the given component name.
func NewLogger(component string) *logrus.Entry {
	return base.WithField("component", component)
}

// SetLevel parses a level name ("debug", "info", ...). Unknown names are ignored
// and reported as false.
func SetLevel(level string) bool {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return false
	}
	base.SetLevel(lvl)
	return true
}

// EnableDebug switches the shared logger to debug level.
func EnableDebug() {
	base.SetLevel(logrus.DebugLevel)
}

// SetOutput redirects all component loggers.
func SetOutput(w io.Writer) {
	base.SetOutput(w)
}

// DisableColors forces plain log output.
func DisableColors() {
	base.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
}
