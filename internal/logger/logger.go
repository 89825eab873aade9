// Package logger is a small leveled logging facility over the standard
// log package. The pricing functions use it only at Trace level, to
// expose intermediate quantities (term, d1, d2) during debugging;
// at the default verbosity they emit nothing.
//
// Verbosity levels, in increasing order: Error < Info < Debug < Trace.
//
//	logger.SetVerbosity(3) // Trace
//	price := pricing.Price(...)
package logger

import (
	"log"
	"os"
)

// Level is a logging verbosity level; higher is chattier.
type Level int

const (
	Error Level = iota // critical failures only
	Info               // high-level progress
	Debug              // diagnostic detail
	Trace              // per-call intermediates
)

// current is the active verbosity. Messages above it are dropped.
var current Level = Info

func init() {
	// Logs go to stderr so they never mix with program output.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

// SetVerbosity sets the global verbosity. Call it once at startup;
// it is configuration, not per-call state.
func SetVerbosity(v int) {
	current = Level(v)
}

func logf(l Level, prefix, format string, args ...any) {
	if current >= l {
		log.Printf(prefix+format, args...)
	}
}

// Errorf logs a critical failure.
func Errorf(format string, args ...any) {
	logf(Error, "[ERROR] ", format, args...)
}

// Infof logs a major lifecycle event.
func Infof(format string, args ...any) {
	logf(Info, "[INFO]  ", format, args...)
}

// Debugf logs diagnostic detail.
func Debugf(format string, args ...any) {
	logf(Debug, "[DEBUG] ", format, args...)
}

// Tracef logs fine-grained, per-call detail. High volume; keep it off
// outside of debugging sessions.
func Tracef(format string, args ...any) {
	logf(Trace, "[TRACE] ", format, args...)
}
