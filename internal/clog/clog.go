// Package clog is the logging facade every other package in cssc calls
// through instead of reaching for zap directly: a diagnostic sink that
// every stage of the pipeline writes recoverable, rule-level errors into,
// backed by a real structured logger instead of a bespoke terminal
// formatter.
package clog

import (
	"sync"

	"go.uber.org/zap"

	"cssc/internal/location"
)

// Kind distinguishes recoverable rule/declaration-level diagnostics from
// plain informational logging.
type Kind uint8

const (
	KindWarning Kind = iota
	KindError
)

func (k Kind) String() string {
	if k == KindError {
		return "error"
	}
	return "warning"
}

// Diagnostic is a single recoverable problem encountered while parsing or
// bundling. Unlike a fatal error returned from the public API, a
// Diagnostic does not stop the operation: the offending rule or
// declaration is simply dropped and the pipeline continues.
type Diagnostic struct {
	Kind     Kind
	Text     string
	Filename string
	Range    location.Range
}

// Log collects diagnostics for one top-level operation (a single Parse,
// Minify, or Bundle call) and mirrors each one to the configured
// zap logger. It is safe for concurrent use, since the bundler appends to
// it from multiple goroutines during phase 1.
type Log struct {
	mu          sync.Mutex
	zap         *zap.SugaredLogger
	operationID string
	diagnostics []Diagnostic
}

// New creates a Log bound to a correlation id (see cssc.go, which stamps
// every top-level call with a uuid) and a base zap logger. Passing a nil
// base logger falls back to zap.NewNop so callers that don't care about
// logging don't have to construct one.
func New(base *zap.Logger, operationID string) *Log {
	if base == nil {
		base = zap.NewNop()
	}
	return &Log{
		zap:         base.Sugar().With("op", operationID),
		operationID: operationID,
	}
}

// AddDiagnostic records a recoverable problem and mirrors it to zap at the
// appropriate level.
func (l *Log) AddDiagnostic(d Diagnostic) {
	l.mu.Lock()
	l.diagnostics = append(l.diagnostics, d)
	l.mu.Unlock()

	fields := []interface{}{
		"file", d.Filename,
		"line", d.Range.Start.Line + 1,
		"column", d.Range.Start.Column + 1,
	}
	if d.Kind == KindError {
		l.zap.Errorw(d.Text, fields...)
	} else {
		l.zap.Warnw(d.Text, fields...)
	}
}

// Diagnostics returns every diagnostic recorded so far, in the order
// AddDiagnostic was called. The slice is a copy, so a caller may modify it
// without affecting the Log.
func (l *Log) Diagnostics() []Diagnostic {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Diagnostic, len(l.diagnostics))
	copy(out, l.diagnostics)
	return out
}

// HasErrors reports whether any diagnostic at KindError severity was
// recorded.
func (l *Log) HasErrors() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, d := range l.diagnostics {
		if d.Kind == KindError {
			return true
		}
	}
	return false
}
