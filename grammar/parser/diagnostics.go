package parser

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Nacorpio/Narser/grammar/token"
)

// Severity of a diagnostic
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Diagnostic is a recoverable problem found while lexing or building
type Diagnostic struct {
	Severity Severity
	Location token.Location
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s (line %d, column %d)", d.Severity, d.Message, d.Location.Line, d.Location.Column)
}

// Sink receives diagnostics as they are found
type Sink interface {
	Report(d Diagnostic)
}

// Collector is a Sink that keeps every diagnostic in order
type Collector struct {
	items []Diagnostic
}

// Report implements Sink
func (c *Collector) Report(d Diagnostic) {
	c.items = append(c.items, d)
}

// Diagnostics returns the collected diagnostics
func (c *Collector) Diagnostics() []Diagnostic {
	return c.items
}

// HasErrors reports whether any error-level diagnostic was collected
func (c *Collector) HasErrors() bool {
	for _, d := range c.items {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// LogSink writes diagnostics to a structured logger
type LogSink struct {
	Logger *slog.Logger
}

// Report implements Sink
func (s LogSink) Report(d Diagnostic) {
	level := slog.LevelWarn
	if d.Severity == SeverityError {
		level = slog.LevelError
	}
	s.Logger.Log(context.Background(), level, d.Message,
		"line", d.Location.Line,
		"column", d.Location.Column,
		"position", d.Location.Position,
	)
}

type teeSink []Sink

func (t teeSink) Report(d Diagnostic) {
	for _, s := range t {
		s.Report(d)
	}
}

// Tee forwards every diagnostic to all non-nil sinks
func Tee(sinks ...Sink) Sink {
	var out teeSink
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}
