// Package ui prints human-readable build status lines. Output here is
// for the operator's eyes only; nothing downstream parses it.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Status writes stage progress, collision notices, and the final
// verdict of a build run.
type Status struct {
	writer  io.Writer
	noColor bool
}

// NewStatus creates a status printer. Colors are disabled when noColor
// is set or the writer is not a terminal (fatih/color handles the
// latter globally).
func NewStatus(w io.Writer, noColor bool) *Status {
	return &Status{writer: w, noColor: noColor}
}

// Stage announces that a pipeline stage is starting.
func (s *Status) Stage(name string) {
	c := color.New(color.FgCyan)
	if s.noColor {
		c.DisableColor()
	}
	c.Fprintf(s.writer, "• %s\n", name)
}

// Info prints a plain progress detail line.
func (s *Status) Info(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, "  %s\n", fmt.Sprintf(format, args...))
}

// Collision reports that a merge is about to overwrite path. It is a
// notice, not an error: the build keeps going and the later input wins.
func (s *Status) Collision(path string) {
	c := color.New(color.FgYellow)
	if s.noColor {
		c.DisableColor()
	}
	c.Fprintf(s.writer, "  conflict: %s\n", path)
}

// Success prints the final success line.
func (s *Status) Success(format string, args ...interface{}) {
	c := color.New(color.FgGreen, color.Bold)
	if s.noColor {
		c.DisableColor()
	}
	c.Fprintf(s.writer, "✓ %s\n", fmt.Sprintf(format, args...))
}

// Error prints a failure line.
func (s *Status) Error(format string, args ...interface{}) {
	c := color.New(color.FgRed, color.Bold)
	if s.noColor {
		c.DisableColor()
	}
	c.Fprintf(s.writer, "✗ %s\n", fmt.Sprintf(format, args...))
}
