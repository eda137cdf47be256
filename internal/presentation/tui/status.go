package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Status prints pass/fail lines, coloured when the output supports it.
type Status struct {
	out *termenv.Output
}

// NewStatus writes status lines to w.
func NewStatus(w io.Writer) *Status {
	return &Status{out: termenv.NewOutput(w)}
}

// Pass prints a success line.
func (s *Status) Pass(format string, args ...any) {
	s.line("✔", "#22c55e", format, args...)
}

// Fail prints a failure line.
func (s *Status) Fail(format string, args ...any) {
	s.line("✘", "#ef4444", format, args...)
}

// Info prints a neutral line.
func (s *Status) Info(format string, args ...any) {
	s.line("•", "#94a3b8", format, args...)
}

func (s *Status) line(mark, color, format string, args ...any) {
	prefix := s.out.String(mark).Foreground(s.out.Color(color)).Bold()
	fmt.Fprintf(s.out, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}
