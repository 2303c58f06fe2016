// Package tui renders CLI output: markdown via glamour when stdout is a
// terminal, styled one-line statuses via termenv.
package tui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether stdout is an interactive terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// RenderMarkdown renders markdown for the terminal. Outside a terminal (or
// on renderer failure) the raw markdown is returned so output stays pipeable.
func RenderMarkdown(markdown string) string {
	if !IsTerminal() {
		return markdown
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		return markdown
	}
	out, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}

// Success formats a one-line success status.
func Success(msg string) string {
	p := termenv.ColorProfile()
	return termenv.String("✓ " + msg).Foreground(p.Color("#34d399")).String()
}

// Failure formats a one-line failure status.
func Failure(msg string) string {
	p := termenv.ColorProfile()
	return termenv.String("✗ " + msg).Foreground(p.Color("#fb7185")).String()
}
