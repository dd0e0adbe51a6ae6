// Package ui renders the user-facing output for devrando. Everything a user
// reads on the happy path goes through here; diagnostics go to slog.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	stepStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	cmdStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
)

// Step announces the start of a pipeline step.
func Step(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, stepStyle.Render(fmt.Sprintf(format, args...)))
}

// Success reports a completed step.
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, successStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Warn reports a recoverable problem; the run continues.
func Warn(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, warnStyle.Render("! "+fmt.Sprintf(format, args...)))
}

// Error reports a fatal problem before the process exits non-zero.
func Error(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, errorStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}

// Notice reports a benign early exit, like the pre-existing target directory.
func Notice(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, noticeStyle.Render(fmt.Sprintf(format, args...)))
}

// NextSteps prints the closing guide. The install-now branch skips the
// install instruction the install-later branch carries.
func NextSteps(w io.Writer, name, challengeHash string, installed bool) {
	fmt.Fprintln(w)
	Success(w, "Project %s is ready (challenge %s).", name, challengeHash)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintf(w, "  %s\n", cmdStyle.Render("cd "+name))
	if !installed {
		fmt.Fprintf(w, "  %s\n", cmdStyle.Render("npm install --force"))
	}
	fmt.Fprintln(w, "  build something with the dependencies you were dealt. Good luck!")
}
