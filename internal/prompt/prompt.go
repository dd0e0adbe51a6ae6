// Package prompt collects the session answers interactively.
package prompt

import (
	stderrors "errors"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/devrando/devrando/internal/errors"
)

// Answers is the user-supplied session state. It is created once from
// interactive input (or flags) and read-only afterward; the orchestrator
// threads it explicitly into both the run and the cleanup path.
type Answers struct {
	Name       string
	InitRepo   bool
	RunInstall bool
}

// Prompter asks the user for session answers, starting from defaults.
type Prompter interface {
	Ask(defaults Answers) (Answers, error)
}

// HuhPrompter is the production Prompter backed by charmbracelet/huh forms.
type HuhPrompter struct{}

// Ask runs the interactive form: project name (free text with default) and
// the two optional-step confirmations, both defaulting to yes.
func (HuhPrompter) Ask(defaults Answers) (Answers, error) {
	a := defaults

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Project name").
			Placeholder(defaults.Name).
			Validate(validateOrEmpty).
			Value(&a.Name),
		huh.NewConfirm().
			Title("Initialize a git repository?").
			Affirmative("Yes").
			Negative("No").
			Value(&a.InitRepo),
		huh.NewConfirm().
			Title("Install dependencies now?").
			Affirmative("Yes").
			Negative("No").
			Value(&a.RunInstall),
	))

	if err := form.Run(); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			return Answers{}, errors.New(errors.EPromptAborted, "aborted")
		}
		return Answers{}, errors.Wrap(errors.EPromptAborted, "prompt failed", err)
	}

	// Empty input takes the default.
	if strings.TrimSpace(a.Name) == "" {
		a.Name = defaults.Name
	}
	return a, nil
}

// validateOrEmpty lets the empty answer through (it becomes the default)
// but rejects syntactically invalid names immediately.
func validateOrEmpty(name string) error {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	return ValidateName(name)
}

// ValidateName rejects names that cannot be a fresh directory entry in the
// current working directory. Existence is deliberately not checked here:
// a pre-existing target is the benign cancellation handled downstream.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New(errors.EUsage, "project name is required")
	}
	if name == "." || name == ".." {
		return errors.New(errors.EUsage, "project name must not be a dot directory")
	}
	if strings.ContainsAny(name, "/\\") {
		return errors.New(errors.EUsage, "project name must be a single path element")
	}
	if strings.ContainsRune(name, 0) {
		return errors.New(errors.EUsage, "project name contains a NUL byte")
	}
	return nil
}
