// Package cli wires the devrando root command and sequences a scaffolding
// run: prompt, fetch, materialize, optional git init, optional install.
package cli

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/devrando/devrando/internal/challenge"
	"github.com/devrando/devrando/internal/config"
	"github.com/devrando/devrando/internal/errors"
	"github.com/devrando/devrando/internal/exec"
	"github.com/devrando/devrando/internal/fs"
	"github.com/devrando/devrando/internal/installer"
	"github.com/devrando/devrando/internal/project"
	"github.com/devrando/devrando/internal/prompt"
	"github.com/devrando/devrando/internal/ui"
	"github.com/devrando/devrando/internal/vcs"
)

// Options carries the flag-provided parts of a run. Nil booleans mean
// "not set on the command line"; the prompt (or defaults) fills them.
type Options struct {
	Name    string
	Git     *bool
	Install *bool
	Yes     bool
}

// Service sequences one scaffolding run. Every side-effecting collaborator
// is a field so tests can stub it.
type Service struct {
	Cfg      config.Config
	FS       fs.FS
	Runner   exec.CommandRunner
	Prompter prompt.Prompter
	Fetch    func(ctx context.Context, baseURL string) (*challenge.Challenge, error)
	Install  func(ctx context.Context, bin string, args ...string) error
	Chdir    func(dir string) error
	Getwd    func() (string, error)
	Out      io.Writer
	Log      *slog.Logger
}

// NewService creates a Service with production dependencies.
func NewService(cfg config.Config, out io.Writer, log *slog.Logger) *Service {
	return &Service{
		Cfg:      cfg,
		FS:       fs.NewRealFS(),
		Runner:   exec.NewRealRunner(),
		Prompter: prompt.HuhPrompter{},
		Fetch: func(ctx context.Context, baseURL string) (*challenge.Challenge, error) {
			return challenge.Fetch(ctx, http.DefaultClient, baseURL)
		},
		Install: installer.Install,
		Chdir:   os.Chdir,
		Getwd:   os.Getwd,
		Out:     out,
		Log:     log,
	}
}

// Run executes the linear pipeline. Failures from fetch, materialize, or
// install are fatal; a git failure only costs the repository. Once the
// project directory exists, any fatal failure triggers best-effort cleanup.
func (s *Service) Run(ctx context.Context, opts Options) error {
	answers, err := s.resolveAnswers(opts)
	if err != nil {
		return err
	}

	ui.Step(s.Out, "Fetching the current challenge from %s ...", s.Cfg.APIBaseURL)
	ch, err := s.Fetch(ctx, s.Cfg.APIBaseURL)
	if err != nil {
		ui.Error(s.Out, "Could not fetch a challenge. Check your connection and try again.")
		return err
	}
	ui.Success(s.Out, "Got challenge %s with %d dependencies.",
		ch.Metadata.ChallengeHash, ch.TotalDeclaredDependencies())

	parent, err := s.Getwd()
	if err != nil {
		return errors.Wrap(errors.EInternal, "could not resolve the working directory", err)
	}

	m := &project.Materializer{FS: s.FS, Chdir: s.Chdir}
	if err := m.Materialize(answers.Name, ch); err != nil {
		if errors.GetCode(err) == errors.EProjectExists {
			ui.Notice(s.Out, "Directory %s already exists. Nothing was created; pick another name.", answers.Name)
			return err // benign: ExitCode maps E_PROJECT_EXISTS to 0
		}
		ui.Error(s.Out, "Could not set up the project directory.")
		s.cleanup(parent, answers.Name)
		return err
	}
	ui.Success(s.Out, "Created %s/ with %s and %s.",
		answers.Name, project.DescriptorFile, project.MetadataFile)

	if answers.InitRepo {
		if err := vcs.Init(ctx, s.Runner, s.FS, s.Cfg.GitBin); err != nil {
			s.Log.Warn("git initialization failed, continuing without a repository", "err", err)
			ui.Warn(s.Out, "Could not initialize a git repository; continuing without one.")
		} else {
			ui.Success(s.Out, "Initialized a git repository on branch main.")
		}
	}

	if answers.RunInstall {
		ui.Step(s.Out, "Installing %d dependencies (forced; conflicts are part of the game) ...",
			ch.TotalDeclaredDependencies())
		if err := s.Install(ctx, s.Cfg.NpmBin, installer.ForceArgs...); err != nil {
			ui.Error(s.Out, "Dependency installation failed; removing %s.", answers.Name)
			s.cleanup(parent, answers.Name)
			return err
		}
		ui.Success(s.Out, "Dependencies installed.")
	}

	ui.NextSteps(s.Out, answers.Name, ch.Metadata.ChallengeHash, answers.RunInstall)
	return nil
}

// resolveAnswers merges flags over config defaults and prompts for whatever
// is still undecided. --yes (or DEVRANDO_NON_INTERACTIVE) takes the merged
// defaults as-is.
func (s *Service) resolveAnswers(opts Options) (prompt.Answers, error) {
	answers := prompt.Answers{
		Name:       s.Cfg.DefaultName,
		InitRepo:   true,
		RunInstall: true,
	}
	if opts.Name != "" {
		answers.Name = opts.Name
	}
	if opts.Git != nil {
		answers.InitRepo = *opts.Git
	}
	if opts.Install != nil {
		answers.RunInstall = *opts.Install
	}

	fullySpecified := opts.Name != "" && opts.Git != nil && opts.Install != nil
	if !opts.Yes && !s.Cfg.NonInteractive && !fullySpecified {
		var err error
		answers, err = s.Prompter.Ask(answers)
		if err != nil {
			return prompt.Answers{}, err
		}
	}

	if err := prompt.ValidateName(answers.Name); err != nil {
		return prompt.Answers{}, err
	}
	return answers, nil
}

// cleanup returns to the parent directory and recursively removes the
// project directory. Best effort: failures are logged, never escalated, and
// the caller's exit status is already decided.
func (s *Service) cleanup(parent, name string) {
	if err := s.Chdir(parent); err != nil {
		s.Log.Warn("cleanup: could not return to the parent directory", "dir", parent, "err", err)
	}
	target := filepath.Join(parent, name)
	if err := fs.RemoveTree(s.FS, target); err != nil {
		s.Log.Warn("cleanup: could not remove the project directory", "dir", target, "err", err)
		ui.Warn(s.Out, "Could not clean up %s; remove it manually.", target)
	}
}
