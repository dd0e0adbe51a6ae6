package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/devrando/devrando/internal/config"
	"github.com/devrando/devrando/internal/errors"
	"github.com/devrando/devrando/internal/fs"
	"github.com/devrando/devrando/internal/version"
)

const longHelp = `devrando scaffolds a project for the current Dev Rando coding challenge.

It fetches a randomized dependency manifest from the challenge API, writes
it as package.json plus devrando.config.json, optionally initializes a git
repository, and optionally force-installs the dependencies (the random set
is not guaranteed to resolve cleanly; that is the challenge).

Without flags the run is interactive. Pass --name together with
--git/--no-git and --install/--no-install, or --yes, for a scripted run.`

// Execute builds the root command, runs it with args, and normalizes
// cobra's own errors (unknown flags and the like) to E_USAGE.
func Execute(args []string, stdout, stderr io.Writer) error {
	root := NewRootCommand(stdout, stderr)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		if errors.GetCode(err) == "" {
			return errors.Wrap(errors.EUsage, err.Error(), err)
		}
		return err
	}
	return nil
}

// NewRootCommand builds the devrando root command.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var (
		name      string
		git       bool
		noGit     bool
		install   bool
		noInstall bool
		yes       bool
		apiURL    string
		rcPath    string
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:           "devrando",
		Short:         "Scaffold a Dev Rando coding challenge project",
		Long:          longHelp,
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

			if rcPath == "" {
				rcPath = config.DefaultRCPath()
			}
			cfg, err := config.Load(fs.NewRealFS(), rcPath)
			if err != nil {
				return err
			}
			if apiURL != "" {
				cfg.APIBaseURL = apiURL
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			opts := Options{
				Name:    name,
				Git:     triState(cmd, "git", git, "no-git", noGit),
				Install: triState(cmd, "install", install, "no-install", noInstall),
				Yes:     yes,
			}

			svc := NewService(cfg, stdout, log)
			return svc.Run(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&name, "name", "n", "", "project directory name (skips the name prompt)")
	f.BoolVar(&git, "git", false, "initialize a git repository")
	f.BoolVar(&noGit, "no-git", false, "skip the git repository")
	f.BoolVar(&install, "install", false, "install dependencies after scaffolding")
	f.BoolVar(&noInstall, "no-install", false, "skip the dependency install")
	f.BoolVarP(&yes, "yes", "y", false, "accept all defaults, no prompts")
	f.StringVar(&apiURL, "api-url", "", "override the challenge API base URL")
	f.StringVar(&rcPath, "rc", "", "path to the rc file (default ~/.devrando.yaml)")
	f.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.MarkFlagsMutuallyExclusive("git", "no-git")
	cmd.MarkFlagsMutuallyExclusive("install", "no-install")

	return cmd
}

// triState turns a --flag/--no-flag pair into nil (unset), true, or false.
func triState(cmd *cobra.Command, yesName string, yesVal bool, noName string, noVal bool) *bool {
	switch {
	case cmd.Flags().Changed(noName) && noVal:
		f := false
		return &f
	case cmd.Flags().Changed(yesName):
		v := yesVal
		return &v
	default:
		return nil
	}
}
