// Package vcs initializes a git repository in the freshly materialized
// project directory.
package vcs

import (
	"context"
	"fmt"
	"strings"

	"github.com/devrando/devrando/internal/errors"
	"github.com/devrando/devrando/internal/exec"
	"github.com/devrando/devrando/internal/fs"
)

// IgnoreFile is the ignore-file committed in the initial commit.
const IgnoreFile = ".gitignore"

const (
	ignoreContent = "node_modules\n"
	commitMessage = "Initial commit from Dev Rando"
	defaultBranch = "main"
)

// Init writes the ignore-file and creates a repository with one initial
// commit containing only that file. It runs in the process working
// directory, which the materializer has already moved into the project.
//
// Every failure is wrapped as E_VCS_FAILED; the orchestrator treats it as
// non-fatal and continues without a repository.
func Init(ctx context.Context, cr exec.CommandRunner, fsys fs.FS, gitBin string) error {
	if err := fsys.WriteFile(IgnoreFile, []byte(ignoreContent), 0644); err != nil {
		return errors.Wrap(errors.EVCSFailed, "could not write "+IgnoreFile, err)
	}

	steps := [][]string{
		{"init", "--initial-branch=" + defaultBranch},
		{"add", IgnoreFile},
		{"commit", "-m", commitMessage},
	}

	for _, args := range steps {
		result, err := cr.Run(ctx, gitBin, args, exec.RunOpts{})
		if err != nil {
			return errors.Wrap(errors.EVCSFailed, "could not run "+gitBin+" "+args[0], err)
		}
		if result.ExitCode != 0 {
			msg := fmt.Sprintf("%s %s exited with code %d", gitBin, args[0], result.ExitCode)
			if s := strings.TrimSpace(result.Stderr); s != "" {
				msg += ": " + s
			}
			return errors.New(errors.EVCSFailed, msg)
		}
	}

	return nil
}
