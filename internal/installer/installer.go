// Package installer spawns the package manager to install the declared
// dependencies, forcing installation despite version-resolution conflicts.
package installer

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	osexec "os/exec"
	"os/signal"
	"strings"

	"github.com/devrando/devrando/internal/errors"
)

// ForceArgs is the install invocation. The randomized dependency set is not
// guaranteed to be mutually compatible at minor/patch granularity, so
// forcing past version-resolution rejection is part of the challenge.
var ForceArgs = []string{"install", "--force"}

// Install runs `bin args...` with stdout discarded and stderr captured for
// diagnostics. An interrupt received while the child runs is forwarded to
// it and reported as E_INSTALL_INTERRUPTED, which the orchestrator treats
// like any install failure. The interrupt handler lives exactly as long as
// the child: registered after Start, released on every exit path.
func Install(ctx context.Context, bin string, args ...string) error {
	cmd := osexec.CommandContext(ctx, bin, args...)
	cmd.Stdout = io.Discard
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return errors.Wrap(errors.EInstallFailed, "could not start "+bin, err)
	}

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case err := <-done:
		return installResult(bin, err, &stderr)
	case <-interrupts:
		cmd.Process.Signal(os.Interrupt)
		<-done
		return errors.New(errors.EInstallInterrupted, "installation interrupted")
	}
}

func installResult(bin string, err error, stderr *bytes.Buffer) error {
	if err == nil {
		return nil
	}
	var exitErr *osexec.ExitError
	if stderrors.As(err, &exitErr) {
		return errors.WrapWithDetails(errors.EInstallFailed,
			fmt.Sprintf("%s exited with code %d", bin, exitErr.ExitCode()),
			err,
			map[string]string{"stderr": tail(stderr.String(), 1000)})
	}
	return errors.Wrap(errors.EInstallFailed, "waiting on "+bin+" failed", err)
}

// tail keeps the last n bytes of diagnostics; npm error output can be huge.
func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
