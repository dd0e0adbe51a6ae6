// Command devrando scaffolds a project for the current Dev Rando coding
// challenge.
package main

import (
	"os"

	"github.com/devrando/devrando/internal/cli"
	"github.com/devrando/devrando/internal/errors"
)

func main() {
	err := cli.Execute(os.Args[1:], os.Stdout, os.Stderr)
	code := errors.ExitCode(err)
	if err != nil && code != 0 {
		errors.Print(os.Stderr, err)
	}
	os.Exit(code)
}
