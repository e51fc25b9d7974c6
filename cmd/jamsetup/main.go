package main

import (
	"os"

	"github.com/jammission/jamsetup/internal/bootstrap"
	"github.com/jammission/jamsetup/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// Forward the failing tool's own exit status; local failures
		// (missing manifest and friends) exit 1.
		os.Exit(bootstrap.ExitCodeFor(err))
	}
}
