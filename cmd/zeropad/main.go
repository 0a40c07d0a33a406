// Command zeropad zero-pads the first number in every file name of a
// directory so that names sort numerically.
package main

import (
	"fmt"
	"os"

	"github.com/backmassage/zeropad/internal/cli"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cmd := cli.NewRootCommand(fmt.Sprintf("%s (%s)", version, commit))
	if err := cmd.Execute(); err != nil {
		// Pipeline failures are already logged; flag and setup errors are not.
		if !cli.Reported(err) {
			fmt.Fprintf(os.Stderr, "zeropad: %v\n", err)
		}
		return 1
	}
	return 0
}
