package main

import (
	"fmt"
	"os"

	"github.com/strand-db/strand/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()

	if err := cmd.Execute(); err != nil {
		// Expected failures (exit 1) already printed structured output
		// through the formatter; only surface command errors here.
		code := cli.GetExitCode(err)
		if code != cli.ExitFailure {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		}
		os.Exit(code)
	}
}
