// Package main is the entry point for the Signet CLI.
package main

import (
	"os"

	"github.com/mrz1836/signet/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
