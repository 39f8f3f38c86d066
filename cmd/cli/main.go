// Package main is the entry point for the jobtrack CLI.
package main

import (
	"os"

	"jobtrack/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
