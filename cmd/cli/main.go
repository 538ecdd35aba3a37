// Package main is the entry point for the agency-dash CLI.
package main

import (
	"os"

	"agency-dash/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
