// Package main is the entry point for the commission-engine CLI.
package main

import (
	"os"

	"commission-engine/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
