// Package main provides the entry point for the cs111 CLI.
package main

import (
	"os"

	"github.com/justinvassantachart/cs111-interactive-sub002/cmd/cs111/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
