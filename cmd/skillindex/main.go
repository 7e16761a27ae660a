// Package main is the entry point for the skillindex CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/skillindex/cmd/skillindex/commands"
	"github.com/thoreinstein/skillindex/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if s := errors.Suggestion(err); s != "" {
			fmt.Fprintf(os.Stderr, "Suggestion: %s\n", s)
		}
		os.Exit(errors.Code(err))
	}
}
