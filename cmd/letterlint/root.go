// Package main provides the entry point for the letterlint CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for letterlint.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "letterlint",
		Short: "Content quality linter for newsletters",
		Long: `Letterlint analyzes newsletter-style text and flags quality issues:
spam-like language, jargon and complexity, filler, grammar and spelling
problems, vague claims, formatting inconsistencies, redundancy, and
readability.

It produces an annotated copy of the input with flagged sentences wrapped
in category tags, plus a structured report of per-sentence and
document-level findings.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewLintCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
