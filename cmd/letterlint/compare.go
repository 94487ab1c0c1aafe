package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/letterlint/letterlint/internal/config"
	"github.com/letterlint/letterlint/internal/engine"
	"github.com/letterlint/letterlint/internal/log"
	"github.com/letterlint/letterlint/internal/model"
)

// NewCompareCmd creates the compare command.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <before-file> <after-file>",
		Short: "Compare the quality of two drafts",
		Long: `Compare analyzes two versions of a draft and reports how the quality
changed between them: tags resolved, tags introduced, and movement in
the document-level metrics.

Examples:
  # Compare a draft before and after editing
  letterlint compare draft-v1.txt draft-v2.txt`,
		Args: cobra.ExactArgs(2),
		RunE: runCompareCmd,
	}

	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .letterlint in current, XDG config, or home directory)")

	return cmd
}

// runCompareCmd executes the compare command.
func runCompareCmd(cmd *cobra.Command, args []string) error {
	cfg := config.NewConfig()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if foundPath := config.FindConfigFile(configPath); foundPath != "" {
		file, err := config.LoadConfigFile(foundPath)
		if err != nil {
			return fmt.Errorf("failed to load config file %s: %w", foundPath, err)
		}
		cfg.ApplyFile(file)
	} else if configPath != "" {
		return fmt.Errorf("configuration file not found: %s", configPath)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)

	eng := engine.New(cfg, engine.WithLogger(logger))

	before, after := args[0], args[1]
	results := make([]*model.Result, 2)
	for i, path := range []string{before, after} {
		data, err := os.ReadFile(path) //nolint:gosec // User-provided input path is intentional
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		results[i], err = eng.Analyze(cmd.Context(), string(data))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	writeComparison(cmd, before, after, results[0].Report, results[1].Report)
	return nil
}

// writeComparison prints the before/after differences.
func writeComparison(cmd *cobra.Command, before, after string, a, b *model.AnalysisReport) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Comparing %s -> %s\n\n", before, after)

	fmt.Fprintf(out, "Flagged sentences: %d -> %d (%s)\n",
		a.FlaggedSentences(), b.FlaggedSentences(),
		deltaString(b.FlaggedSentences()-a.FlaggedSentences()))
	fmt.Fprintf(out, "Readability grade: %.2f -> %.2f\n",
		a.Global.Readability.FleschKincaidGrade,
		b.Global.Readability.FleschKincaidGrade)
	fmt.Fprintf(out, "Words:             %d -> %d\n\n",
		a.Global.WordCount, b.Global.WordCount)

	beforeCounts := a.TagCounts()
	afterCounts := b.TagCounts()

	tags := make(map[model.Tag]bool)
	for t := range beforeCounts {
		tags[t] = true
	}
	for t := range afterCounts {
		tags[t] = true
	}
	if len(tags) == 0 {
		fmt.Fprintln(out, "No flagged sentences in either draft.")
		return
	}

	sorted := make([]model.Tag, 0, len(tags))
	for t := range tags {
		sorted = append(sorted, t)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	fmt.Fprintln(out, "Tag counts:")
	for _, t := range sorted {
		was, now := beforeCounts[t], afterCounts[t]
		marker := " "
		switch {
		case now < was:
			marker = "-"
		case now > was:
			marker = "+"
		}
		fmt.Fprintf(out, "  %s %-24s %d -> %d\n", marker, t, was, now)
	}
}

// deltaString formats a signed change for display.
func deltaString(d int) string {
	if d > 0 {
		return fmt.Sprintf("+%d", d)
	}
	return fmt.Sprintf("%d", d)
}
