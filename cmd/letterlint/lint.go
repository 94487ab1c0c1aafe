package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/letterlint/letterlint/internal/config"
	"github.com/letterlint/letterlint/internal/engine"
	"github.com/letterlint/letterlint/internal/log"
	"github.com/letterlint/letterlint/internal/model"
	"github.com/letterlint/letterlint/internal/report"
)

// NewLintCmd creates the lint command.
func NewLintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint [files...]",
		Short: "Analyze newsletter content for quality issues",
		Long: `Lint analyzes newsletter-style text (plain text or HTML) and reports
quality issues per sentence and per document.

With no file arguments (or a single "-"), content is read from stdin.

Examples:
  # Lint a draft from stdin
  cat draft.txt | letterlint lint

  # Lint one or more files
  letterlint lint draft.html followup.txt

  # Output JSON report
  letterlint lint --json draft.txt

  # Write a Markdown report to a file
  letterlint lint --markdown -o report.md draft.txt

  # Analyze many files concurrently
  letterlint lint --batch 8 drafts/*.txt

Configuration file (.letterlint) example:
  max_sentence_words: 18
  readability_threshold: 8
  hedge_words:
    - might
    - perhaps
  grammar:
    enabled: false`,
		Args: cobra.ArbitraryArgs,
		RunE: runLintCmd,
	}

	// Analysis flags
	cmd.Flags().Bool("no-annotate", false,
		"Skip annotating the content with category tags")

	// Batch flags
	cmd.Flags().IntP("batch", "b", 1,
		"Number of files analyzed concurrently")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .letterlint in current, XDG config, or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().BoolP("annotated", "a", false,
		"Include the annotated content in text output")

	cmd.MarkFlagsMutuallyExclusive("json", "markdown")

	return cmd
}

// lintOptions holds the lint command's output settings, separate from
// the analysis configuration.
type lintOptions struct {
	jsonReport     bool
	markdownReport bool
	outputFile     string
	showAnnotated  bool
	batchSize      int
}

// runLintCmd executes the lint command.
func runLintCmd(cmd *cobra.Command, args []string) error {
	cfg, opts, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	verbose := getVerboseFlag(cmd)
	logger := log.NewLogger(os.Stderr, verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runLint(ctx, cfg, opts, args, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates the analysis configuration and output options
// from cobra command flags and the configuration file.
func buildConfig(cmd *cobra.Command) (*config.Config, *lintOptions, error) {
	cfg := config.NewConfig()
	opts := &lintOptions{}

	var err error

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, err
	}

	// Load overrides from the config file.
	// If the user explicitly named a path, a missing file is an error.
	// During the default search a missing file just means defaults.
	explicitConfigPath := configPath != ""
	foundPath := config.FindConfigFile(configPath)

	if foundPath != "" {
		file, err := config.LoadConfigFile(foundPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load config file %s: %w", foundPath, err)
		}
		cfg.ApplyFile(file)
	} else if explicitConfigPath {
		return nil, nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	noAnnotate, err := cmd.Flags().GetBool("no-annotate")
	if err != nil {
		return nil, nil, err
	}
	if noAnnotate {
		cfg.Annotate = false
	}

	opts.batchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, nil, err
	}

	opts.jsonReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, nil, err
	}

	opts.markdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, nil, err
	}

	opts.outputFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, nil, err
	}

	opts.showAnnotated, err = cmd.Flags().GetBool("annotated")
	if err != nil {
		return nil, nil, err
	}

	return cfg, opts, nil
}

// runLint analyzes the inputs and writes reports.
func runLint(ctx context.Context, cfg *config.Config, opts *lintOptions, args []string, logger *slog.Logger) error {
	docs, err := readDocuments(args)
	if err != nil {
		return err
	}

	eng := engine.New(cfg, engine.WithLogger(logger))

	// Use the batch processor for concurrent analysis of multiple files.
	if len(docs) > 1 && opts.batchSize > 1 {
		return runBatchLint(ctx, eng, docs, opts, logger)
	}

	for _, doc := range docs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		result, err := eng.Analyze(ctx, doc.Content)
		if err != nil {
			return fmt.Errorf("%s: %w", doc.Name, err)
		}

		if err := outputResult(opts, doc.Name, len(docs) > 1, result); err != nil {
			return err
		}
	}

	return nil
}

// runBatchLint analyzes multiple documents concurrently and writes
// reports in input order.
func runBatchLint(ctx context.Context, eng *engine.Engine, docs []engine.Document, opts *lintOptions, logger *slog.Logger) error {
	bp := engine.NewBatchProcessor(eng,
		engine.WithConcurrency(opts.batchSize),
		engine.WithBatchLogger(logger),
	)

	results, err := bp.ProcessBatch(ctx, docs)
	if err != nil {
		return err
	}

	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "Analysis error for %s: %v\n", r.Name, r.Err)
			continue
		}
		if err := outputResult(opts, r.Name, true, r.Result); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed to analyze", failed, len(docs))
	}
	return nil
}

// readDocuments loads the inputs. No arguments (or a single "-") means
// stdin.
func readDocuments(args []string) ([]engine.Document, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return []engine.Document{{Name: "stdin", Content: string(data)}}, nil
	}

	docs := make([]engine.Document, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path) //nolint:gosec // User-provided input path is intentional
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		docs = append(docs, engine.Document{Name: path, Content: string(data)})
	}
	return docs, nil
}

// outputResult writes one document's report in the requested format.
// With multiple inputs, text output gets a per-file banner and file
// output appends instead of truncating previous documents.
func outputResult(opts *lintOptions, name string, multi bool, result *model.Result) error {
	output, closeFn, err := openOutput(opts.outputFile, multi)
	if err != nil {
		return err
	}
	defer closeFn()

	if multi && !opts.jsonReport {
		fmt.Fprintf(output, "==> %s\n", name)
	}

	writer := selectWriter(opts, output)
	_, err = writer.Write(result)
	return err
}

// selectWriter picks the report writer for the requested format.
func selectWriter(opts *lintOptions, output io.Writer) report.Writer {
	if opts.jsonReport {
		return report.NewVersionedJSONWriter(output, getVersion(), report.WithPrettyPrint())
	}
	if opts.markdownReport {
		return report.NewMarkdownWriter(output)
	}
	return report.NewSimpleWriter(output,
		report.WithAnnotated(opts.showAnnotated),
	)
}

// openOutput opens the report destination: stdout by default, otherwise
// the named file (parent directories created as needed).
func openOutput(path string, appendMode bool) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if appendMode {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}

	f, err := os.OpenFile(path, flags, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil //nolint:errcheck // Best effort close
}
