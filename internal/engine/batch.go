package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/letterlint/letterlint/internal/model"
	"golang.org/x/sync/errgroup"
)

// Document is one named input for batch analysis. Name is whatever the
// caller uses to identify the input — typically a file path.
type Document struct {
	Name    string
	Content string
}

// BatchResult pairs one document's analysis with its name. Err is set
// when the document failed to analyze; Result is nil in that case.
type BatchResult struct {
	Name   string
	Result *model.Result
	Err    error
}

// BatchProcessor analyzes multiple documents concurrently.
// It uses errgroup to manage goroutines and respect concurrency limits.
//
// Design decision: We use a separate BatchProcessor rather than adding
// batch functionality to Engine because:
// 1. It keeps the Engine focused on single-document analysis
// 2. It allows different batch strategies (e.g., rate limiting)
// 3. It provides cleaner separation of concerns
type BatchProcessor struct {
	// engine runs each document's analysis. The Engine is stateless per
	// call, so one instance is shared across goroutines.
	engine *Engine

	// concurrency is the maximum number of documents analyzed at once.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger

	// results stores completed analyses in input order.
	// Access is synchronized via mutex.
	results []BatchResult
	mu      sync.Mutex
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent analyses.
// Default is 4 if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a BatchProcessor backed by the given engine.
func NewBatchProcessor(engine *Engine, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		engine:      engine,
		concurrency: 4,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch analyzes the documents concurrently and returns results
// in input order. A document that fails to analyze gets its error
// recorded in its BatchResult; other documents still run. The error
// return is non-nil only when the batch itself was cancelled.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, docs []Document) ([]BatchResult, error) {
	bp.logger.Info("starting batch analysis",
		"total_documents", len(docs),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	// Pre-allocate results slice to maintain input order.
	bp.results = make([]BatchResult, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, doc := range docs {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			bp.logger.Debug("analyzing document",
				"name", doc.Name,
				"index", i+1,
				"total", len(docs),
			)

			result, err := bp.engine.Analyze(ctx, doc.Content)

			bp.mu.Lock()
			bp.results[i] = BatchResult{Name: doc.Name, Result: result, Err: err}
			bp.mu.Unlock()

			if err != nil {
				bp.logger.Warn("document analysis failed",
					"name", doc.Name,
					"error", err,
				)
				// The error stays in the BatchResult; other documents
				// should still be analyzed.
				return nil
			}

			return nil
		})
	}

	err := g.Wait()

	bp.logger.Info("batch analysis complete",
		"total_documents", len(docs),
		"elapsed", time.Since(startTime),
	)

	return bp.results, err
}
