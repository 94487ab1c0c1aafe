package engine

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/letterlint/letterlint/internal/annotate"
	"github.com/letterlint/letterlint/internal/checks"
	"github.com/letterlint/letterlint/internal/config"
	"github.com/letterlint/letterlint/internal/doccheck"
	"github.com/letterlint/letterlint/internal/model"
	"github.com/letterlint/letterlint/internal/normalize"
)

// ErrEmptyContent is returned when the input contains no analyzable
// text. Whitespace-only and markup-only documents count as empty.
var ErrEmptyContent = errors.New("engine: content is empty")

// Engine runs the full analysis over one document: normalization,
// segmentation, per-sentence checks, annotation, and the document-level
// analyzers, assembled into a single result.
//
// An Engine is safe for concurrent use; all per-document state lives in
// the Analyze call.
type Engine struct {
	// cfg holds thresholds and phrase lists shared by all checks.
	cfg *config.Config

	// runner executes the per-sentence checks in registration order.
	runner *checks.Runner

	// logger is used for structured stage logging.
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets a custom logger for the engine.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an Engine with the given configuration.
func New(cfg *config.Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:    cfg,
		runner: checks.NewRunner(),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = slog.Default()
	}

	return e
}

// Analyze runs the full analysis over one document and returns the
// annotated content plus the structured report.
//
// The stages run in a fixed order; the context is checked between
// stages rather than during them, because each stage is pure CPU work
// that finishes quickly. The per-sentence stage guarantees exactly one
// report entry per segmented sentence, flagged or not.
func (e *Engine) Analyze(ctx context.Context, content string) (*model.Result, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	normalized := normalize.Normalize(content)
	if normalized == "" {
		return nil, ErrEmptyContent
	}
	e.logger.Debug("normalized content", "bytes", len(normalized))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sentences := normalize.Sentences(normalized)
	e.logger.Debug("segmented content", "sentences", len(sentences))

	annotator := annotate.New(content)
	perSentence := make([]model.SentenceResult, 0, len(sentences))

	for _, sentence := range sentences {
		findings := e.runner.Run(sentence, e.cfg)

		result := model.SentenceResult{
			Sentence: sentence,
			Tags:     model.TagSet(findings),
		}
		if len(findings) > 0 {
			result.Reasons = make(map[model.Tag]model.Reasons, len(findings))
			for _, f := range findings {
				result.Reasons[f.Tag] = f.Reasons
			}
		}
		perSentence = append(perSentence, result)

		if e.cfg.Annotate {
			annotator.Apply(sentence, findings)
		}
	}
	e.logger.Debug("per-sentence checks complete",
		"sentences", len(sentences),
		"flagged", flaggedCount(perSentence),
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	global := e.analyzeDocument(content, normalized, sentences)
	e.logger.Debug("document analyzers complete", "flags", len(global.Flags))

	annotated := content
	if e.cfg.Annotate {
		annotated = annotator.Content()
	}

	return &model.Result{
		Annotated: annotated,
		Report: &model.AnalysisReport{
			PerSentence: perSentence,
			Global:      global,
		},
	}, nil
}

// analyzeDocument runs the document-level analyzers and assembles the
// global metrics section.
func (e *Engine) analyzeDocument(original, normalized string, sentences []string) model.GlobalMetrics {
	wordCount := normalize.WordCount(normalized)

	metrics := model.GlobalMetrics{
		WordCount:     wordCount,
		SentenceCount: len(sentences),
	}

	links, density, linkFlag := doccheck.LinkDensity(original, wordCount, e.cfg)
	metrics.LinkCount = links
	metrics.LinkDensityPer100Words = density
	if linkFlag != nil {
		metrics.Flags = append(metrics.Flags, *linkFlag)
	}

	if fmtFlag := doccheck.Formatting(original); fmtFlag != nil {
		metrics.Flags = append(metrics.Flags, *fmtFlag)
	}

	if _, redundancyFlag := doccheck.Redundancy(sentences, e.cfg); redundancyFlag != nil {
		metrics.Flags = append(metrics.Flags, *redundancyFlag)
	}

	// Readability runs over the original content's words; the other word
	// metrics use the normalized text.
	readability, readabilityFlag := doccheck.Readability(original, len(sentences), e.cfg)
	metrics.Readability = readability
	if readabilityFlag != nil {
		metrics.Flags = append(metrics.Flags, *readabilityFlag)
	}

	metrics.LongParagraphs = doccheck.LongParagraphs(normalized, e.cfg)

	return metrics
}

// flaggedCount counts sentences with at least one tag.
func flaggedCount(results []model.SentenceResult) int {
	n := 0
	for _, r := range results {
		if len(r.Tags) > 0 {
			n++
		}
	}
	return n
}
