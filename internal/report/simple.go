package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/letterlint/letterlint/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// showClean controls whether unflagged sentences are listed.
	showClean bool

	// verbose enables the raw evidence behind each tag.
	verbose bool

	// showAnnotated appends the annotated content after the report.
	showAnnotated bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowClean configures the writer to list unflagged sentences too.
func WithShowClean(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showClean = show
	}
}

// WithVerbose enables verbose output with the raw evidence per tag.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// WithAnnotated appends the annotated content after the report body.
func WithAnnotated(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showAnnotated = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the result in human-readable format.
func (w *SimpleWriter) Write(result *model.Result) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, result.Report)
	w.writeSummary(&sb, result.Report)
	w.writeSentences(&sb, result.Report)
	w.writeGlobal(&sb, &result.Report.Global)

	if w.showAnnotated {
		w.writeAnnotated(&sb, result.Annotated)
	}

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with document counts.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.AnalysisReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                        LETTERLINT REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	g := report.Global
	sb.WriteString(fmt.Sprintf("Words:     %d\n", g.WordCount))
	sb.WriteString(fmt.Sprintf("Sentences: %d\n", g.SentenceCount))
	sb.WriteString(fmt.Sprintf("Flagged:   %d\n", report.FlaggedSentences()))
	sb.WriteString("\n")
}

// writeSummary writes the per-tag count summary, most frequent first.
func (w *SimpleWriter) writeSummary(sb *strings.Builder, report *model.AnalysisReport) {
	counts := report.TagCounts()
	if len(counts) == 0 {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("TAG SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	tags := make([]model.Tag, 0, len(counts))
	for t := range counts {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool {
		if counts[tags[i]] != counts[tags[j]] {
			return counts[tags[i]] > counts[tags[j]]
		}
		return tags[i] < tags[j]
	})

	for _, t := range tags {
		sb.WriteString(fmt.Sprintf("  %-24s %d\n", tagTitle(t), counts[t]))
	}
	sb.WriteString("\n")
}

// writeSentences writes the flagged sentences with their tags.
func (w *SimpleWriter) writeSentences(sb *strings.Builder, report *model.AnalysisReport) {
	if report.FlaggedSentences() == 0 && !w.showClean {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("SENTENCES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for i, s := range report.PerSentence {
		if len(s.Tags) == 0 {
			if w.showClean {
				sb.WriteString(fmt.Sprintf("  [%d] ok\n", i+1))
			}
			continue
		}

		names := make([]string, len(s.Tags))
		for j, t := range s.Tags {
			names[j] = t.String()
		}
		sb.WriteString(fmt.Sprintf("  [%d] %s\n", i+1, strings.Join(names, ", ")))
		sb.WriteString(fmt.Sprintf("      %s\n", s.Sentence))

		if w.verbose {
			for _, t := range s.Tags {
				sb.WriteString(fmt.Sprintf("      %s: %v\n", t, s.Reasons[t]))
			}
		}
	}
	sb.WriteString("\n")
}

// writeGlobal writes the document-level metrics and flags.
func (w *SimpleWriter) writeGlobal(sb *strings.Builder, g *model.GlobalMetrics) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("DOCUMENT\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  Links:       %d (%.2f per 100 words)\n",
		g.LinkCount, g.LinkDensityPer100Words))
	sb.WriteString(fmt.Sprintf("  Readability: grade %.2f (threshold %.2f)\n",
		g.Readability.FleschKincaidGrade, g.Readability.Threshold))

	if len(g.LongParagraphs) > 0 {
		parts := make([]string, len(g.LongParagraphs))
		for i, n := range g.LongParagraphs {
			parts[i] = fmt.Sprintf("%d", n)
		}
		sb.WriteString(fmt.Sprintf("  Long paragraphs (words): %s\n", strings.Join(parts, ", ")))
	}

	if len(g.Flags) == 0 {
		sb.WriteString("  No document-level flags\n")
	} else {
		for _, f := range g.Flags {
			sb.WriteString(fmt.Sprintf("  [!] %s\n", tagTitle(f.Tag)))
			if w.verbose {
				sb.WriteString(fmt.Sprintf("      %v\n", f.Reasons))
			}
		}
	}
	sb.WriteString("\n")
}

// writeAnnotated writes the annotated content section.
func (w *SimpleWriter) writeAnnotated(sb *strings.Builder, annotated string) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("ANNOTATED CONTENT\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")
	sb.WriteString(annotated)
	if !strings.HasSuffix(annotated, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}
