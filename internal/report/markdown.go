package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/letterlint/letterlint/internal/model"
)

// MarkdownWriter outputs results in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the result in Markdown format.
func (w *MarkdownWriter) Write(result *model.Result) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, result.Report)
	w.writeSummary(md, result.Report)
	w.writeSentences(md, result.Report)
	w.writeGlobal(md, &result.Report.Global)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with document metrics.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H1("Letterlint Report")
	md.PlainText("")

	g := report.Global
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Words", strconv.Itoa(g.WordCount)},
			{"Sentences", strconv.Itoa(g.SentenceCount)},
			{"Flagged Sentences", strconv.Itoa(report.FlaggedSentences())},
			{"Links", strconv.Itoa(g.LinkCount)},
			{"Readability Grade", fmt.Sprintf("%.2f", g.Readability.FleschKincaidGrade)},
		},
	})
	md.PlainText("")
}

// writeSummary writes the per-tag counts with an alert sized to how
// much of the document is flagged.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H2("Tag Summary")
	md.PlainText("")

	counts := report.TagCounts()
	if len(counts) == 0 {
		md.Tip("No quality issues detected in any sentence.")
		md.PlainText("")
		return
	}

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

	rows := make([][]string, len(tags))
	for i, t := range tags {
		rows[i] = []string{tagTitle(t), strconv.Itoa(counts[t])}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Tag", "Sentences"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writePieChart(md, tags, counts)
	w.writeAlert(md, report)
}

// writePieChart writes a mermaid pie chart of the tag distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, tags []model.Tag, counts map[model.Tag]int) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Tag Distribution"),
		piechart.WithShowData(true),
	)

	for _, t := range tags {
		chart.LabelAndIntValue(tagTitle(t), uint64(counts[t]))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an alert scaled to the flagged share of the document.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.AnalysisReport) {
	flagged := report.FlaggedSentences()
	total := report.Global.SentenceCount

	switch {
	case total > 0 && flagged*2 >= total:
		md.Warningf(
			"%d of %d sentences flagged. This draft needs substantial revision before sending.",
			flagged, total,
		)
	case flagged > 0:
		md.Notef("%d of %d sentences flagged.", flagged, total)
	default:
		md.Tip("No flagged sentences.")
	}
	md.PlainText("")
}

// writeSentences writes the flagged sentences table.
func (w *MarkdownWriter) writeSentences(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H2("Flagged Sentences")
	md.PlainText("")

	if report.FlaggedSentences() == 0 {
		md.PlainText("No flagged sentences.")
		md.PlainText("")
		return
	}

	var rows [][]string
	for i, s := range report.PerSentence {
		if len(s.Tags) == 0 {
			continue
		}
		names := make([]string, len(s.Tags))
		for j, t := range s.Tags {
			names[j] = "`" + t.String() + "`"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			truncateString(s.Sentence, 80),
			strings.Join(names, ", "),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"#", "Sentence", "Tags"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeGlobal writes the document-level flags section.
func (w *MarkdownWriter) writeGlobal(md *markdown.Markdown, g *model.GlobalMetrics) {
	md.H2("Document Flags")
	md.PlainText("")

	if len(g.Flags) == 0 {
		md.PlainText("No document-level flags.")
		md.PlainText("")
		return
	}

	names := make([]string, len(g.Flags))
	for i, f := range g.Flags {
		names[i] = tagTitle(f.Tag)
	}
	md.BulletList(names...)
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [letterlint](https://github.com/letterlint/letterlint)*")
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
