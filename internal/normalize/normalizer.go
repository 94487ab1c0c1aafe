package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Block-level HTML elements that become line breaks during normalization.
// Inline elements (a, em, strong, span, ...) are stripped without adding
// whitespace so words don't get split mid-sentence.
var blockElements = map[string]bool{
	"p":          true,
	"div":        true,
	"br":         true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"h5":         true,
	"h6":         true,
	"li":         true,
	"ul":         true,
	"ol":         true,
	"tr":         true,
	"table":      true,
	"blockquote": true,
	"section":    true,
	"article":    true,
	"header":     true,
	"footer":     true,
	"hr":         true,
}

// Elements whose text content is never prose and is dropped entirely.
var skippedElements = map[string]bool{
	"script": true,
	"style":  true,
	"head":   true,
}

var (
	// spaceRuns collapses runs of spaces and tabs within a line.
	spaceRuns = regexp.MustCompile(`[ \t]+`)

	// blankLineRuns collapses three or more consecutive newlines into a
	// single blank line, so repeated empty paragraphs don't inflate
	// paragraph counts.
	blankLineRuns = regexp.MustCompile(`\n{3,}`)
)

// Normalize converts raw, optionally-HTML content into plain text for
// analysis. Block-level tags become line breaks, all other tags are
// stripped, entities are decoded, and repeated whitespace is collapsed.
//
// The original input is never modified; annotation runs against the raw
// string, normalization exists only so the checks see clean prose.
// Malformed markup degrades gracefully: the tokenizer emits whatever
// text it can recover, and there is no error path.
//
// Design decision: We use golang.org/x/net/html's tokenizer rather than
// regex tag-stripping because it handles malformed markup (unclosed
// tags, attributes containing ">") correctly, and it decodes entities
// for free. The decoded set is a superset of the fixed entity list the
// checks rely on (&nbsp; &amp; &lt; &gt; &quot; &#39;), which only makes
// the analyzed text cleaner.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(raw))

	z := html.NewTokenizer(strings.NewReader(raw))
	skipDepth := 0

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// io.EOF or a parse failure; either way we keep what we have.
			break
		}

		switch tt {
		case html.TextToken:
			if skipDepth == 0 {
				// Text() already unescapes entities.
				b.Write(z.Text())
			}
		case html.StartTagToken, html.SelfClosingTagToken, html.EndTagToken:
			name, _ := z.TagName()
			tag := strings.ToLower(string(name))
			if skippedElements[tag] {
				switch tt {
				case html.StartTagToken:
					skipDepth++
				case html.EndTagToken:
					if skipDepth > 0 {
						skipDepth--
					}
				}
				continue
			}
			if blockElements[tag] {
				b.WriteByte('\n')
			}
		}
	}

	return collapseWhitespace(b.String())
}

// collapseWhitespace trims each line, collapses in-line whitespace runs,
// and reduces repeated blank lines to a single one.
func collapseWhitespace(s string) string {
	// NBSP survives entity decoding as U+00A0; fold it into a plain space
	// before collapsing.
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.ReplaceAll(s, "\r\n", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRuns.ReplaceAllString(line, " "))
	}
	s = strings.Join(lines, "\n")
	s = blankLineRuns.ReplaceAllString(s, "\n\n")

	return strings.TrimSpace(s)
}

// wordPattern matches prose tokens: runs of letters, digits, apostrophes,
// and interior hyphens.
var wordPattern = regexp.MustCompile(`[A-Za-z0-9][A-Za-z0-9'\-]*`)

// Words tokenizes text into prose words. Used for word counts and the
// per-word heuristics; this is deliberately a regex, not a linguistic
// tokenizer.
func Words(text string) []string {
	return wordPattern.FindAllString(text, -1)
}

// WordCount returns the number of prose words in text.
func WordCount(text string) int {
	return len(Words(text))
}

// Paragraphs splits normalized text into paragraphs on blank lines,
// dropping empty segments.
func Paragraphs(normalized string) []string {
	parts := strings.Split(normalized, "\n\n")
	paragraphs := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}
