package annotate

import (
	"regexp"
	"strings"

	"github.com/letterlint/letterlint/internal/model"
)

// minFuzzyWords is the sentence word count below which the fuzzy
// fallback is skipped. With fewer words the head/tail pattern
// degenerates to "match almost anything", and a wrong wrap is worse
// than none.
const minFuzzyWords = 5

// Annotator wraps flagged sentences of the ORIGINAL content in
// <tag>...</tag> markers, one sentence at a time, in segmentation
// order. The content accumulates annotations as it goes: each Apply
// call searches the already partially annotated string.
//
// An Annotator lives for exactly one analysis pass.
type Annotator struct {
	// content is the original input, progressively annotated.
	content string

	// seen records sentence texts already annotated, so a sentence that
	// recurs verbatim in the document is wrapped only once.
	seen map[string]bool
}

// New creates an Annotator over the original content.
func New(original string) *Annotator {
	return &Annotator{
		content: original,
		seen:    make(map[string]bool),
	}
}

// Apply wraps the sentence with the top-priority finding's tag.
// The report's tag set is derived elsewhere; Apply only ever inserts a
// single tag per sentence — never nested tags.
//
// Matching is exact-substring first, fuzzy second. When neither matches
// (normalization changed the text too much, or an earlier annotation
// split the span) the sentence is silently left unannotated: a missed
// wrap is recoverable, a wrong one is not.
func (a *Annotator) Apply(sentence string, findings []model.Finding) {
	top, ok := model.TopFinding(findings)
	if !ok {
		return
	}

	trimmed := strings.TrimSpace(sentence)
	if trimmed == "" || a.seen[trimmed] {
		return
	}
	a.seen[trimmed] = true

	tag := top.Tag.String()

	// Exact match against the (possibly already annotated) content.
	if idx := strings.Index(a.content, trimmed); idx >= 0 {
		a.content = a.content[:idx] +
			"<" + tag + ">" + trimmed + "</" + tag + ">" +
			a.content[idx+len(trimmed):]
		return
	}

	// Fuzzy fallback: anchor on the first two and last two words with a
	// non-greedy gap between them. This survives whitespace and inline
	// markup differences introduced by normalization.
	re, ok := fuzzyPattern(trimmed)
	if !ok {
		return
	}
	loc := re.FindStringIndex(a.content)
	if loc == nil {
		return
	}
	match := a.content[loc[0]:loc[1]]
	a.content = a.content[:loc[0]] +
		"<" + tag + ">" + match + "</" + tag + ">" +
		a.content[loc[1]:]
}

// Content returns the accumulated annotated string.
func (a *Annotator) Content() string {
	return a.content
}

// fuzzyPattern builds the head/tail regex for a sentence. Returns false
// for sentences too short to anchor reliably.
func fuzzyPattern(sentence string) (*regexp.Regexp, bool) {
	words := strings.Fields(sentence)
	if len(words) < minFuzzyWords {
		return nil, false
	}

	head := regexp.QuoteMeta(words[0]) + `\s+` + regexp.QuoteMeta(words[1])
	tail := regexp.QuoteMeta(words[len(words)-2]) + `\s+` + regexp.QuoteMeta(words[len(words)-1])

	re, err := regexp.Compile(`(?s)` + head + `.*?` + tail)
	if err != nil {
		// QuoteMeta makes this unreachable, but a failed compile must
		// degrade to "no annotation", not a panic.
		return nil, false
	}
	return re, true
}
