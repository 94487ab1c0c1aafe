package normalize

import (
	"regexp"
	"strings"
)

// sentencePattern matches one sentence: a run of non-terminal characters
// followed by a run of terminal punctuation, or a trailing run with no
// terminator (end-of-text is an implicit boundary).
var sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]+|[^.!?]+$`)

// Sentences splits normalized text into its ordered sentence sequence.
// Boundaries are runs of '.', '!', '?' with the trailing punctuation
// kept attached to the sentence; segments are trimmed and empty ones
// dropped. The result is an eagerly-computed slice, so callers can
// iterate it as often as they like.
//
// Known limitation, kept deliberately: abbreviations ("e.g."), decimals
// ("3.5"), and quoted punctuation all split. Annotation and the
// per-sentence report both key off these exact boundaries, so changing
// the segmentation changes the whole output contract.
func Sentences(normalized string) []string {
	if normalized == "" {
		return nil
	}

	// Newlines act as plain whitespace for segmentation. A heading with
	// no terminal punctuation therefore merges into the sentence that
	// follows it.
	flat := strings.NewReplacer("\n", " ", "\t", " ").Replace(normalized)

	matches := sentencePattern.FindAllString(flat, -1)
	sentences := make([]string, 0, len(matches))
	for _, m := range matches {
		m = strings.TrimSpace(m)
		if m == "" || isOnlyPunctuation(m) {
			continue
		}
		sentences = append(sentences, m)
	}
	return sentences
}

// isOnlyPunctuation reports whether the segment has no word characters,
// e.g. a stray "..." left between two terminators.
func isOnlyPunctuation(s string) bool {
	return !wordPattern.MatchString(s)
}
