package doccheck

import (
	"github.com/letterlint/letterlint/internal/config"
	"github.com/letterlint/letterlint/internal/normalize"
)

// LongParagraphs returns the word counts of paragraphs exceeding the
// configured limit, in document order. Wall-of-text paragraphs are
// reported as metrics rather than a flag; the fix (split the
// paragraph) is obvious from the counts alone.
func LongParagraphs(normalized string, cfg *config.Config) []int {
	var long []int
	for _, p := range normalize.Paragraphs(normalized) {
		if n := normalize.WordCount(p); n > cfg.LongParagraphWords {
			long = append(long, n)
		}
	}
	return long
}
