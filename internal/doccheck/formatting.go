package doccheck

import (
	"strings"

	"github.com/letterlint/letterlint/internal/model"
)

// Formatting inspects the ORIGINAL content for mechanical
// inconsistencies: doubled spaces, trailing whitespace, mixed quote
// styles, mixed dash styles. Any one of them raises the flag; the
// reasons record which.
func Formatting(original string) *model.Flag {
	doubleSpaces := strings.Contains(original, "  ")
	trailing := hasTrailingWhitespace(original)
	mixedQuotes := hasMixedQuotes(original)
	mixedDashes := countDashStyles(original) > 1

	if !doubleSpaces && !trailing && !mixedQuotes && !mixedDashes {
		return nil
	}

	return &model.Flag{
		Tag: model.TagFormattingIssues,
		Reasons: model.Reasons{
			"double_spaces":       doubleSpaces,
			"trailing_whitespace": trailing,
			"mixed_quotes":        mixedQuotes,
			"mixed_dashes":        mixedDashes,
		},
	}
}

// hasTrailingWhitespace reports whether any line ends in a space or tab.
func hasTrailingWhitespace(s string) bool {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasSuffix(line, " ") || strings.HasSuffix(line, "\t") {
			return true
		}
	}
	return false
}

// hasMixedQuotes reports whether straight and curly quotes appear in the
// same document. Either style alone is consistent; the mix is the issue.
func hasMixedQuotes(s string) bool {
	straight := strings.ContainsAny(s, `"'`)
	curly := strings.ContainsAny(s, "“”‘’")
	return straight && curly
}

// countDashStyles counts how many dash conventions the document uses.
// A hyphen only counts as a dash when surrounded by spaces; hyphenated
// compounds ("well-known") are not a dash style.
func countDashStyles(s string) int {
	styles := 0
	if strings.Contains(s, " - ") {
		styles++
	}
	if strings.ContainsRune(s, '–') { // en dash
		styles++
	}
	if strings.ContainsRune(s, '—') { // em dash
		styles++
	}
	return styles
}
