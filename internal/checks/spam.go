package checks

import (
	"strings"
	"unicode"

	"github.com/letterlint/letterlint/internal/config"
	"github.com/letterlint/letterlint/internal/model"
)

// SpamCheck flags promotional, spam-filter-bait language. Three signals,
// any one sufficient: enough distinct spam-phrase hits, too many
// exclamation marks, or too many ALL-CAPS words.
type SpamCheck struct{}

// NewSpamCheck creates a SpamCheck.
func NewSpamCheck() *SpamCheck {
	return &SpamCheck{}
}

// Name returns the check name.
func (c *SpamCheck) Name() string {
	return "spam"
}

// Run inspects one sentence for spam signals.
func (c *SpamCheck) Run(sentence string, cfg *config.Config) (model.Finding, bool) {
	lower := strings.ToLower(sentence)

	matched := matchPhrases(lower, cfg.SpamPhrases)
	exclamations := strings.Count(sentence, "!")
	caps := countCapsWords(sentence)

	if len(matched) < cfg.SpamThreshold &&
		exclamations <= cfg.MaxExclamations &&
		caps <= cfg.MaxCapsWords {
		return model.Finding{}, false
	}

	return model.Finding{
		Tag: model.TagSpamWords,
		Reasons: model.Reasons{
			"spam_hits":    len(matched),
			"spam_phrases": matched,
			"exclamations": exclamations,
			"caps_words":   caps,
		},
	}, true
}

// countCapsWords counts ALL-CAPS words of three or more letters.
// Acronym-sized shouting ("FREE", "NOW") is the spam signal; short
// tokens like "US" or "AI" are not.
func countCapsWords(sentence string) int {
	count := 0
	for _, w := range strings.Fields(sentence) {
		letters := 0
		allUpper := true
		for _, r := range w {
			if !unicode.IsLetter(r) {
				continue
			}
			letters++
			if !unicode.IsUpper(r) {
				allUpper = false
				break
			}
		}
		if allUpper && letters >= 3 {
			count++
		}
	}
	return count
}
