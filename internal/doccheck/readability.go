package doccheck

import (
	"strings"

	"github.com/letterlint/letterlint/internal/config"
	"github.com/letterlint/letterlint/internal/model"
	"github.com/letterlint/letterlint/internal/normalize"
)

// Readability computes the document's Flesch–Kincaid grade level:
//
//	0.39*(words/sentences) + 11.8*(syllables/word) - 15.59
//
// and flags the document when the grade exceeds the configured
// threshold. An empty document scores zero and never flags.
func Readability(text string, sentenceCount int, cfg *config.Config) (model.Readability, *model.Flag) {
	result := model.Readability{Threshold: cfg.ReadabilityThreshold}

	words := normalize.Words(text)
	if len(words) == 0 || sentenceCount == 0 {
		return result, nil
	}

	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	grade := 0.39*float64(len(words))/float64(sentenceCount) +
		11.8*float64(syllables)/float64(len(words)) - 15.59
	if grade < 0 {
		grade = 0
	}
	result.FleschKincaidGrade = round2(grade)

	if result.FleschKincaidGrade <= cfg.ReadabilityThreshold {
		return result, nil
	}

	return result, &model.Flag{
		Tag: model.TagReadabilityGrade,
		Reasons: model.Reasons{
			"grade":     result.FleschKincaidGrade,
			"threshold": cfg.ReadabilityThreshold,
		},
	}
}

// countSyllables estimates syllables as contiguous vowel groups, with a
// trailing silent "e" discounted when the word has more than one group.
// Floor of one: every word is at least one syllable.
func countSyllables(word string) int {
	word = strings.ToLower(word)

	groups := 0
	inGroup := false
	for _, r := range word {
		if isVowel(r) {
			if !inGroup {
				groups++
			}
			inGroup = true
		} else {
			inGroup = false
		}
	}

	if groups > 1 && strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") {
		groups--
	}
	if groups < 1 {
		groups = 1
	}
	return groups
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
