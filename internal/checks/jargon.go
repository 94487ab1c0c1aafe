package checks

import (
	"regexp"
	"strings"

	"github.com/letterlint/letterlint/internal/config"
	"github.com/letterlint/letterlint/internal/model"
	"github.com/letterlint/letterlint/internal/normalize"
)

// Readability signals that are fixed, not configurable.
const (
	// minCommas is the comma count at which a sentence reads as convoluted.
	minCommas = 3

	// minConjunctions is the conjunction count at which a sentence reads
	// as run-on.
	minConjunctions = 2
)

// conjunctions are the coordinating/subordinating words counted toward
// the run-on signal.
var conjunctions = []string{
	"and", "but", "or", "because", "although", "while",
	"whereas", "however", "since", "unless", "though",
}

// passivePattern is a rough passive-voice detector: a form of "to be"
// followed by a past participle, optionally with an adverb between.
// It overmatches ("was red" doesn't, "was tired" does); the
// passive_voice toggle exists for writers who mind the noise.
var passivePattern = regexp.MustCompile(`\b(?:is|are|was|were|be|been|being)\s+(?:\w+ly\s+)?\w+(?:ed|en)\b`)

// JargonCheck flags hard-to-read sentences: buzzword density, raw
// length, comma pileups, run-on conjunctions, or passive voice.
type JargonCheck struct{}

// NewJargonCheck creates a JargonCheck.
func NewJargonCheck() *JargonCheck {
	return &JargonCheck{}
}

// Name returns the check name.
func (c *JargonCheck) Name() string {
	return "jargon"
}

// Run inspects one sentence for readability problems.
func (c *JargonCheck) Run(sentence string, cfg *config.Config) (model.Finding, bool) {
	lower := strings.ToLower(sentence)

	heavy := matchPhrases(lower, cfg.HeavyJargon)
	mild := matchPhrases(lower, cfg.MildJargon)
	wordCount := normalize.WordCount(sentence)
	commas := strings.Count(sentence, ",")
	conj := countConjunctions(lower)
	passive := cfg.PassiveVoice && passivePattern.MatchString(lower)

	triggered := len(heavy) >= cfg.HeavyJargonThreshold ||
		len(mild) >= cfg.MildJargonThreshold ||
		wordCount > cfg.MaxSentenceWords ||
		commas >= minCommas ||
		conj >= minConjunctions ||
		passive

	if !triggered {
		return model.Finding{}, false
	}

	return model.Finding{
		Tag: model.TagHardToRead,
		Reasons: model.Reasons{
			"heavy_jargon_hits": len(heavy),
			"heavy_jargon":      heavy,
			"mild_jargon_hits":  len(mild),
			"mild_jargon":       mild,
			"word_count":        wordCount,
			"commas":            commas,
			"conjunctions":      conj,
			"passive_voice":     passive,
		},
	}, true
}

// countConjunctions counts conjunction occurrences on word boundaries.
// Repeated uses count separately: "and ... and ... and" is exactly the
// run-on shape this signal exists for.
func countConjunctions(lower string) int {
	count := 0
	for _, w := range conjunctions {
		count += len(wordBoundaryPattern(w).FindAllString(lower, -1))
	}
	return count
}
