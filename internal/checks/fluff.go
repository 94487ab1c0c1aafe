package checks

import (
	"regexp"
	"strings"

	"github.com/letterlint/letterlint/internal/config"
	"github.com/letterlint/letterlint/internal/model"
)

// vaguePromisePattern matches the "boost your X" shape: a promise verb,
// a possessive, and whatever noun the writer reached for. The noun is
// irrelevant; the shape itself is the fluff.
var vaguePromisePattern = regexp.MustCompile(`\b(?:boost|improve|enhance|grow|transform|elevate|supercharge|skyrocket)\s+(?:your|our|their)\s+\w+`)

// FluffCheck flags filler: stacked fluff phrases, a fluff phrase
// propped up by an intensifier, or a vague promise pattern.
type FluffCheck struct{}

// NewFluffCheck creates a FluffCheck.
func NewFluffCheck() *FluffCheck {
	return &FluffCheck{}
}

// Name returns the check name.
func (c *FluffCheck) Name() string {
	return "fluff"
}

// Run inspects one sentence for filler language.
func (c *FluffCheck) Run(sentence string, cfg *config.Config) (model.Finding, bool) {
	lower := strings.ToLower(sentence)

	fluff := matchPhrases(lower, cfg.FluffPhrases)
	intensifiers := matchWords(lower, cfg.Intensifiers)
	promise := vaguePromisePattern.FindString(lower)

	triggered := len(fluff) >= cfg.FluffThreshold ||
		(len(fluff) >= 1 && len(intensifiers) >= 1) ||
		promise != ""

	if !triggered {
		return model.Finding{}, false
	}

	reasons := model.Reasons{
		"fluff_hits":    len(fluff),
		"fluff_phrases": fluff,
		"intensifiers":  intensifiers,
	}
	if promise != "" {
		reasons["vague_promise"] = promise
	}

	return model.Finding{
		Tag:     model.TagFluff,
		Reasons: reasons,
	}, true
}
