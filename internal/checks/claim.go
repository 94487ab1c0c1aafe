package checks

import (
	"strings"

	"github.com/letterlint/letterlint/internal/config"
	"github.com/letterlint/letterlint/internal/model"
)

// quantifiers are absolute quantity words that turn a strong verb into
// an absolute claim.
var quantifiers = []string{
	"all", "every", "always", "never", "none",
	"everyone", "nobody", "anything", "everything",
}

// certaintyWords assert certainty the way a quantifier would.
var certaintyWords = []string{
	"definitely", "certainly", "undoubtedly", "unquestionably", "absolutely",
}

// evidenceMarkers are substrings whose presence counts as citing a
// source. URLs count: a link is the newsletter form of a citation.
var evidenceMarkers = []string{
	"source", "study", "studies", "research", "survey",
	"according to", "data from", "cited", "citation",
	"http://", "https://", "www.",
}

// ClaimCheck flags strong absolute claims with no evidence: a claim verb
// (guarantee, prove, double, ...) combined with a quantifier or
// certainty word, and nothing in the sentence that cites a source.
type ClaimCheck struct{}

// NewClaimCheck creates a ClaimCheck.
func NewClaimCheck() *ClaimCheck {
	return &ClaimCheck{}
}

// Name returns the check name.
func (c *ClaimCheck) Name() string {
	return "claim"
}

// Run inspects one sentence for unevidenced claims.
func (c *ClaimCheck) Run(sentence string, cfg *config.Config) (model.Finding, bool) {
	lower := strings.ToLower(sentence)

	verbs := matchWords(lower, cfg.ClaimVerbs)
	if len(verbs) == 0 {
		return model.Finding{}, false
	}

	quant := matchWords(lower, quantifiers)
	// "100%" is a quantifier the word-boundary matcher can't see.
	if strings.Contains(lower, "100%") {
		quant = append(quant, "100%")
	}
	certainty := matchWords(lower, certaintyWords)
	if len(quant) == 0 && len(certainty) == 0 {
		return model.Finding{}, false
	}

	evidence := matchPhrases(lower, evidenceMarkers)
	if len(evidence) > 0 {
		return model.Finding{}, false
	}

	return model.Finding{
		Tag: model.TagClaimWithoutEvidence,
		Reasons: model.Reasons{
			"claim_verbs": verbs,
			"quantifiers": quant,
			"certainty":   certainty,
		},
	}, true
}
