package checks

import (
	"strings"

	"github.com/letterlint/letterlint/internal/config"
	"github.com/letterlint/letterlint/internal/model"
)

// CTACheck marks call-to-action phrases. Unlike the other checks this is
// purely informational: the tag tells the writer where their asks sit,
// it does not say the sentence is bad.
type CTACheck struct{}

// NewCTACheck creates a CTACheck.
func NewCTACheck() *CTACheck {
	return &CTACheck{}
}

// Name returns the check name.
func (c *CTACheck) Name() string {
	return "cta"
}

// Run matches the sentence against the configured CTA phrase list.
func (c *CTACheck) Run(sentence string, cfg *config.Config) (model.Finding, bool) {
	lower := strings.ToLower(sentence)

	matched := matchPhrases(lower, cfg.CTAPhrases)
	if len(matched) == 0 {
		return model.Finding{}, false
	}

	return model.Finding{
		Tag: model.TagCTA,
		Reasons: model.Reasons{
			"cta_phrases": matched,
		},
	}, true
}
