package checks

import (
	"strings"

	"github.com/letterlint/letterlint/internal/config"
	"github.com/letterlint/letterlint/internal/model"
)

// HedgingCheck flags hedge words matched on word boundaries. Substring
// matching would be wrong here: "mighty" contains "might" but hedges
// nothing.
type HedgingCheck struct{}

// NewHedgingCheck creates a HedgingCheck.
func NewHedgingCheck() *HedgingCheck {
	return &HedgingCheck{}
}

// Name returns the check name.
func (c *HedgingCheck) Name() string {
	return "hedging"
}

// Run matches the sentence against the configured hedge-word list.
func (c *HedgingCheck) Run(sentence string, cfg *config.Config) (model.Finding, bool) {
	lower := strings.ToLower(sentence)

	hedges := matchWords(lower, cfg.HedgeWords)
	if len(hedges) == 0 {
		return model.Finding{}, false
	}

	return model.Finding{
		Tag: model.TagHedging,
		Reasons: model.Reasons{
			"hedges": hedges,
		},
	}, true
}
