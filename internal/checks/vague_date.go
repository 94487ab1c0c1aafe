package checks

import (
	"strings"

	"github.com/letterlint/letterlint/internal/config"
	"github.com/letterlint/letterlint/internal/model"
)

// VagueDateCheck flags time references that give the reader no actual
// date: "soon", "recently", "in the coming weeks".
type VagueDateCheck struct{}

// NewVagueDateCheck creates a VagueDateCheck.
func NewVagueDateCheck() *VagueDateCheck {
	return &VagueDateCheck{}
}

// Name returns the check name.
func (c *VagueDateCheck) Name() string {
	return "vague_date"
}

// Run matches the sentence against the configured vague-time list.
func (c *VagueDateCheck) Run(sentence string, cfg *config.Config) (model.Finding, bool) {
	lower := strings.ToLower(sentence)

	// Substring match, not word-boundary match: "soon" inside "monsoon"
	// is a known false positive. Switching to boundary matching would
	// silently change which sentences flag across existing reports.
	matched := matchPhrases(lower, cfg.VagueDates)
	if len(matched) == 0 {
		return model.Finding{}, false
	}

	return model.Finding{
		Tag: model.TagVagueDate,
		Reasons: model.Reasons{
			"vague_dates": matched,
		},
	}, true
}
