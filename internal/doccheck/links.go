package doccheck

import (
	"math"
	"regexp"

	"github.com/letterlint/letterlint/internal/config"
	"github.com/letterlint/letterlint/internal/model"
)

// urlPattern matches http(s) URLs and bare www. links in the original
// content, including inside href attributes — a link buried in markup
// still counts toward density.
var urlPattern = regexp.MustCompile(`https?://[^\s<>"')]+|\bwww\.[^\s<>"')]+`)

// LinkDensity counts URL matches in the original content and computes
// links per 100 words of the normalized text (word count floored at 1
// so an all-markup document doesn't divide by zero).
// It returns a flag when the density exceeds the configured cap.
func LinkDensity(original string, wordCount int, cfg *config.Config) (int, float64, *model.Flag) {
	links := len(urlPattern.FindAllString(original, -1))

	words := wordCount
	if words < 1 {
		words = 1
	}
	density := round2(float64(links) / float64(words) * 100)

	if density <= cfg.MaxLinksPer100Words {
		return links, density, nil
	}

	return links, density, &model.Flag{
		Tag: model.TagLinkDensity,
		Reasons: model.Reasons{
			"link_count":          links,
			"density_per_100":     density,
			"max_links_per_100":   cfg.MaxLinksPer100Words,
			"word_count_analyzed": words,
		},
	}
}

// round2 rounds to two decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
