package doccheck

import (
	"strings"

	"github.com/letterlint/letterlint/internal/config"
	"github.com/letterlint/letterlint/internal/model"
)

// stopWords are excluded from the similarity token sets. Function words
// inflate similarity between sentences that merely share structure.
var stopWords = map[string]bool{
	"this": true, "that": true, "with": true, "from": true,
	"have": true, "will": true, "your": true, "their": true,
	"they": true, "them": true, "then": true, "than": true,
	"what": true, "when": true, "where": true, "which": true,
	"would": true, "could": true, "should": true, "about": true,
	"there": true, "these": true, "those": true, "been": true,
	"were": true, "into": true, "more": true, "some": true,
	"very": true, "just": true, "also": true, "only": true,
}

// Redundancy compares every sentence pair and flags pairs whose token
// sets overlap at or above the configured Jaccard threshold. Sentences
// below the minimum word count are skipped; short sentences share
// vocabulary too easily to judge.
func Redundancy(sentences []string, cfg *config.Config) ([]model.RedundantPair, *model.Flag) {
	type entry struct {
		index  int
		words  int
		tokens map[string]bool
	}

	entries := make([]entry, 0, len(sentences))
	for i, s := range sentences {
		words := len(strings.Fields(s))
		if words < cfg.RedundancyMinWords {
			continue
		}
		entries = append(entries, entry{index: i, words: words, tokens: similarityTokens(s)})
	}

	var pairs []model.RedundantPair
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			score := jaccard(entries[i].tokens, entries[j].tokens)
			if score < cfg.RedundancyThreshold {
				continue
			}
			pairs = append(pairs, model.RedundantPair{
				First:  entries[i].index,
				Second: entries[j].index,
				Score:  round2(score),
			})
		}
	}

	if len(pairs) == 0 {
		return nil, nil
	}

	return pairs, &model.Flag{
		Tag: model.TagRedundantSentences,
		Reasons: model.Reasons{
			"pairs":     pairs,
			"threshold": cfg.RedundancyThreshold,
		},
	}
}

// similarityTokens builds a sentence's comparison set: lowercase words
// longer than three characters, stop words removed.
func similarityTokens(sentence string) map[string]bool {
	tokens := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(sentence)) {
		w = strings.Trim(w, ".,;:!?\"'()[]")
		if len(w) <= 3 || stopWords[w] {
			continue
		}
		tokens[w] = true
	}
	return tokens
}

// jaccard computes |a∩b| / |a∪b|. Two empty sets score zero, not one:
// sentences made entirely of stop words carry no comparable content.
func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	intersection := 0
	for t := range a {
		if b[t] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}
