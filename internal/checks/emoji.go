package checks

import (
	"github.com/letterlint/letterlint/internal/config"
	"github.com/letterlint/letterlint/internal/model"
)

// EmojiCheck flags sentences carrying more emoji than the configured cap.
type EmojiCheck struct{}

// NewEmojiCheck creates an EmojiCheck.
func NewEmojiCheck() *EmojiCheck {
	return &EmojiCheck{}
}

// Name returns the check name.
func (c *EmojiCheck) Name() string {
	return "emoji"
}

// Run counts emoji code points in the sentence.
func (c *EmojiCheck) Run(sentence string, cfg *config.Config) (model.Finding, bool) {
	count := countEmoji(sentence)
	if count <= cfg.MaxEmojiPerSentence {
		return model.Finding{}, false
	}

	return model.Finding{
		Tag: model.TagEmojiExcess,
		Reasons: model.Reasons{
			"emoji_count": count,
			"max":         cfg.MaxEmojiPerSentence,
		},
	}, true
}

// countEmoji counts code points in the common emoji blocks. Skin-tone
// modifiers and ZWJ sequence members each count separately; the check
// cares about visual noise, not grapheme clusters.
func countEmoji(s string) int {
	count := 0
	for _, r := range s {
		if isEmoji(r) {
			count++
		}
	}
	return count
}

// isEmoji reports whether the rune falls in an emoji block:
// Miscellaneous Symbols, Dingbats, and the supplementary
// pictograph planes.
func isEmoji(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1F5FF: // symbols & pictographs
		return true
	case r >= 0x1F600 && r <= 0x1F64F: // emoticons
		return true
	case r >= 0x1F680 && r <= 0x1F6FF: // transport & map
		return true
	case r >= 0x1F900 && r <= 0x1F9FF: // supplemental symbols
		return true
	case r >= 0x1FA70 && r <= 0x1FAFF: // extended-A
		return true
	case r >= 0x2600 && r <= 0x26FF: // miscellaneous symbols
		return true
	case r >= 0x2700 && r <= 0x27BF: // dingbats
		return true
	default:
		return false
	}
}
