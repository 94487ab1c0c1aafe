package checks

import (
	"testing"

	"github.com/letterlint/letterlint/internal/config"
	"github.com/letterlint/letterlint/internal/model"
)

// TestEmojiCheck verifies the per-sentence emoji cap.
func TestEmojiCheck(t *testing.T) {
	t.Parallel()

	check := NewEmojiCheck()

	t.Run("two emoji exceed the default cap", func(t *testing.T) {
		t.Parallel()
		finding, ok := check.Run("Big news 🚀🎉 for subscribers.", config.NewConfig())
		if !ok {
			t.Fatal("expected emoji finding for two emoji")
		}
		if finding.Tag != model.TagEmojiExcess {
			t.Errorf("expected emoji_excess tag, got %s", finding.Tag)
		}
		if count := finding.Reasons["emoji_count"].(int); count != 2 {
			t.Errorf("expected emoji_count 2, got %d", count)
		}
	})

	t.Run("one emoji is within the cap", func(t *testing.T) {
		t.Parallel()
		if _, ok := check.Run("Big news 🚀 for subscribers.", config.NewConfig()); ok {
			t.Error("a single emoji must not trigger at the default cap")
		}
	})

	t.Run("cap of zero flags any emoji", func(t *testing.T) {
		t.Parallel()
		cfg := config.NewConfig()
		cfg.MaxEmojiPerSentence = 0
		if _, ok := check.Run("Done ✅", cfg); !ok {
			t.Error("expected finding with a zero cap")
		}
	})

	t.Run("plain text passes", func(t *testing.T) {
		t.Parallel()
		if _, ok := check.Run("No pictures here.", config.NewConfig()); ok {
			t.Error("expected no finding for plain text")
		}
	})
}
