package checks

import (
	"testing"

	"github.com/letterlint/letterlint/internal/config"
	"github.com/letterlint/letterlint/internal/model"
)

// TestSpamCheck verifies the three spam signals and their thresholds.
func TestSpamCheck(t *testing.T) {
	t.Parallel()

	check := NewSpamCheck()

	t.Run("two distinct spam phrases always trigger", func(t *testing.T) {
		t.Parallel()
		cfg := config.NewConfig()
		cfg.SpamThreshold = 2

		finding, ok := check.Run("Buy now, this limited time offer ends today.", cfg)
		if !ok {
			t.Fatal("expected a spam finding for two distinct phrases")
		}
		if finding.Tag != model.TagSpamWords {
			t.Errorf("expected spam_words tag, got %s", finding.Tag)
		}
		if hits := finding.Reasons["spam_hits"].(int); hits != 2 {
			t.Errorf("expected 2 spam hits, got %d", hits)
		}
	})

	t.Run("single phrase triggers at the default threshold", func(t *testing.T) {
		t.Parallel()
		finding, ok := check.Run("Buy now!", config.NewConfig())
		if !ok {
			t.Fatal("expected a spam finding for 'Buy now!'")
		}
		if finding.Tag != model.TagSpamWords {
			t.Errorf("expected spam_words tag, got %s", finding.Tag)
		}
	})

	t.Run("excess exclamation marks trigger", func(t *testing.T) {
		t.Parallel()
		_, ok := check.Run("This is amazing!!!", config.NewConfig())
		if !ok {
			t.Fatal("expected a spam finding for repeated exclamations")
		}
	})

	t.Run("excess ALL-CAPS words trigger", func(t *testing.T) {
		t.Parallel()
		finding, ok := check.Run("Get FREE MONEY today.", config.NewConfig())
		if !ok {
			t.Fatal("expected a spam finding for shouting")
		}
		if caps := finding.Reasons["caps_words"].(int); caps != 2 {
			t.Errorf("expected 2 caps words, got %d", caps)
		}
	})

	t.Run("short acronyms do not count as shouting", func(t *testing.T) {
		t.Parallel()
		if _, ok := check.Run("The US AI market keeps growing.", config.NewConfig()); ok {
			t.Error("two-letter acronyms must not trigger the caps signal")
		}
	})

	t.Run("clean sentence passes", func(t *testing.T) {
		t.Parallel()
		if _, ok := check.Run("This week we shipped the search feature.", config.NewConfig()); ok {
			t.Error("expected no finding for clean sentence")
		}
	})
}
