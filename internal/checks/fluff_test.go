package checks

import (
	"testing"

	"github.com/letterlint/letterlint/internal/config"
	"github.com/letterlint/letterlint/internal/model"
)

// TestFluffCheck verifies the filler-language triggers.
func TestFluffCheck(t *testing.T) {
	t.Parallel()

	check := NewFluffCheck()

	t.Run("two fluff phrases trigger", func(t *testing.T) {
		t.Parallel()
		finding, ok := check.Run(
			"At the end of the day, when it comes to growth, we deliver.",
			config.NewConfig(),
		)
		if !ok {
			t.Fatal("expected fluff finding for two phrases")
		}
		if finding.Tag != model.TagFluff {
			t.Errorf("expected fluff tag, got %s", finding.Tag)
		}
		if hits := finding.Reasons["fluff_hits"].(int); hits != 2 {
			t.Errorf("expected 2 fluff hits, got %d", hits)
		}
	})

	t.Run("single fluff phrase alone passes", func(t *testing.T) {
		t.Parallel()
		if _, ok := check.Run("In order to ship, we cut scope.", config.NewConfig()); ok {
			t.Error("a single fluff phrase must not trigger without an intensifier")
		}
	})

	t.Run("fluff phrase plus intensifier triggers", func(t *testing.T) {
		t.Parallel()
		_, ok := check.Run("Needless to say, this was really hard.", config.NewConfig())
		if !ok {
			t.Error("expected fluff finding for phrase plus intensifier")
		}
	})

	t.Run("intensifier alone passes", func(t *testing.T) {
		t.Parallel()
		if _, ok := check.Run("This was really hard.", config.NewConfig()); ok {
			t.Error("an intensifier without a fluff phrase must not trigger")
		}
	})

	t.Run("vague promise triggers", func(t *testing.T) {
		t.Parallel()
		finding, ok := check.Run("We will boost your revenue.", config.NewConfig())
		if !ok {
			t.Fatal("expected fluff finding for a vague promise")
		}
		if _, present := finding.Reasons["vague_promise"]; !present {
			t.Error("expected vague_promise reason")
		}
	})

	t.Run("clean sentence passes", func(t *testing.T) {
		t.Parallel()
		if _, ok := check.Run("Revenue grew 12% after the pricing change.", config.NewConfig()); ok {
			t.Error("expected no finding for clean sentence")
		}
	})
}
