package doccheck

import (
	"testing"

	"github.com/letterlint/letterlint/internal/config"
)

func TestReadability(t *testing.T) {
	t.Parallel()

	t.Run("simple prose scores low and does not flag", func(t *testing.T) {
		t.Parallel()
		result, flag := Readability("The cat sat on the mat.", 1, config.NewConfig())

		if result.FleschKincaidGrade != 0 {
			t.Errorf("expected grade clamped to 0, got %v", result.FleschKincaidGrade)
		}
		if result.Threshold != config.DefaultReadabilityThreshold {
			t.Errorf("expected threshold %v, got %v", config.DefaultReadabilityThreshold, result.Threshold)
		}
		if flag != nil {
			t.Errorf("simple prose must not flag, got %v", flag)
		}
	})

	t.Run("dense prose exceeds the threshold and flags", func(t *testing.T) {
		t.Parallel()
		text := "Organizational transformation initiatives require considerable interdepartmental coordination."
		result, flag := Readability(text, 1, config.NewConfig())

		if result.FleschKincaidGrade <= config.DefaultReadabilityThreshold {
			t.Fatalf("expected grade above %v, got %v",
				config.DefaultReadabilityThreshold, result.FleschKincaidGrade)
		}
		if flag == nil {
			t.Fatal("expected readability_grade flag")
		}
		if flag.Reasons["grade"] != result.FleschKincaidGrade {
			t.Errorf("flag grade %v does not match result %v",
				flag.Reasons["grade"], result.FleschKincaidGrade)
		}
	})

	t.Run("longer sentences raise the grade", func(t *testing.T) {
		t.Parallel()
		short, _ := Readability("We grew fast. We kept pace.", 2, config.NewConfig())
		long, _ := Readability("We grew fast and we kept pace while the market shifted around us all year.", 1, config.NewConfig())

		if long.FleschKincaidGrade <= short.FleschKincaidGrade {
			t.Errorf("expected longer sentence to score higher: %v vs %v",
				long.FleschKincaidGrade, short.FleschKincaidGrade)
		}
	})

	t.Run("denser syllables raise the grade at fixed sentence length", func(t *testing.T) {
		t.Parallel()
		// Both sentences hold ten words each, so words-per-sentence is
		// constant and only syllables-per-word moves.
		plain, _ := Readability("We grew fast and we kept pace all year long.", 1, config.NewConfig())
		dense, _ := Readability("Complicated vocabulary dramatically diminishes newsletter readability for ordinary subscribers everywhere.", 1, config.NewConfig())

		if plain.FleschKincaidGrade <= 0 {
			t.Fatalf("expected positive baseline grade, got %v", plain.FleschKincaidGrade)
		}
		if dense.FleschKincaidGrade <= plain.FleschKincaidGrade {
			t.Errorf("expected denser syllables to score higher: %v vs %v",
				dense.FleschKincaidGrade, plain.FleschKincaidGrade)
		}
	})

	t.Run("empty document scores zero without flagging", func(t *testing.T) {
		t.Parallel()
		result, flag := Readability("", 0, config.NewConfig())
		if result.FleschKincaidGrade != 0 || flag != nil {
			t.Errorf("expected zero grade and no flag, got %v (%v)", result, flag)
		}
	})
}

func TestCountSyllables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"hello", 2},
		{"made", 1},      // trailing silent e
		{"table", 2},     // -le keeps its syllable
		{"rhythm", 1},    // y as vowel
		{"readable", 3},
		{"coordination", 4},
		{"tsk", 1}, // floor of one
	}

	for _, tt := range tests {
		if got := countSyllables(tt.word); got != tt.want {
			t.Errorf("countSyllables(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}
