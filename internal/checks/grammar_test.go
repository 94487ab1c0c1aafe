package checks

import (
	"testing"

	"github.com/letterlint/letterlint/internal/config"
	"github.com/letterlint/letterlint/internal/model"
)

// TestGrammarCheck verifies the spelling heuristic and the structural
// grammar sub-checks.
func TestGrammarCheck(t *testing.T) {
	t.Parallel()

	check := NewGrammarCheck()

	t.Run("misspelled word is reported", func(t *testing.T) {
		t.Parallel()
		finding, ok := check.Run("We recieve feedback daily.", config.NewConfig())
		if !ok {
			t.Fatal("expected grammar finding for misspelling")
		}
		if finding.Tag != model.TagGrammarSpelling {
			t.Errorf("expected grammar_spelling tag, got %s", finding.Tag)
		}
		misspellings := finding.Reasons["misspellings"].([]string)
		if len(misspellings) != 1 || misspellings[0] != "recieve" {
			t.Errorf("expected ['recieve'], got %v", misspellings)
		}
	})

	t.Run("misspellings cap at the configured maximum", func(t *testing.T) {
		t.Parallel()
		finding, ok := check.Run("Thier systm recieves wierd misstakes.", config.NewConfig())
		if !ok {
			t.Fatal("expected grammar finding")
		}
		misspellings := finding.Reasons["misspellings"].([]string)
		if len(misspellings) != config.DefaultMaxMisspellings {
			t.Errorf("expected %d misspellings, got %v", config.DefaultMaxMisspellings, misspellings)
		}
	})

	t.Run("proper nouns mid-sentence are skipped", func(t *testing.T) {
		t.Parallel()
		if _, ok := check.Run("We talked with Zorblatt yesterday.", config.NewConfig()); ok {
			t.Error("capitalized mid-sentence tokens must be skipped")
		}
	})

	t.Run("acronyms and compounds are skipped", func(t *testing.T) {
		t.Parallel()
		if _, ok := check.Run("The GDPR rules cover cutting-edge tracking.", config.NewConfig()); ok {
			t.Error("acronyms and hyphen compounds must not be misspellings")
		}
	})

	t.Run("custom dictionary accepts extra words", func(t *testing.T) {
		t.Parallel()
		cfg := config.NewConfig()
		cfg.Grammar.Dictionary = []string{"letterlint"}
		if _, ok := check.Run("We built letterlint together.", cfg); ok {
			t.Error("custom dictionary word must not be a misspelling")
		}
	})

	t.Run("inflections of known words pass", func(t *testing.T) {
		t.Parallel()
		if _, ok := check.Run("She quickly jumped over the sleeping dogs.", config.NewConfig()); ok {
			t.Error("regular inflections of dictionary words must pass")
		}
	})

	t.Run("repeated word is reported", func(t *testing.T) {
		t.Parallel()
		finding, ok := check.Run("We shipped the the feature.", config.NewConfig())
		if !ok {
			t.Fatal("expected grammar finding for repeated word")
		}
		if repeated := finding.Reasons["repeated_word"].(string); repeated != "the" {
			t.Errorf("expected repeated word 'the', got %q", repeated)
		}
	})

	t.Run("subject verb disagreement is reported", func(t *testing.T) {
		t.Parallel()
		finding, ok := check.Run("They is ready for launch.", config.NewConfig())
		if !ok {
			t.Fatal("expected grammar finding for agreement error")
		}
		if _, present := finding.Reasons["agreement_error"]; !present {
			t.Error("expected agreement_error reason")
		}
	})

	t.Run("article errors flag both directions", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			sentence string
			wantErr  bool
		}{
			{"She ate a apple today.", true},
			{"He read an book today.", true},
			{"He is an user of the tool.", true},
			{"It took a hour to finish.", true},
			{"She attends a university nearby.", false},
			{"It took an hour to finish.", false},
		}
		for _, tt := range tests {
			finding, ok := check.Run(tt.sentence, config.NewConfig())
			_, hasArticle := finding.Reasons["article_error"]
			got := ok && hasArticle
			if got != tt.wantErr {
				t.Errorf("%q: article error = %v, want %v", tt.sentence, got, tt.wantErr)
			}
		}
	})

	t.Run("punctuation spacing is reported", func(t *testing.T) {
		t.Parallel()
		finding, ok := check.Run("We shipped it ,and celebrated.", config.NewConfig())
		if !ok {
			t.Fatal("expected grammar finding for punctuation spacing")
		}
		if _, present := finding.Reasons["space_before_punctuation"]; !present {
			t.Error("expected space_before_punctuation reason")
		}
		if _, present := finding.Reasons["missing_space_after_comma"]; !present {
			t.Error("expected missing_space_after_comma reason")
		}
	})

	t.Run("thousands separators are not spacing errors", func(t *testing.T) {
		t.Parallel()
		if _, ok := check.Run("We passed 1,000 subscribers.", config.NewConfig()); ok {
			t.Error("digit after comma must not flag spacing")
		}
	})

	t.Run("disabled grammar check returns nothing", func(t *testing.T) {
		t.Parallel()
		cfg := config.NewConfig()
		cfg.Grammar.Enabled = false
		if _, ok := check.Run("Thier systm is a apple.", cfg); ok {
			t.Error("disabled grammar check must not report")
		}
	})

	t.Run("clean sentence passes", func(t *testing.T) {
		t.Parallel()
		if _, ok := check.Run("We shipped the new feature last week.", config.NewConfig()); ok {
			t.Error("expected no finding for clean sentence")
		}
	})
}
