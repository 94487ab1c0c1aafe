package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestLoadConfigFile verifies YAML parsing and the not-found sentinel.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("parses a valid file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".letterlint")
		content := `
max_sentence_words: 15
readability_threshold: 7.5
hedge_words:
  - might
  - perhaps
grammar:
  enabled: false
annotate: false
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		f, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.MaxSentenceWords == nil || *f.MaxSentenceWords != 15 {
			t.Errorf("expected max_sentence_words 15, got %v", f.MaxSentenceWords)
		}
		if f.ReadabilityThreshold == nil || *f.ReadabilityThreshold != 7.5 {
			t.Errorf("expected readability_threshold 7.5, got %v", f.ReadabilityThreshold)
		}
		if len(f.HedgeWords) != 2 {
			t.Errorf("expected 2 hedge words, got %d", len(f.HedgeWords))
		}
		if f.Grammar == nil || f.Grammar.Enabled == nil || *f.Grammar.Enabled {
			t.Error("expected grammar.enabled false")
		}
		if f.Annotate == nil || *f.Annotate {
			t.Error("expected annotate false")
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()
		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid YAML returns an error", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), ".letterlint")
		if err := os.WriteFile(path, []byte(":\n bad\n  yaml: ["), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}
		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected parse error for invalid YAML")
		}
	})
}

// TestApplyFile verifies the non-destructive merge semantics.
func TestApplyFile(t *testing.T) {
	t.Parallel()

	t.Run("absent fields keep defaults", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.ApplyFile(&File{})
		if cfg.MaxSentenceWords != DefaultMaxSentenceWords {
			t.Errorf("expected default sentence limit, got %d", cfg.MaxSentenceWords)
		}
		if len(cfg.SpamPhrases) == 0 {
			t.Error("expected default spam phrases to survive empty file")
		}
	})

	t.Run("present scalars override", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		limit := 10
		zero := 0
		cfg.ApplyFile(&File{
			MaxSentenceWords:    &limit,
			MaxEmojiPerSentence: &zero,
		})
		if cfg.MaxSentenceWords != 10 {
			t.Errorf("expected sentence limit 10, got %d", cfg.MaxSentenceWords)
		}
		// An explicit zero is an override, not an absence.
		if cfg.MaxEmojiPerSentence != 0 {
			t.Errorf("expected emoji cap 0, got %d", cfg.MaxEmojiPerSentence)
		}
	})

	t.Run("present lists replace defaults entirely", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.ApplyFile(&File{HedgeWords: []string{"perhaps"}})
		if len(cfg.HedgeWords) != 1 || cfg.HedgeWords[0] != "perhaps" {
			t.Errorf("expected hedge list replaced, got %v", cfg.HedgeWords)
		}
	})

	t.Run("grammar sub-options merge independently", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		enabled := false
		cfg.ApplyFile(&File{Grammar: &GrammarFile{Enabled: &enabled}})
		if cfg.Grammar.Enabled {
			t.Error("expected grammar disabled")
		}
		if cfg.Grammar.MinWordLength != DefaultGrammarMinWordLength {
			t.Errorf("expected untouched MinWordLength, got %d", cfg.Grammar.MinWordLength)
		}
	})

	t.Run("nil file is a no-op", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.ApplyFile(nil)
		if cfg.MaxSentenceWords != DefaultMaxSentenceWords {
			t.Error("expected nil file to leave config unchanged")
		}
	})
}

// TestFindConfigFile verifies the search order for explicit paths.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit existing path is returned", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("annotate: true\n"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}
		if got := FindConfigFile(path); got != path {
			t.Errorf("expected %s, got %s", path, got)
		}
	})

	t.Run("explicit missing path returns empty", func(t *testing.T) {
		t.Parallel()
		if got := FindConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); got != "" {
			t.Errorf("expected empty path, got %s", got)
		}
	})
}
