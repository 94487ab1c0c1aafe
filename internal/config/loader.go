package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".letterlint"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the YAML shape of a letterlint configuration file.
// Every field is optional: unset fields keep their defaults.
//
// Design decision: Scalars are pointers so the loader can tell "absent"
// from a deliberate zero (e.g. max_emoji_per_sentence: 0 disables emoji
// tolerance entirely). Lists are plain slices: a present-but-empty list
// replaces the default, an absent list keeps it.
type File struct {
	MaxSentenceWords     *int     `yaml:"max_sentence_words,omitempty"`
	MaxExclamations      *int     `yaml:"max_exclamations,omitempty"`
	MaxCapsWords         *int     `yaml:"max_caps_words,omitempty"`
	SpamThreshold        *int     `yaml:"spam_threshold,omitempty"`
	FluffThreshold       *int     `yaml:"fluff_threshold,omitempty"`
	HeavyJargonThreshold *int     `yaml:"heavy_jargon_threshold,omitempty"`
	MildJargonThreshold  *int     `yaml:"mild_jargon_threshold,omitempty"`
	MaxEmojiPerSentence  *int     `yaml:"max_emoji_per_sentence,omitempty"`
	MaxLinksPer100Words  *float64 `yaml:"max_links_per_100_words,omitempty"`
	PassiveVoice         *bool    `yaml:"passive_voice,omitempty"`

	SpamPhrases  []string `yaml:"spam_phrases,omitempty"`
	HeavyJargon  []string `yaml:"heavy_jargon,omitempty"`
	MildJargon   []string `yaml:"mild_jargon,omitempty"`
	FluffPhrases []string `yaml:"fluff_phrases,omitempty"`
	Intensifiers []string `yaml:"intensifiers,omitempty"`
	CTAPhrases   []string `yaml:"cta_phrases,omitempty"`
	HedgeWords   []string `yaml:"hedge_words,omitempty"`
	VagueDates   []string `yaml:"vague_dates,omitempty"`
	ClaimVerbs   []string `yaml:"claim_verbs,omitempty"`

	RedundancyThreshold  *float64 `yaml:"redundancy_threshold,omitempty"`
	RedundancyMinWords   *int     `yaml:"redundancy_min_words,omitempty"`
	ReadabilityThreshold *float64 `yaml:"readability_threshold,omitempty"`
	LongParagraphWords   *int     `yaml:"long_paragraph_words,omitempty"`

	Grammar *GrammarFile `yaml:"grammar,omitempty"`

	Annotate *bool `yaml:"annotate,omitempty"`
}

// GrammarFile is the YAML shape of the grammar sub-options.
type GrammarFile struct {
	Enabled         *bool    `yaml:"enabled,omitempty"`
	Dictionary      []string `yaml:"dictionary,omitempty"`
	MinWordLength   *int     `yaml:"min_word_length,omitempty"`
	SkipProperNouns *bool    `yaml:"skip_proper_nouns,omitempty"`
	SkipNonLexical  *bool    `yaml:"skip_non_lexical,omitempty"`
	MaxMisspellings *int     `yaml:"max_misspellings,omitempty"`
}

// LoadConfigFile reads and parses a YAML configuration file.
// A missing file yields ErrConfigNotFound so the caller can decide
// whether that matters (it does when the user named the path explicitly,
// it doesn't during the default search).
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// FindConfigFile searches for the configuration file in order:
// 1. the explicit path, if given
// 2. .letterlint in the current directory
// 3. .letterlint in the XDG config directory
// 4. .letterlint in the user's home directory
//
// Returns the path if found, or empty string.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		p := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	p := filepath.Join(XDGConfigDir(), DefaultConfigFile)
	if _, err := os.Stat(p); err == nil {
		return p
	}

	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// ApplyFile merges the overrides in f onto the configuration.
// Absent fields keep their current values; the merge never removes a
// default unless the file explicitly replaces it.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		return
	}

	if f.MaxSentenceWords != nil {
		c.MaxSentenceWords = *f.MaxSentenceWords
	}
	if f.MaxExclamations != nil {
		c.MaxExclamations = *f.MaxExclamations
	}
	if f.MaxCapsWords != nil {
		c.MaxCapsWords = *f.MaxCapsWords
	}
	if f.SpamThreshold != nil {
		c.SpamThreshold = *f.SpamThreshold
	}
	if f.FluffThreshold != nil {
		c.FluffThreshold = *f.FluffThreshold
	}
	if f.HeavyJargonThreshold != nil {
		c.HeavyJargonThreshold = *f.HeavyJargonThreshold
	}
	if f.MildJargonThreshold != nil {
		c.MildJargonThreshold = *f.MildJargonThreshold
	}
	if f.MaxEmojiPerSentence != nil {
		c.MaxEmojiPerSentence = *f.MaxEmojiPerSentence
	}
	if f.MaxLinksPer100Words != nil {
		c.MaxLinksPer100Words = *f.MaxLinksPer100Words
	}
	if f.PassiveVoice != nil {
		c.PassiveVoice = *f.PassiveVoice
	}

	if f.SpamPhrases != nil {
		c.SpamPhrases = f.SpamPhrases
	}
	if f.HeavyJargon != nil {
		c.HeavyJargon = f.HeavyJargon
	}
	if f.MildJargon != nil {
		c.MildJargon = f.MildJargon
	}
	if f.FluffPhrases != nil {
		c.FluffPhrases = f.FluffPhrases
	}
	if f.Intensifiers != nil {
		c.Intensifiers = f.Intensifiers
	}
	if f.CTAPhrases != nil {
		c.CTAPhrases = f.CTAPhrases
	}
	if f.HedgeWords != nil {
		c.HedgeWords = f.HedgeWords
	}
	if f.VagueDates != nil {
		c.VagueDates = f.VagueDates
	}
	if f.ClaimVerbs != nil {
		c.ClaimVerbs = f.ClaimVerbs
	}

	if f.RedundancyThreshold != nil {
		c.RedundancyThreshold = *f.RedundancyThreshold
	}
	if f.RedundancyMinWords != nil {
		c.RedundancyMinWords = *f.RedundancyMinWords
	}
	if f.ReadabilityThreshold != nil {
		c.ReadabilityThreshold = *f.ReadabilityThreshold
	}
	if f.LongParagraphWords != nil {
		c.LongParagraphWords = *f.LongParagraphWords
	}

	if g := f.Grammar; g != nil {
		if g.Enabled != nil {
			c.Grammar.Enabled = *g.Enabled
		}
		if g.Dictionary != nil {
			c.Grammar.Dictionary = g.Dictionary
		}
		if g.MinWordLength != nil {
			c.Grammar.MinWordLength = *g.MinWordLength
		}
		if g.SkipProperNouns != nil {
			c.Grammar.SkipProperNouns = *g.SkipProperNouns
		}
		if g.SkipNonLexical != nil {
			c.Grammar.SkipNonLexical = *g.SkipNonLexical
		}
		if g.MaxMisspellings != nil {
			c.Grammar.MaxMisspellings = *g.MaxMisspellings
		}
	}

	if f.Annotate != nil {
		c.Annotate = *f.Annotate
	}
}
