package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default thresholds and caps.
// The values mirror what experienced newsletter editors flag by hand:
// they are deliberately conservative so the tool errs toward silence
// rather than drowning the writer in tags.
const (
	// DefaultMaxSentenceWords is the word count above which a sentence
	// is tagged hard_to_read on length alone.
	DefaultMaxSentenceWords = 22

	// DefaultMaxExclamations is the number of "!" a sentence may carry
	// before it reads as spam.
	DefaultMaxExclamations = 1

	// DefaultMaxCapsWords is the number of ALL-CAPS words (3+ letters)
	// a sentence may carry before it reads as spam.
	DefaultMaxCapsWords = 1

	// DefaultSpamThreshold is the number of distinct spam-phrase hits
	// that triggers the spam check. One hit is enough: the default list
	// holds only unambiguous promotional phrases.
	DefaultSpamThreshold = 1

	// DefaultFluffThreshold is the number of fluff-phrase hits that
	// triggers the fluff check on its own. A single fluff phrase
	// combined with an intensifier also triggers it.
	DefaultFluffThreshold = 2

	// DefaultHeavyJargonThreshold is the number of heavy-jargon hits
	// that triggers the hard_to_read check.
	DefaultHeavyJargonThreshold = 1

	// DefaultMildJargonThreshold is the number of mild-jargon hits
	// that triggers the hard_to_read check.
	DefaultMildJargonThreshold = 2

	// DefaultMaxEmojiPerSentence is the emoji cap per sentence.
	DefaultMaxEmojiPerSentence = 1

	// DefaultMaxLinksPer100Words is the link density cap.
	DefaultMaxLinksPer100Words = 5.0

	// DefaultRedundancyThreshold is the Jaccard similarity at or above
	// which two sentences are reported as redundant.
	DefaultRedundancyThreshold = 0.85

	// DefaultRedundancyMinWords is the minimum word count a sentence
	// needs to participate in redundancy comparison. Short sentences
	// produce meaningless similarity scores.
	DefaultRedundancyMinWords = 6

	// DefaultReadabilityThreshold is the Flesch-Kincaid grade above
	// which the document is flagged. Grade 9 is the upper bound of
	// comfortable reading for a broad newsletter audience.
	DefaultReadabilityThreshold = 9.0

	// DefaultLongParagraphWords is the paragraph word count above which
	// a paragraph is reported in the global metrics.
	DefaultLongParagraphWords = 120

	// DefaultGrammarMinWordLength is the minimum token length the
	// spelling check considers. Short tokens are too noisy to check
	// against a finite dictionary.
	DefaultGrammarMinWordLength = 4

	// DefaultMaxMisspellings caps the misspellings reported per sentence.
	DefaultMaxMisspellings = 3

	// AppName is the application name used for XDG directory paths.
	AppName = "letterlint"
)

// GrammarConfig holds the grammar/spelling sub-options.
type GrammarConfig struct {
	// Enabled toggles the grammar/spelling check entirely.
	Enabled bool

	// Dictionary holds extra accepted words on top of the built-in
	// allow-list. Words are matched lower-cased.
	Dictionary []string

	// MinWordLength is the minimum token length checked for spelling.
	MinWordLength int

	// SkipProperNouns skips capitalized mid-sentence tokens.
	SkipProperNouns bool

	// SkipNonLexical skips acronyms and digit-containing tokens.
	SkipNonLexical bool

	// MaxMisspellings caps the misspellings reported per sentence.
	MaxMisspellings int
}

// Config holds every threshold, phrase list, and toggle the engine reads.
// It is read-only per invocation: the engine never writes to it, so one
// Config may serve concurrent Analyze calls without locking.
//
// Design decision: We use a single flat struct with one nested sub-struct
// for the grammar options because:
// 1. Most settings are independent scalars and lists; nesting adds noise
// 2. Grammar is the only check with its own enable flag and sub-options
// 3. A flat struct keeps the YAML override mapping one-to-one
type Config struct {
	// MaxSentenceWords is the sentence length limit for hard_to_read.
	MaxSentenceWords int

	// MaxExclamations is the "!" cap per sentence for spam_words.
	MaxExclamations int

	// MaxCapsWords is the ALL-CAPS word cap per sentence for spam_words.
	MaxCapsWords int

	// SpamThreshold is the distinct spam-phrase hit count for spam_words.
	SpamThreshold int

	// FluffThreshold is the fluff-phrase hit count for fluff.
	FluffThreshold int

	// HeavyJargonThreshold is the heavy-jargon hit count for hard_to_read.
	HeavyJargonThreshold int

	// MildJargonThreshold is the mild-jargon hit count for hard_to_read.
	MildJargonThreshold int

	// MaxEmojiPerSentence is the emoji cap for emoji_excess.
	MaxEmojiPerSentence int

	// MaxLinksPer100Words is the link density cap for the link_density flag.
	MaxLinksPer100Words float64

	// PassiveVoice toggles the passive-voice signal of hard_to_read.
	PassiveVoice bool

	// SpamPhrases are substrings counted by the spam check (lower-cased).
	SpamPhrases []string

	// HeavyJargon are substrings counted as heavy jargon.
	HeavyJargon []string

	// MildJargon are substrings counted as mild jargon.
	MildJargon []string

	// FluffPhrases are substrings counted by the fluff check.
	FluffPhrases []string

	// Intensifiers are words that upgrade a single fluff hit to a finding.
	Intensifiers []string

	// CTAPhrases are substrings matched by the call-to-action check.
	CTAPhrases []string

	// HedgeWords are whole words matched by the hedging check.
	HedgeWords []string

	// VagueDates are substrings matched by the vague-date check.
	VagueDates []string

	// ClaimVerbs are the strong-claim verbs of the
	// claim_without_evidence check.
	ClaimVerbs []string

	// RedundancyThreshold is the Jaccard similarity cutoff.
	RedundancyThreshold float64

	// RedundancyMinWords is the minimum sentence word count for
	// redundancy comparison.
	RedundancyMinWords int

	// ReadabilityThreshold is the Flesch-Kincaid grade cutoff.
	ReadabilityThreshold float64

	// LongParagraphWords is the long-paragraph word count cutoff.
	LongParagraphWords int

	// Grammar holds the grammar/spelling sub-options.
	Grammar GrammarConfig

	// Annotate toggles the in-place annotation pass. When false the
	// engine still produces the full report but returns the original
	// content unchanged.
	Annotate bool
}

// NewConfig creates a Config with all defaults populated.
// Callers override individual fields afterwards, typically by loading
// a YAML file with ApplyFile.
//
// Design decision: A constructor rather than zero values, because almost
// every default is non-zero and the phrase lists must be populated for
// the checks to do anything at all.
func NewConfig() *Config {
	return &Config{
		MaxSentenceWords:     DefaultMaxSentenceWords,
		MaxExclamations:      DefaultMaxExclamations,
		MaxCapsWords:         DefaultMaxCapsWords,
		SpamThreshold:        DefaultSpamThreshold,
		FluffThreshold:       DefaultFluffThreshold,
		HeavyJargonThreshold: DefaultHeavyJargonThreshold,
		MildJargonThreshold:  DefaultMildJargonThreshold,
		MaxEmojiPerSentence:  DefaultMaxEmojiPerSentence,
		MaxLinksPer100Words:  DefaultMaxLinksPer100Words,
		PassiveVoice:         true,
		SpamPhrases:          defaultSpamPhrases(),
		HeavyJargon:          defaultHeavyJargon(),
		MildJargon:           defaultMildJargon(),
		FluffPhrases:         defaultFluffPhrases(),
		Intensifiers:         defaultIntensifiers(),
		CTAPhrases:           defaultCTAPhrases(),
		HedgeWords:           defaultHedgeWords(),
		VagueDates:           defaultVagueDates(),
		ClaimVerbs:           defaultClaimVerbs(),
		RedundancyThreshold:  DefaultRedundancyThreshold,
		RedundancyMinWords:   DefaultRedundancyMinWords,
		ReadabilityThreshold: DefaultReadabilityThreshold,
		LongParagraphWords:   DefaultLongParagraphWords,
		Grammar: GrammarConfig{
			Enabled:         true,
			MinWordLength:   DefaultGrammarMinWordLength,
			SkipProperNouns: true,
			SkipNonLexical:  true,
			MaxMisspellings: DefaultMaxMisspellings,
		},
		Annotate: true,
	}
}

// XDGConfigDir returns the XDG config directory for letterlint.
// On Linux: ~/.config/letterlint
// On macOS: ~/Library/Application Support/letterlint
// On Windows: %APPDATA%\letterlint
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks that the configuration is usable.
// It returns the first problem found as a sentinel error; fixing one
// usually changes which others still apply.
func (c *Config) Validate() error {
	if c.MaxSentenceWords <= 0 {
		return ErrInvalidSentenceLimit
	}
	if c.SpamThreshold <= 0 || c.FluffThreshold <= 0 ||
		c.HeavyJargonThreshold <= 0 || c.MildJargonThreshold <= 0 {
		return ErrInvalidThreshold
	}
	if c.RedundancyThreshold <= 0 || c.RedundancyThreshold > 1 {
		return ErrInvalidRedundancyThreshold
	}
	if c.RedundancyMinWords <= 0 {
		return ErrInvalidRedundancyMinWords
	}
	if c.ReadabilityThreshold <= 0 {
		return ErrInvalidReadabilityThreshold
	}
	if c.MaxLinksPer100Words <= 0 {
		return ErrInvalidLinkDensityCap
	}
	if c.Grammar.Enabled {
		if c.Grammar.MinWordLength <= 0 {
			return ErrInvalidGrammarWordLength
		}
		if c.Grammar.MaxMisspellings <= 0 {
			return ErrInvalidMaxMisspellings
		}
	}
	return nil
}
