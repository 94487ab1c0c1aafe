package config

import "errors"

// Configuration validation errors returned by Config.Validate().
//
// Design decision: Package-level sentinel errors rather than fresh
// error values inside Validate(), so callers can branch with errors.Is()
// while the messages stay human-readable.
var (
	// ErrInvalidSentenceLimit is returned when the sentence length limit
	// is not positive. A zero limit would tag every sentence.
	ErrInvalidSentenceLimit = errors.New("invalid sentence length limit: must be positive")

	// ErrInvalidThreshold is returned when any per-check hit threshold
	// (spam, fluff, jargon) is not positive.
	ErrInvalidThreshold = errors.New("invalid check threshold: must be positive")

	// ErrInvalidRedundancyThreshold is returned when the Jaccard cutoff
	// is outside (0, 1].
	ErrInvalidRedundancyThreshold = errors.New("invalid redundancy threshold: must be in (0, 1]")

	// ErrInvalidRedundancyMinWords is returned when the redundancy
	// minimum sentence length is not positive.
	ErrInvalidRedundancyMinWords = errors.New("invalid redundancy minimum words: must be positive")

	// ErrInvalidReadabilityThreshold is returned when the readability
	// grade cutoff is not positive.
	ErrInvalidReadabilityThreshold = errors.New("invalid readability threshold: must be positive")

	// ErrInvalidLinkDensityCap is returned when the link density cap
	// is not positive.
	ErrInvalidLinkDensityCap = errors.New("invalid link density cap: must be positive")

	// ErrInvalidGrammarWordLength is returned when the grammar minimum
	// word length is not positive while the check is enabled.
	ErrInvalidGrammarWordLength = errors.New("invalid grammar minimum word length: must be positive")

	// ErrInvalidMaxMisspellings is returned when the misspelling cap
	// is not positive while the check is enabled.
	ErrInvalidMaxMisspellings = errors.New("invalid max misspellings: must be positive")
)
