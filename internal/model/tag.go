package model

// Tag identifies a content-quality issue category assigned to a sentence
// or to the whole document. The tag set is closed: the engine never emits
// a tag outside the constants below.
type Tag string

// Sentence-level tags. These are the ten categories the heuristic checks
// can assign. Document-level flags reuse the Tag type with their own names.
const (
	// TagSpamWords marks promotional or spam-like language.
	TagSpamWords Tag = "spam_words"

	// TagGrammarSpelling marks suspected misspellings or structural
	// grammar mistakes (repeated words, agreement errors, and so on).
	TagGrammarSpelling Tag = "grammar_spelling"

	// TagHardToRead marks jargon-heavy, overlong, or convoluted sentences.
	TagHardToRead Tag = "hard_to_read"

	// TagFluff marks filler phrases and empty intensifiers.
	TagFluff Tag = "fluff"

	// TagEmojiExcess marks sentences with more emoji than the configured cap.
	TagEmojiExcess Tag = "emoji_excess"

	// TagCTA marks call-to-action phrases. This is informational:
	// a CTA is not inherently bad, but writers want to know where they are.
	TagCTA Tag = "cta"

	// TagHedging marks hedge words that weaken a statement.
	TagHedging Tag = "hedging"

	// TagVagueDate marks vague time references ("soon", "recently").
	TagVagueDate Tag = "vague_date"

	// TagVagueNumber marks bare numbers with no unit, currency, or
	// percent marker.
	TagVagueNumber Tag = "vague_number"

	// TagClaimWithoutEvidence marks strong absolute claims that cite
	// no source.
	TagClaimWithoutEvidence Tag = "claim_without_evidence"
)

// Document-level flag tags reported in GlobalMetrics.Flags.
const (
	// TagLinkDensity flags documents exceeding the links-per-100-words cap.
	TagLinkDensity Tag = "link_density"

	// TagFormattingIssues flags inconsistent whitespace, quotes, or dashes.
	TagFormattingIssues Tag = "formatting_issues"

	// TagRedundantSentences flags near-duplicate sentence pairs.
	TagRedundantSentences Tag = "redundant_sentences"

	// TagReadabilityGrade flags documents whose Flesch-Kincaid grade
	// exceeds the configured threshold.
	TagReadabilityGrade Tag = "readability_grade"
)

// tagPriority maps sentence-level tags to their annotation rank.
// Lower values outrank higher ones. The order is fixed and is used ONLY
// to pick the single tag that wraps a sentence in the annotated output;
// the report always carries every triggered tag.
//
// Design decision: We keep the order in a map rather than deriving it
// from declaration order because the annotation priority is a contract
// with report consumers, not an accident of source layout.
var tagPriority = map[Tag]int{
	TagSpamWords:            0,
	TagGrammarSpelling:      1,
	TagHardToRead:           2,
	TagFluff:                3,
	TagEmojiExcess:          4,
	TagCTA:                  5,
	TagHedging:              6,
	TagVagueDate:            7,
	TagVagueNumber:          8,
	TagClaimWithoutEvidence: 9,
}

// unknownTagPriority sorts tags missing from the table after every known tag.
const unknownTagPriority = 100

// Priority returns the annotation rank of the tag. Lower ranks win.
// Unknown tags (which the engine never produces) sort last.
func (t Tag) Priority() int {
	if p, ok := tagPriority[t]; ok {
		return p
	}
	return unknownTagPriority
}

// String returns the tag name as used in reports and annotations.
func (t Tag) String() string {
	return string(t)
}

// SentenceTags returns all sentence-level tags in annotation priority order.
func SentenceTags() []Tag {
	return []Tag{
		TagSpamWords,
		TagGrammarSpelling,
		TagHardToRead,
		TagFluff,
		TagEmojiExcess,
		TagCTA,
		TagHedging,
		TagVagueDate,
		TagVagueNumber,
		TagClaimWithoutEvidence,
	}
}
