package model

// SentenceResult is the per-sentence entry in the analysis report.
// Tags lists every category the sentence triggered (deduplicated,
// order of first trigger); Reasons keys the raw evidence by tag name.
type SentenceResult struct {
	// Sentence is the trimmed sentence text as produced by segmentation.
	Sentence string `json:"sentence"`

	// Tags is the deduplicated set of ALL triggered tags.
	// It is not filtered by annotation priority.
	Tags []Tag `json:"tags"`

	// Reasons maps each triggered tag to its raw evidence.
	Reasons map[Tag]Reasons `json:"reasons"`
}

// Flag is a document-level finding in GlobalMetrics.
type Flag struct {
	// Tag is the document-level category.
	Tag Tag `json:"tag"`

	// Reasons is the raw evidence behind the flag.
	Reasons Reasons `json:"reasons"`
}

// Readability carries the computed Flesch-Kincaid grade together with
// the threshold it was judged against, so report consumers don't need
// the configuration to interpret the number.
type Readability struct {
	// FleschKincaidGrade is the computed grade level, rounded to two decimals.
	FleschKincaidGrade float64 `json:"flesch_kincaid_grade"`

	// Threshold is the configured maximum grade.
	Threshold float64 `json:"threshold"`
}

// RedundantPair identifies two near-duplicate sentences by their index
// in segmentation order, with their Jaccard similarity score.
type RedundantPair struct {
	// First is the segmentation index of the earlier sentence.
	First int `json:"first"`

	// Second is the segmentation index of the later sentence.
	Second int `json:"second"`

	// Score is the Jaccard similarity, rounded to two decimals.
	Score float64 `json:"score"`
}

// GlobalMetrics aggregates document-level counts and flags.
type GlobalMetrics struct {
	// WordCount is the word count of the normalized text.
	WordCount int `json:"word_count"`

	// SentenceCount is the number of non-empty segments the segmenter produced.
	SentenceCount int `json:"sentence_count"`

	// LinkCount is the number of URL matches in the original content.
	LinkCount int `json:"link_count"`

	// LinkDensityPer100Words is LinkCount / max(WordCount, 1) * 100,
	// rounded to two decimals.
	LinkDensityPer100Words float64 `json:"link_density_per_100_words"`

	// LongParagraphs holds the word counts of paragraphs exceeding the
	// long-paragraph limit, in document order.
	LongParagraphs []int `json:"long_paragraphs,omitempty"`

	// Readability is the Flesch-Kincaid result.
	Readability Readability `json:"readability"`

	// Flags lists the triggered document-level findings.
	Flags []Flag `json:"flags,omitempty"`
}

// AnalysisReport is the structured half of the engine output.
// It is assembled once and never mutated afterwards.
type AnalysisReport struct {
	// PerSentence holds one entry per segmented sentence, in segmentation
	// order, flagged or not. Unflagged sentences carry empty Tags.
	PerSentence []SentenceResult `json:"per_sentence"`

	// Global holds the document-level metrics and flags.
	Global GlobalMetrics `json:"global"`
}

// Result pairs the annotated document with its report.
type Result struct {
	// Annotated is the original content with zero or more non-overlapping
	// <tag>...</tag> wrappers inserted. When annotation is disabled it is
	// the original content unchanged.
	Annotated string `json:"annotated"`

	// Report is the structured analysis report.
	Report *AnalysisReport `json:"report"`
}

// FlaggedSentences returns how many sentences carry at least one tag.
func (r *AnalysisReport) FlaggedSentences() int {
	n := 0
	for _, s := range r.PerSentence {
		if len(s.Tags) > 0 {
			n++
		}
	}
	return n
}

// TagCounts returns how many sentences triggered each tag.
// Useful for report summaries.
func (r *AnalysisReport) TagCounts() map[Tag]int {
	counts := make(map[Tag]int)
	for _, s := range r.PerSentence {
		for _, t := range s.Tags {
			counts[t]++
		}
	}
	return counts
}

// HasFlag reports whether the given document-level tag was raised.
func (g *GlobalMetrics) HasFlag(tag Tag) bool {
	for _, f := range g.Flags {
		if f.Tag == tag {
			return true
		}
	}
	return false
}
