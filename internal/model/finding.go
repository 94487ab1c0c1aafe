package model

// Reasons records the raw counters and booleans that triggered a finding.
// The values survive into the report verbatim so that consumers (and tests)
// can see exactly why a sentence was flagged, not just that it was.
//
// Keys are check-specific ("spam_hits", "word_count", "hedges", ...).
// Values are the raw evidence: ints, bools, strings, or string slices.
type Reasons map[string]any

// Finding is the result of one heuristic check on one sentence:
// a tag plus the raw evidence that triggered it.
//
// Design decision: We keep Reasons as an open map rather than a struct
// per check because each check records different counters, and the
// report must carry them through untouched. A typed struct per check
// would force the assembler to know every check's internals.
type Finding struct {
	// Tag is the category this finding assigns.
	Tag Tag `json:"tag"`

	// Reasons is the raw evidence behind the finding.
	Reasons Reasons `json:"reasons"`
}

// TopFinding returns the finding whose tag ranks highest in the fixed
// annotation priority order, or false if the list is empty.
func TopFinding(findings []Finding) (Finding, bool) {
	if len(findings) == 0 {
		return Finding{}, false
	}
	top := findings[0]
	for _, f := range findings[1:] {
		if f.Tag.Priority() < top.Tag.Priority() {
			top = f
		}
	}
	return top, true
}

// TagSet returns the deduplicated tag names of all findings, preserving
// first-seen order. This feeds the report's per-sentence tags field and
// is deliberately NOT priority-filtered.
func TagSet(findings []Finding) []Tag {
	seen := make(map[Tag]bool, len(findings))
	tags := make([]Tag, 0, len(findings))
	for _, f := range findings {
		if seen[f.Tag] {
			continue
		}
		seen[f.Tag] = true
		tags = append(tags, f.Tag)
	}
	return tags
}
