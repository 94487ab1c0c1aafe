package checks

import (
	"regexp"
	"strings"

	"github.com/letterlint/letterlint/internal/config"
	"github.com/letterlint/letterlint/internal/model"
)

// Check is one per-sentence heuristic. Each check is a pure function of
// the sentence and the configuration: it either produces one finding or
// nothing, never errors, and never touches shared state.
//
// Design decision: We use an interface rather than plain functions
// because checks carry precompiled regexes, and Name() gives the runner
// something to log. A single coordinator keeps registration in one
// place so every sentence of a document sees the same check set.
type Check interface {
	// Name returns the check's name for logging.
	Name() string

	// Run inspects one sentence. The boolean reports whether a finding
	// was produced.
	Run(sentence string, cfg *config.Config) (model.Finding, bool)
}

// Runner executes every registered check against a sentence.
type Runner struct {
	checks []Check
}

// NewRunner creates a Runner with all built-in checks registered, in
// a fixed order. Order does not affect the report (tags are a set) nor
// annotation (priority is resolved by tag, not by check order); it only
// fixes the order of Reasons insertion for deterministic output.
func NewRunner() *Runner {
	r := &Runner{checks: make([]Check, 0, 10)}

	r.Register(NewSpamCheck())
	r.Register(NewJargonCheck())
	r.Register(NewFluffCheck())
	r.Register(NewEmojiCheck())
	r.Register(NewCTACheck())
	r.Register(NewHedgingCheck())
	r.Register(NewVagueDateCheck())
	r.Register(NewVagueNumberCheck())
	r.Register(NewClaimCheck())
	r.Register(NewGrammarCheck())

	return r
}

// Register adds a check to the runner.
func (r *Runner) Register(c Check) {
	r.checks = append(r.checks, c)
}

// Run executes all checks on one sentence and returns every finding.
// A sentence can trigger several categories at once; prioritization for
// annotation happens later and never filters this list.
func (r *Runner) Run(sentence string, cfg *config.Config) []model.Finding {
	findings := make([]model.Finding, 0)
	for _, c := range r.checks {
		if f, ok := c.Run(sentence, cfg); ok {
			findings = append(findings, f)
		}
	}
	return findings
}

// matchPhrases returns the distinct phrases from the list found as
// substrings of the lower-cased sentence, in list order.
func matchPhrases(lower string, phrases []string) []string {
	matched := make([]string, 0)
	for _, p := range phrases {
		if p == "" {
			continue
		}
		if strings.Contains(lower, p) {
			matched = append(matched, p)
		}
	}
	return matched
}

// matchWords returns the distinct words from the list found on word
// boundaries in the lower-cased sentence, in list order.
func matchWords(lower string, words []string) []string {
	matched := make([]string, 0)
	for _, w := range words {
		if w == "" {
			continue
		}
		if wordBoundaryPattern(w).MatchString(lower) {
			matched = append(matched, w)
		}
	}
	return matched
}

// wordPatternCache holds precompiled boundary patterns for the default
// word lists. Built once at init and never written again, so concurrent
// Analyze calls read it without locking. Words from custom configured
// lists compile per call.
var wordPatternCache = buildWordPatternCache()

// buildWordPatternCache precompiles boundary patterns for every word in
// the default lists. Process-wide immutable after init.
func buildWordPatternCache() map[string]*regexp.Regexp {
	cache := make(map[string]*regexp.Regexp)
	cfg := config.NewConfig()
	for _, list := range [][]string{cfg.HedgeWords, cfg.Intensifiers, cfg.ClaimVerbs, conjunctions} {
		for _, w := range list {
			cache[w] = compileWordPattern(w)
		}
	}
	return cache
}

// wordBoundaryPattern returns a compiled \bword\b pattern, from the
// static cache when possible.
func wordBoundaryPattern(w string) *regexp.Regexp {
	if re, ok := wordPatternCache[w]; ok {
		return re
	}
	return compileWordPattern(w)
}

func compileWordPattern(w string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`)
}
