package checks

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/letterlint/letterlint/internal/config"
	"github.com/letterlint/letterlint/internal/model"
)

// Structural grammar patterns. These are fixed: they encode English
// rules, not editorial taste, so they take no configuration.
var (
	// agreementPatterns catch the most mechanical subject/verb number
	// mismatches. Deliberately narrow; a wider net needs a real parser.
	agreementPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(?:he|she|it)\s+(?:are|were|do|have)\b`),
		regexp.MustCompile(`\b(?:they|we|you)\s+(?:is|was|does|has)\b`),
	}

	// aBeforeVowel matches "a" before a vowel-initial word ("a apple").
	aBeforeVowel = regexp.MustCompile(`\ba\s+([aeiou]\w*)`)

	// anBeforeConsonant matches "an" before a consonant-initial word
	// ("an book").
	anBeforeConsonant = regexp.MustCompile(`\ban\s+([^aeiou\s\W]\w*)`)

	// anBeforeYuSound and aBeforeSilentH cover the sound-based halves:
	// "an user" and "a hour" are wrong despite passing the letter rule.
	anBeforeYuSound = regexp.MustCompile(`\ban\s+([aeiou]\w*)`)
	aBeforeSilentH  = regexp.MustCompile(`\ba\s+(h\w*)`)

	// spaceBeforePunct matches whitespace directly before closing
	// punctuation ("word ,").
	spaceBeforePunct = regexp.MustCompile(`\s[,.;:!?]`)

	// noSpaceAfterComma matches a comma glued to the next word. Digits
	// are excluded so thousands separators ("1,000") pass.
	noSpaceAfterComma = regexp.MustCompile(`,[^\s\d]`)

	// grammarToken matches candidate tokens for the spelling heuristic.
	grammarToken = regexp.MustCompile(`[A-Za-z][A-Za-z']*`)
)

// Sound-based exceptions to the letter-based article rule.
// yuSoundWords start with a vowel letter but a consonant sound, so they
// take "a" ("a university", "a user"). silentHWords start with a
// consonant letter but a vowel sound, so they take "an" ("an hour").
var (
	yuSoundWords = map[string]bool{
		"university": true,
		"unique":     true,
		"uniform":    true,
		"united":     true,
		"european":   true,
		"user":       true,
		"useful":     true,
		"one":        true,
		"once":       true,
	}

	silentHWords = map[string]bool{
		"hour":   true,
		"honest": true,
		"honor":  true,
		"heir":   true,
		"herb":   true,
	}
)

// GrammarCheck flags suspected misspellings plus a fixed battery of
// structural mistakes: repeated words, subject/verb disagreement,
// article misuse, and punctuation spacing.
type GrammarCheck struct{}

// NewGrammarCheck creates a GrammarCheck.
func NewGrammarCheck() *GrammarCheck {
	return &GrammarCheck{}
}

// Name returns the check name.
func (c *GrammarCheck) Name() string {
	return "grammar"
}

// Run inspects one sentence for grammar and spelling problems.
func (c *GrammarCheck) Run(sentence string, cfg *config.Config) (model.Finding, bool) {
	if !cfg.Grammar.Enabled {
		return model.Finding{}, false
	}

	lower := strings.ToLower(sentence)
	reasons := model.Reasons{}
	triggered := false

	if misspellings := c.findMisspellings(sentence, cfg); len(misspellings) > 0 {
		reasons["misspellings"] = misspellings
		triggered = true
	}
	if repeated := findRepeatedWord(lower); repeated != "" {
		reasons["repeated_word"] = repeated
		triggered = true
	}
	for _, p := range agreementPatterns {
		if m := p.FindString(lower); m != "" {
			reasons["agreement_error"] = m
			triggered = true
			break
		}
	}
	if m := findArticleError(lower); m != "" {
		reasons["article_error"] = m
		triggered = true
	}
	if spaceBeforePunct.MatchString(sentence) {
		reasons["space_before_punctuation"] = true
		triggered = true
	}
	if noSpaceAfterComma.MatchString(sentence) {
		reasons["missing_space_after_comma"] = true
		triggered = true
	}

	if !triggered {
		return model.Finding{}, false
	}

	return model.Finding{
		Tag:     model.TagGrammarSpelling,
		Reasons: reasons,
	}, true
}

// findMisspellings returns tokens absent from the dictionary, capped at
// the configured maximum per sentence.
func (c *GrammarCheck) findMisspellings(sentence string, cfg *config.Config) []string {
	dict := builtinDictionary()
	custom := customDictionary(cfg.Grammar.Dictionary)
	misspellings := make([]string, 0, cfg.Grammar.MaxMisspellings)

	for i, loc := range grammarToken.FindAllStringIndex(sentence, -1) {
		token := sentence[loc[0]:loc[1]]
		if len(token) < cfg.Grammar.MinWordLength {
			continue
		}
		if cfg.Grammar.SkipNonLexical && isNonLexical(sentence, loc, token) {
			continue
		}
		// Proper noun: capitalized anywhere but sentence start.
		if cfg.Grammar.SkipProperNouns && i > 0 && unicode.IsUpper(rune(token[0])) {
			continue
		}
		lower := strings.ToLower(token)
		if knownWord(dict, lower) || (custom != nil && knownWord(custom, lower)) {
			continue
		}
		misspellings = append(misspellings, token)
		if len(misspellings) >= cfg.Grammar.MaxMisspellings {
			break
		}
	}
	return misspellings
}

// isNonLexical reports tokens the spelling heuristic cannot judge:
// acronyms, and tokens glued to digits or hyphens in the source text
// ("v2", "cutting-edge", "GDPR").
func isNonLexical(sentence string, loc []int, token string) bool {
	if token == strings.ToUpper(token) {
		return true
	}
	// Adjacent digit or hyphen in the raw sentence means the regex split
	// a compound; judging half a compound produces junk.
	if loc[0] > 0 {
		prev := sentence[loc[0]-1]
		if prev == '-' || (prev >= '0' && prev <= '9') {
			return true
		}
	}
	if loc[1] < len(sentence) {
		next := sentence[loc[1]]
		if next == '-' || (next >= '0' && next <= '9') {
			return true
		}
	}
	return false
}

// findRepeatedWord returns the first word immediately repeated
// ("the the"), or empty. Go's regexp has no backreferences, so this is
// a token scan.
func findRepeatedWord(lower string) string {
	words := grammarToken.FindAllString(lower, -1)
	for i := 1; i < len(words); i++ {
		if words[i] == words[i-1] {
			return words[i]
		}
	}
	return ""
}

// findArticleError returns the first indefinite-article mismatch, or
// empty. The rule is letter-based with sound-based exception sets, so
// "a apple" and "an user" both flag while "a university" and "an hour"
// both pass.
func findArticleError(lower string) string {
	if m := aBeforeVowel.FindStringSubmatch(lower); m != nil && !yuSoundWords[m[1]] {
		return "a " + m[1]
	}
	if m := anBeforeConsonant.FindStringSubmatch(lower); m != nil && !silentHWords[m[1]] {
		return "an " + m[1]
	}
	if m := anBeforeYuSound.FindStringSubmatch(lower); m != nil && yuSoundWords[m[1]] {
		return "an " + m[1]
	}
	if m := aBeforeSilentH.FindStringSubmatch(lower); m != nil && silentHWords[m[1]] {
		return "a " + m[1]
	}
	return ""
}
