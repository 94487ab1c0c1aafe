package checks

import (
	"regexp"
	"strings"

	"github.com/letterlint/letterlint/internal/config"
	"github.com/letterlint/letterlint/internal/model"
)

// numberPattern matches candidate numeric tokens: integers and simple
// decimals. Context around each match decides whether it is "bare".
var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)*`)

// unitWords are the words that, when they immediately follow a number,
// make it concrete rather than vague.
var unitWords = map[string]bool{
	"percent":     true,
	"percentage":  true,
	"users":       true,
	"subscribers": true,
	"readers":     true,
	"people":      true,
	"customers":   true,
	"seconds":     true,
	"minutes":     true,
	"hours":       true,
	"days":        true,
	"weeks":       true,
	"months":      true,
	"years":       true,
	"times":       true,
	"dollars":     true,
	"euros":       true,
	"pounds":      true,
	"cents":       true,
	"km":          true,
	"miles":       true,
	"kg":          true,
	"mb":          true,
	"gb":          true,
	"ms":          true,
}

// currencyMarkers are single-byte symbols that mark a number as money
// when they immediately precede it. Multi-byte symbols (€, £, ¥) are
// handled separately.
var currencyMarkers = map[byte]bool{
	'$': true,
}

// VagueNumberCheck flags bare numbers: a figure with no adjacent unit,
// currency, or percent marker that is not recognizable as a version,
// year, or identifier. "We grew 47" tells the reader nothing; "47%" or
// "47 subscribers" does.
type VagueNumberCheck struct{}

// NewVagueNumberCheck creates a VagueNumberCheck.
func NewVagueNumberCheck() *VagueNumberCheck {
	return &VagueNumberCheck{}
}

// Name returns the check name.
func (c *VagueNumberCheck) Name() string {
	return "vague_number"
}

// Run inspects numeric tokens in the sentence.
func (c *VagueNumberCheck) Run(sentence string, _ *config.Config) (model.Finding, bool) {
	vague := make([]string, 0)

	for _, loc := range numberPattern.FindAllStringIndex(sentence, -1) {
		num := sentence[loc[0]:loc[1]]
		if !isBareNumber(sentence, loc[0], loc[1], num) {
			continue
		}
		vague = append(vague, num)
	}

	if len(vague) == 0 {
		return model.Finding{}, false
	}

	return model.Finding{
		Tag: model.TagVagueNumber,
		Reasons: model.Reasons{
			"numbers": vague,
		},
	}, true
}

// isBareNumber decides whether the number at sentence[start:end] lacks
// any concretizing context.
func isBareNumber(sentence string, start, end int, num string) bool {
	// Recognizable shapes are never vague.
	if isYear(num) || isVersionOrID(sentence, start, num) {
		return false
	}

	// Currency marker immediately before: $49, €49 (multi-byte symbols
	// checked on the decoded prefix).
	if start > 0 && currencyMarkers[sentence[start-1]] {
		return false
	}
	for _, sym := range []string{"€", "£", "¥"} {
		if strings.HasSuffix(sentence[:start], sym) {
			return false
		}
	}

	// Percent or unit suffix attached directly: 47%, 10x, 50k, 100MB.
	if end < len(sentence) {
		next := sentence[end]
		if next == '%' {
			return false
		}
		if isASCIILetter(next) {
			return false
		}
	}

	// A unit word immediately after: "47 subscribers".
	rest := strings.TrimLeft(sentence[end:], " ")
	if w := firstWord(rest); w != "" && unitWords[strings.ToLower(w)] {
		return false
	}

	return true
}

// isYear reports whether the token is a plausible four-digit year.
func isYear(num string) bool {
	if len(num) != 4 || strings.Contains(num, ".") {
		return false
	}
	return num[0] >= '1' && num[0] <= '2'
}

// isVersionOrID reports whether the number reads as a version string
// ("v2", "3.1.4") or a long identifier (five or more digits).
func isVersionOrID(sentence string, start int, num string) bool {
	// Dotted version: two or more components.
	if strings.Count(num, ".") >= 2 {
		return true
	}
	// v-prefixed versions (v2, V1.3) and #-prefixed identifiers (#42).
	if start > 0 {
		prev := sentence[start-1]
		if prev == 'v' || prev == 'V' || prev == '#' {
			return true
		}
	}
	// Long digit runs are order numbers, zip codes, issue IDs.
	digits := 0
	for i := 0; i < len(num); i++ {
		if num[i] >= '0' && num[i] <= '9' {
			digits++
		}
	}
	return digits >= 5
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// firstWord returns the leading letter-run of s.
func firstWord(s string) string {
	for i := 0; i < len(s); i++ {
		if !isASCIILetter(s[i]) {
			return s[:i]
		}
	}
	return s
}
