package checks

import (
	_ "embed"
	"strings"
	"sync"
)

// words.txt is the built-in allow-list for the spelling heuristic: one
// lower-cased base form per line. It is intentionally an allow-list of
// common prose vocabulary, not a full lexicon; the suffix fallback in
// knownWord covers regular inflections.
//
//go:embed words.txt
var builtinWordsFile string

// builtinDictionary parses the embedded list once. Process-wide
// immutable after first use.
var builtinDictionary = sync.OnceValue(func() map[string]struct{} {
	lines := strings.Split(builtinWordsFile, "\n")
	dict := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			dict[line] = struct{}{}
		}
	}
	return dict
})

// customDictionary returns the lookup set for the configured extra
// words, or nil when none are set. Custom words extend the built-in
// list; they never replace it, since writers add product names and
// niche vocabulary on top of ordinary English.
func customDictionary(custom []string) map[string]struct{} {
	if len(custom) == 0 {
		return nil
	}
	dict := make(map[string]struct{}, len(custom))
	for _, w := range custom {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			dict[w] = struct{}{}
		}
	}
	return dict
}

// inflectionSuffixes are stripped, one at a time, when a token misses
// the dictionary. Crude stemming, but it keeps the embedded list small
// without flagging every plural and past tense.
var inflectionSuffixes = []string{"'s", "s", "es", "ed", "d", "ing", "ly", "er", "est"}

// knownWord reports whether the lower-cased token, or a base form of it,
// is in the dictionary.
func knownWord(dict map[string]struct{}, lower string) bool {
	if _, ok := dict[lower]; ok {
		return true
	}
	for _, suffix := range inflectionSuffixes {
		base, found := strings.CutSuffix(lower, suffix)
		if !found || len(base) < 2 {
			continue
		}
		if _, ok := dict[base]; ok {
			return true
		}
		// "running" -> "runn" -> "run": undo consonant doubling.
		if len(base) >= 3 && base[len(base)-1] == base[len(base)-2] {
			if _, ok := dict[base[:len(base)-1]]; ok {
				return true
			}
		}
		// "hoping" -> "hop" vs "hope": try restoring a trailing e.
		if _, ok := dict[base+"e"]; ok {
			return true
		}
	}
	return false
}
