// Package main provides the entry point for the letterlint CLI.
//
// Letterlint analyzes newsletter-style text and flags quality issues:
// spam-like language, jargon, filler, grammar problems, vague claims,
// formatting inconsistencies, redundancy, and readability.
//
// Usage:
//
//	letterlint lint <file>
//	letterlint lint --json draft.html
//
// See --help for all available options.
package main

// main is the entry point for letterlint.
func main() {
	Execute()
}
