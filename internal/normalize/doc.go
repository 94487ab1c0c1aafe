// Package normalize turns raw newsletter content into the plain text and
// sentence sequence the heuristic checks operate on.
//
// Normalization strips markup and collapses whitespace for analysis only;
// the original input string is preserved untouched for the annotation
// pass. Segmentation is intentionally naive: sentences split on runs of
// '.', '!', '?' with no special-casing for abbreviations or decimals.
// Improving it would move sentence boundaries under every existing
// report consumer, so the naive behavior is kept stable.
package normalize
