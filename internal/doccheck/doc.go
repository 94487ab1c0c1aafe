// Package doccheck holds document-level analyzers: link density,
// formatting consistency, near-duplicate sentence detection, and
// readability grading.
//
// Unlike the per-sentence checks, these look at the whole document at
// once and contribute flags and metrics to the report's global section.
// They never participate in annotation.
package doccheck
