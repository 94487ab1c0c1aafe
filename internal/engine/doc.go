// Package engine orchestrates a full document analysis: normalization,
// sentence segmentation, the per-sentence check battery, annotation,
// and the document-level analyzers, assembled into one result.
//
// The engine favors total functions: malformed markup degrades to
// best-effort stripped text, unmatched annotation targets are skipped
// silently, and the only hard failure is empty input.
package engine
