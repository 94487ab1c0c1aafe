// Package annotate inserts category tags into the original newsletter
// content around flagged sentences.
//
// The report and the annotation are two independent derivations of the
// same finding list: the report records every triggered tag per
// sentence, while the annotation wraps each sentence in at most one tag,
// the highest-priority one. The two are computed separately; this
// package only handles the single-tag half.
package annotate
