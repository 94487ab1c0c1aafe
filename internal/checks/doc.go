// Package checks implements the ten per-sentence heuristic checks of the
// letterlint engine.
//
// # Design Philosophy
//
// Each check is a pure function of (sentence, config): no I/O, no shared
// mutable state, no errors. A sentence can trigger any number of checks
// at once; the Runner collects every finding and leaves prioritization
// to the annotation layer, because the report needs the complete set.
//
// Every finding carries its raw evidence in Reasons. A tag without the
// counters behind it is an accusation the writer can't act on.
//
// # Checks
//
//   - spam: promotional phrases, exclamation pileups, ALL-CAPS shouting
//   - jargon: buzzwords, overlong sentences, comma/conjunction pileups,
//     passive voice
//   - fluff: filler phrases, intensifiers, vague promises
//   - emoji: emoji count above the cap
//   - cta: call-to-action phrases (informational)
//   - hedging: hedge words on word boundaries
//   - vague_date: non-dates like "soon" and "recently"
//   - vague_number: figures with no unit, currency, or percent
//   - claim: absolute claims with no cited source
//   - grammar: dictionary spelling heuristic plus structural checks
//
// All word lists and compiled patterns are process-wide immutable after
// initialization.
package checks
