// Package model defines the data types shared across the letterlint engine:
// tags and their fixed annotation priority, findings with their raw
// evidence, and the assembled analysis report.
//
// The types here are plain data. All values are created during a single
// Analyze call and never mutated afterwards; nothing in this package
// holds process-wide mutable state.
package model
