// Package config provides the letterlint configuration: every threshold,
// phrase list, and toggle the analysis engine reads, with defaults and a
// YAML file loader that merges caller overrides onto them.
//
// A Config is read-only once built. The engine never mutates it, so one
// instance can serve concurrent analyses.
package config
