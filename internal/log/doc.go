// Package log provides logging helpers built on the standard slog
// package.
//
// The TruncateHandler caps string attribute values so that document and
// sentence excerpts logged during analysis don't flood the output.
// Call sites log freely; the handler enforces the limit.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//
//	logger.Debug("normalized content",
//	    "excerpt", content, // capped at 256 runes
//	)
//
//	slog.SetDefault(logger)
package log
