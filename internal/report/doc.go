// Package report renders analysis results in text, JSON, and Markdown
// formats behind a common Writer interface.
package report
