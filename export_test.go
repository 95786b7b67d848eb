package goofx

// Exported for tests.
var (
	EscapeString = escapeString
	ApplyRepairs = applyRepairs
)
