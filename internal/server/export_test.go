package server

// Internal helpers exposed for tests.
var (
	FormatDuration = formatDuration
	StatusSymbol   = statusSymbol
	QueryInt       = queryInt
)
