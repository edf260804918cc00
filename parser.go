package helpdex

// Parser populates a manual's topic index from raw document content.
// Implementations resolve links against the given prefix via ResolveLink
// and deduplicate through Manual.AddTopic.
type Parser interface {
	// Parse extracts topic/link pairs from content into the manual.
	// Reaching end of input mid-entry is not an error: pairs extracted
	// before the break are retained.
	Parse(m *Manual, content, prefix string) error

	// Name returns the parser's identifier (e.g., "anchor", "tsv").
	Name() string
}

// ParserRegistry selects a parser by source filename. Rules are tried in
// registration order; the first pattern whose case-insensitive match
// succeeds wins.
type ParserRegistry interface {
	// Register appends a rule. The pattern is a regular expression
	// matched case-insensitively against the source filename.
	Register(pattern string, parser Parser) error

	// ForFilename returns the first matching parser.
	// Returns ENOTFOUND if no registered pattern matches.
	ForFilename(filename string) (Parser, error)
}
