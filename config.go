package helpdex

// Config describes the manual sources to index. It is loaded by an external
// collaborator (see the yaml package); the core only consumes its shape.
type Config struct {
	// Source groups, processed strictly in order.
	Sources []SourceGroup

	// ExpandLinks selects the slower link resolution mode that
	// normalizes "../" segments.
	ExpandLinks bool

	// Parsers are extra filename-pattern rules tried before the default
	// table (anchor parser for .html/.htm, tsv as universal fallback).
	Parsers []ParserRule
}

// SourceGroup associates a set of source files with context modes.
// An empty mode list means the group's manuals apply in every mode.
type SourceGroup struct {
	Modes []string
	Files []SourceFile
}

// SourceFile names one source document and the URL prefix its relative
// links resolve against.
type SourceFile struct {
	Path   string
	Prefix string
}

// ParserRule binds a filename pattern to a named parser format.
type ParserRule struct {
	// Pattern is a regular expression matched case-insensitively
	// against source filenames.
	Pattern string

	// Format names a registered parser: "anchor" or "tsv".
	Format string
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	for _, group := range c.Sources {
		for _, f := range group.Files {
			if f.Path == "" {
				return Errorf(EINVALID, "source file path required")
			}
		}
	}
	for _, rule := range c.Parsers {
		if rule.Pattern == "" {
			return Errorf(EINVALID, "parser rule pattern required")
		}
		if rule.Format == "" {
			return Errorf(EINVALID, "parser rule format required")
		}
	}
	return nil
}
