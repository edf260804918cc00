package load

import (
	"regexp"

	"github.com/fwojciec/helpdex"
)

// Ensure Parsers implements helpdex.ParserRegistry at compile time.
var _ helpdex.ParserRegistry = (*Parsers)(nil)

// Parsers selects a parser by source filename from an ordered rule table.
// Rules are tried in registration order; the first pattern whose
// case-insensitive match succeeds wins, so specific rules must be
// registered before the universal fallback.
type Parsers struct {
	rules []rule
}

type rule struct {
	re     *regexp.Regexp
	parser helpdex.Parser
}

// NewParsers returns an empty rule table.
func NewParsers() *Parsers {
	return &Parsers{}
}

// Register appends a rule. The pattern is compiled as a case-insensitive
// regular expression.
func (p *Parsers) Register(pattern string, parser helpdex.Parser) error {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return helpdex.Errorf(helpdex.EINVALID, "invalid parser pattern %q: %v", pattern, err)
	}
	p.rules = append(p.rules, rule{re: re, parser: parser})
	return nil
}

// ForFilename returns the first matching parser.
func (p *Parsers) ForFilename(filename string) (helpdex.Parser, error) {
	for _, r := range p.rules {
		if r.re.MatchString(filename) {
			return r.parser, nil
		}
	}
	return nil, helpdex.Errorf(helpdex.ENOTFOUND, "no parser matches %q", filename)
}
