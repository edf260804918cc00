package mock

import "github.com/fwojciec/helpdex"

var _ helpdex.Parser = (*Parser)(nil)

// Parser is a mock implementation of helpdex.Parser.
type Parser struct {
	ParseFn func(m *helpdex.Manual, content, prefix string) error
	NameFn  func() string
}

func (p *Parser) Parse(m *helpdex.Manual, content, prefix string) error {
	return p.ParseFn(m, content, prefix)
}

func (p *Parser) Name() string {
	if p.NameFn == nil {
		return "mock"
	}
	return p.NameFn()
}

var _ helpdex.ParserRegistry = (*ParserRegistry)(nil)

// ParserRegistry is a mock implementation of helpdex.ParserRegistry.
type ParserRegistry struct {
	RegisterFn    func(pattern string, parser helpdex.Parser) error
	ForFilenameFn func(filename string) (helpdex.Parser, error)
}

func (r *ParserRegistry) Register(pattern string, parser helpdex.Parser) error {
	return r.RegisterFn(pattern, parser)
}

func (r *ParserRegistry) ForFilename(filename string) (helpdex.Parser, error) {
	return r.ForFilenameFn(filename)
}
