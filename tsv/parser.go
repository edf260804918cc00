// Package tsv provides the tab-delimited index parser and the matching
// manual exporter. The format is one "TOPIC<TAB>LINK" pair per line, with
// an optional trailing carriage return; there is no escaping mechanism, so
// tabs and newlines cannot appear inside a topic or link.
package tsv

import (
	"bufio"
	"path/filepath"
	"strings"

	"github.com/fwojciec/helpdex"
)

// Ensure Parser implements helpdex.Parser at compile time.
var _ helpdex.Parser = (*Parser)(nil)

// Parser extracts topic/link pairs line by line. Topic text is taken
// verbatim: no markup cleanup of any kind. Lines without a tab are skipped.
type Parser struct {
	// Expand selects the slower link resolution mode that normalizes
	// "../" segments.
	Expand bool
}

// NewParser creates a new Parser with default (non-expanding) link
// resolution.
func NewParser() *Parser {
	return &Parser{}
}

// Name returns the parser's identifier.
func (p *Parser) Name() string {
	return "tsv"
}

// Parse scans content line by line for TOPIC<TAB>LINK pairs into the
// manual. Links are resolved against prefix and the manual's source
// document name.
func (p *Parser) Parse(m *helpdex.Manual, content, prefix string) error {
	docName := filepath.Base(m.SourcePath)
	if docName == "." || docName == string(filepath.Separator) {
		docName = ""
	}

	sc := bufio.NewScanner(strings.NewReader(content))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		topic, link, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		m.AddTopic(topic, helpdex.ResolveLink(link, prefix, docName, p.Expand))
	}
	if err := sc.Err(); err != nil {
		return helpdex.Errorf(helpdex.EINVALID, "scan index: %v", err)
	}
	return nil
}
