// Package goquery provides an HTML anchor-tag parser built on
// PuerkitoBio/goquery.
package goquery

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/helpdex"
)

// Ensure AnchorParser implements helpdex.Parser at compile time.
var _ helpdex.Parser = (*AnchorParser)(nil)

// AnchorParser extracts topic/link pairs from <a href=...>TOPIC</a>
// substrings anywhere in a document. Surrounding document structure is
// ignored entirely: any markup that contains anchors works, including
// fragments that are not well-formed pages. Markup embedded in the anchor
// text is stripped and entity references are decoded by the HTML parser.
//
// An unclosed anchor at end of input is not an error; the text that exists
// before the break is still indexed, and pairs extracted earlier are
// retained.
type AnchorParser struct {
	// Expand selects the slower link resolution mode that normalizes
	// "../" segments.
	Expand bool
}

// NewAnchorParser creates a new AnchorParser with default (non-expanding)
// link resolution.
func NewAnchorParser() *AnchorParser {
	return &AnchorParser{}
}

// Name returns the parser's identifier.
func (p *AnchorParser) Name() string {
	return "anchor"
}

// Parse extracts all anchors from content into the manual. Topics that are
// empty after cleanup are discarded. Links are resolved against prefix and
// the manual's source document name.
func (p *AnchorParser) Parse(m *helpdex.Manual, content, prefix string) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return helpdex.Errorf(helpdex.EINVALID, "parse HTML: %v", err)
	}

	docName := filepath.Base(m.SourcePath)
	if docName == "." || docName == string(filepath.Separator) {
		docName = ""
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" {
			return
		}
		topic := cleanTopic(sel.Text())
		if topic == "" {
			return
		}
		m.AddTopic(topic, helpdex.ResolveLink(href, prefix, docName, p.Expand))
	})

	return nil
}

var spaceRunRe = regexp.MustCompile(`[ \t]+`)

// cleanTopic normalizes raw anchor text: newlines and carriage returns are
// dropped, runs of spaces and tabs collapse to one space, and surrounding
// whitespace is trimmed. Tag stripping and entity decoding have already
// happened in the HTML parser by the time text reaches here.
func cleanTopic(text string) string {
	text = strings.NewReplacer("\n", "", "\r", "").Replace(text)
	text = spaceRunRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
