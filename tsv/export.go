package tsv

import (
	"io"
	"strings"

	"github.com/fwojciec/helpdex"
)

// Export writes a manual in the tab-delimited index format, one
// "TOPIC<TAB>LINK" line per entry, sorted ascending by topic. The output
// round-trips through Parser: re-parsing it yields an identical topic/link
// set.
func Export(w io.Writer, m *helpdex.Manual) error {
	for _, tu := range helpdex.AllTopics([]*helpdex.Manual{m}) {
		if _, err := io.WriteString(w, tu.Topic+"\t"+tu.Link+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// ExportString is a convenience wrapper around Export.
func ExportString(m *helpdex.Manual) string {
	var sb strings.Builder
	_ = Export(&sb, m) // strings.Builder never fails
	return sb.String()
}
