package main

import (
	"fmt"

	"github.com/fwojciec/helpdex/complete"
)

// Run executes the complete command: one completion request, optionally
// repeated to page through an ambiguous candidate list.
func (c *CompleteCmd) Run(deps *Dependencies) error {
	session := complete.NewSession(deps.Registry, c.Mode)
	if c.Page > 0 {
		session.PageSize = c.Page
	}

	resp := session.Type(c.Prefix)
	for i := 0; i < c.Repeat; i++ {
		resp = session.Type(c.Prefix)
	}

	switch resp.State {
	case complete.StateNoMatch:
		fmt.Fprintf(deps.Stdout, "No topics match %q\n", c.Prefix)
	case complete.StateUnique:
		tu := resp.Matches[0]
		fmt.Fprintf(deps.Stdout, "%s\t%s\t%s\n", tu.Topic, tu.Manual, tu.Link)
	case complete.StateAmbiguous:
		if resp.Extension != "" {
			fmt.Fprintf(deps.Stdout, "Completes to %q (%d matches)\n", resp.Extension, len(resp.Matches))
		} else {
			fmt.Fprintf(deps.Stdout, "%d matches\n", len(resp.Matches))
		}
		for _, tu := range resp.Page {
			fmt.Fprintf(deps.Stdout, "%s\t%s\t%s\n", tu.Topic, tu.Manual, tu.Link)
		}
	}
	return nil
}
