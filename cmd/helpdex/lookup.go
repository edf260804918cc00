package main

import (
	"fmt"

	"github.com/fwojciec/helpdex"
)

// Run executes the lookup command.
func (c *LookupCmd) Run(deps *Dependencies) error {
	// A definite filter miss means no manual indexes the topic.
	if deps.Topics != nil && !deps.Topics.Test(c.Topic) {
		fmt.Fprintf(deps.Stdout, "No help on %q\n", c.Topic)
		return nil
	}

	tuples := helpdex.SearchForMode(deps.Registry, c.Mode, c.Topic)
	if len(tuples) == 0 {
		fmt.Fprintf(deps.Stdout, "No help on %q\n", c.Topic)
		return nil
	}

	for _, tu := range tuples {
		fmt.Fprintf(deps.Stdout, "%s\t%s\t%s\n", tu.Topic, tu.Manual, tu.Link)
	}
	return nil
}
