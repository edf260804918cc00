package main

import (
	"fmt"

	"github.com/fwojciec/helpdex"
)

// Run executes the topics command.
func (c *TopicsCmd) Run(deps *Dependencies) error {
	var manuals []*helpdex.Manual
	if c.Mode != "" {
		manuals = deps.Registry.ManualsForMode(c.Mode)
	} else {
		manuals = deps.Registry.Manuals()
	}

	tuples := helpdex.AllTopics(manuals)
	if len(tuples) == 0 {
		fmt.Fprintln(deps.Stdout, "No topics indexed. Use 'helpdex load' to build manuals.")
		return nil
	}

	for _, tu := range tuples {
		fmt.Fprintf(deps.Stdout, "%s\t%s\t%s\n", tu.Topic, tu.Manual, tu.Link)
	}
	return nil
}
