package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/helpdex"
)

// Run executes the manuals command.
func (c *ManualsCmd) Run(deps *Dependencies) error {
	var manuals []*helpdex.Manual
	if c.Mode != "" {
		manuals = deps.Registry.ManualsForMode(c.Mode)
	} else {
		manuals = deps.Registry.Manuals()
	}

	if len(manuals) == 0 {
		fmt.Fprintln(deps.Stdout, "No manuals registered. Use 'helpdex load' to build them.")
		return nil
	}

	for _, m := range manuals {
		fmt.Fprintf(deps.Stdout, "%s\t%d topics\tmodes=%s\t%s\n",
			m.Name, m.Len(), strings.Join(m.Modes(), ","), m.SourcePath)
	}
	return nil
}
