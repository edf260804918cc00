package main

import (
	"fmt"

	"github.com/fwojciec/helpdex"
	"github.com/fwojciec/helpdex/tsv"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	m, err := deps.Registry.Manual(c.Manual)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", helpdex.ErrorMessage(err))
		return err
	}

	return tsv.Export(deps.Stdout, m)
}
