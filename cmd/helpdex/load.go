package main

import "fmt"

// Run executes the load command: a full rebuild of all manuals from the
// configured sources, replacing any snapshot.
func (c *LoadCmd) Run(deps *Dependencies) error {
	res, err := deps.Loader.Load(deps.Ctx, deps.Config)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Loaded %d manuals (%d merged, %d failed)\n",
		res.Loaded, res.Merged, res.Failed)
	return nil
}
