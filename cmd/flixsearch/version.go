package main

import "github.com/fwojciec/flixsearch"

// Run executes the version command.
func (c *VersionCmd) Run(deps *Dependencies) error {
	return deps.Renderer.Render(deps.Stdout, []flixsearch.Item{
		{Title: "flixsearch " + flixsearch.Version},
	})
}
