package main

import (
	"fmt"

	"github.com/fwojciec/flixsearch"
)

// Run executes the reset command.
func (c *ResetCmd) Run(deps *Dependencies) error {
	if err := deps.Search.Reset(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", flixsearch.ErrorMessage(err))
		return err
	}
	return deps.Renderer.Render(deps.Stdout, []flixsearch.Item{
		{Title: "Cache and settings cleared", Subtitle: "Run 'flixsearch activate' to choose countries again"},
	})
}
