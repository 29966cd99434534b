package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/flixsearch"
)

// Run executes the activate command.
func (c *ActivateCmd) Run(deps *Dependencies) error {
	return toggle(deps, "Activated", c.Country, deps.Search.Activate)
}

// Run executes the deactivate command.
func (c *DeactivateCmd) Run(deps *Dependencies) error {
	return toggle(deps, "Deactivated", c.Country, deps.Search.Deactivate)
}

func toggle(deps *Dependencies, verb, country string, op func(context.Context, string) ([]string, error)) error {
	active, err := op(deps.Ctx, country)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", flixsearch.ErrorMessage(err))
		return err
	}

	name := "all countries"
	if canonical, ok := flixsearch.CanonicalCountry(country); ok {
		name = canonical
	}

	subtitle := "No active countries"
	if len(active) > 0 {
		subtitle = "Active: " + strings.Join(active, ", ")
	}

	return deps.Renderer.Render(deps.Stdout, []flixsearch.Item{
		{Title: verb + " " + name, Subtitle: subtitle},
	})
}
