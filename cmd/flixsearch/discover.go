package main

import (
	"fmt"
	"slices"

	"github.com/fwojciec/flixsearch"
)

// Run executes the discover command.
func (c *DiscoverCmd) Run(deps *Dependencies) error {
	report, err := deps.Discoverer.Discover(deps.Ctx, c.Queries)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", flixsearch.ErrorMessage(err))
		return err
	}

	items := []flixsearch.Item{{
		Title:    fmt.Sprintf("Found %d countries across %d titles", len(report.Countries), report.Titles),
		Subtitle: fmt.Sprintf("%d queries succeeded, %d failed", report.Queries, report.Failed),
	}}
	for _, country := range report.Countries {
		it := flixsearch.Item{Title: country, Style: flixsearch.ItemActive, Subtitle: "In catalog"}
		if slices.Contains(report.Unknown, country) {
			it.Style = flixsearch.ItemWarning
			it.Subtitle = "Not in catalog"
		}
		items = append(items, it)
	}

	return deps.Renderer.Render(deps.Stdout, items)
}
