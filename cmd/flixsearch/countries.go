package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/flixsearch"
)

// Run executes the countries command.
func (c *CountriesCmd) Run(deps *Dependencies) error {
	filter := strings.TrimSpace(c.Filter)
	statuses, err := deps.Search.Countries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", flixsearch.ErrorMessage(err))
		return err
	}

	var items []flixsearch.Item

	if filter == "" {
		active := 0
		for _, s := range statuses {
			if s.Active {
				active++
			}
		}
		if active < len(statuses) {
			items = append(items, flixsearch.Item{
				Title:    "Activate all",
				Subtitle: "↩ to activate all countries",
				Arg:      "activate " + flixsearch.AllCountries,
				Valid:    true,
			})
		}
		if active > 0 {
			items = append(items, flixsearch.Item{
				Title:    "Deactivate all",
				Subtitle: "↩ to deactivate all countries",
				Arg:      "deactivate " + flixsearch.AllCountries,
				Valid:    true,
			})
		}
	} else if len(statuses) == 0 {
		items = append(items, flixsearch.WarningItem("No matching countries", "Try a different query"))
	}

	for _, s := range statuses {
		action, style := "activate", flixsearch.ItemInactive
		if s.Active {
			action, style = "deactivate", flixsearch.ItemActive
		}
		items = append(items, flixsearch.Item{
			UID:      s.Name,
			Title:    s.Name,
			Subtitle: fmt.Sprintf("↩ to %s this country", action),
			Arg:      fmt.Sprintf("%s %q", action, s.Name),
			Valid:    true,
			Style:    style,
		})
	}

	return deps.Renderer.Render(deps.Stdout, items)
}
