package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/flixsearch"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := strings.Join(c.Query, " ")

	results, err := deps.Search.Search(deps.Ctx, query)
	switch flixsearch.ErrorCode(err) {
	case "":
	case flixsearch.ENOCOUNTRIES:
		return deps.Renderer.Render(deps.Stdout, []flixsearch.Item{
			flixsearch.WarningItem(
				"You must activate some countries before searching",
				"Run 'flixsearch countries' to choose countries to search",
			),
		})
	case flixsearch.EUNAVAILABLE:
		if rerr := deps.Renderer.Render(deps.Stdout, []flixsearch.Item{
			flixsearch.WarningItem("Could not reach search provider", err.Error()),
		}); rerr != nil {
			return rerr
		}
		return err
	default:
		fmt.Fprintf(deps.Stderr, "error: %s\n", flixsearch.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		return deps.Renderer.Render(deps.Stdout, []flixsearch.Item{
			flixsearch.WarningItem(fmt.Sprintf("No results for %q", strings.TrimSpace(query)), "Try a different query"),
		})
	}

	items := make([]flixsearch.Item, 0, len(results))
	for _, r := range results {
		items = append(items, flixsearch.ResultItem(r))
	}
	return deps.Renderer.Render(deps.Stdout, items)
}
