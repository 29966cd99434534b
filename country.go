package flixsearch

import (
	"context"
	"slices"
	"strings"
)

// AllCountries is the sentinel accepted by activate/deactivate meaning
// every catalog country.
const AllCountries = "ALL"

// Countries is the catalog of countries the provider reports availability
// for, in display order.
var Countries = []string{
	"Argentina",
	"Australia",
	"Austria",
	"Belgium",
	"Brazil",
	"Canada",
	"Colombia",
	"Denmark",
	"Finland",
	"France",
	"Germany",
	"Ireland",
	"Luxembourg",
	"Mexico",
	"Netherlands",
	"New Zealand",
	"Norway",
	"Sweden",
	"Switzerland",
	"UK",
	"USA",
}

// CanonicalCountry returns the catalog spelling of name, matched
// case-insensitively. Returns false if name is not in the catalog.
func CanonicalCountry(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, c := range Countries {
		if strings.EqualFold(c, name) {
			return c, true
		}
	}
	return "", false
}

// ActivateCountry returns active with country added. AllCountries
// activates the whole catalog. The result is in catalog order, holds no
// duplicates and drops anything outside the catalog.
// Returns EINVALID for names not in the catalog.
func ActivateCountry(active []string, country string) ([]string, error) {
	if country == AllCountries {
		return slices.Clone(Countries), nil
	}
	c, ok := CanonicalCountry(country)
	if !ok {
		return nil, Errorf(EINVALID, "unknown country %q", country)
	}
	return normalizeCountries(append(slices.Clone(active), c)), nil
}

// DeactivateCountry returns active with country removed. AllCountries
// clears the list. Returns EINVALID for names not in the catalog.
func DeactivateCountry(active []string, country string) ([]string, error) {
	if country == AllCountries {
		return []string{}, nil
	}
	c, ok := CanonicalCountry(country)
	if !ok {
		return nil, Errorf(EINVALID, "unknown country %q", country)
	}
	return normalizeCountries(slices.DeleteFunc(slices.Clone(active), func(s string) bool {
		return s == c
	})), nil
}

// normalizeCountries maps names onto the catalog, in catalog order.
func normalizeCountries(names []string) []string {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		if c, ok := CanonicalCountry(n); ok {
			set[c] = true
		}
	}
	out := make([]string, 0, len(set))
	for _, c := range Countries {
		if set[c] {
			out = append(out, c)
		}
	}
	return out
}

// FilterByCountries returns the results available in at least one of the
// active countries, preserving input order. An empty active set matches
// nothing.
func FilterByCountries(results []*Result, active []string) []*Result {
	want := make(map[string]struct{}, len(active))
	for _, c := range active {
		want[c] = struct{}{}
	}

	filtered := make([]*Result, 0, len(results))
	for _, r := range results {
		for _, c := range r.Countries {
			if _, ok := want[c]; ok {
				filtered = append(filtered, r)
				break
			}
		}
	}
	return filtered
}

// CountryStatus pairs a catalog country with its activation state.
type CountryStatus struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// PreferenceStore persists the user's active countries.
// Both operations read or write the whole list at once.
type PreferenceStore interface {
	// ActiveCountries returns the active countries.
	// Returns an empty list when nothing has been saved yet.
	ActiveCountries(ctx context.Context) ([]string, error)

	// SetActiveCountries replaces the active countries.
	SetActiveCountries(ctx context.Context, countries []string) error

	// Reset removes all saved preferences.
	Reset(ctx context.Context) error
}
