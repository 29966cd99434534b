// Package search composes fetching, extraction, caching and country
// filtering into the operations exposed by the CLI.
package search

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/fwojciec/flixsearch"
	"github.com/sahilm/fuzzy"
)

// Trigger names passed to the Notifier.
const (
	TriggerCountries = "countries"
)

// Service searches for titles and manages the active countries.
type Service struct {
	Fetcher     flixsearch.Fetcher
	Extractor   flixsearch.Extractor
	Cache       flixsearch.ResultCache
	Preferences flixsearch.PreferenceStore
	Notifier    flixsearch.Notifier
	Logger      *slog.Logger
}

func (s *Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

// Search returns the titles matching query that are available in at least
// one active country. It returns ENOCOUNTRIES without contacting the
// provider when no country is active. An empty slice with a nil error
// means nothing matched.
func (s *Service) Search(ctx context.Context, query string) ([]*flixsearch.Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, flixsearch.Errorf(flixsearch.EINVALID, "search query required")
	}

	active, err := s.Preferences.ActiveCountries(ctx)
	if err != nil {
		return nil, err
	}
	if len(active) == 0 {
		return nil, flixsearch.Errorf(flixsearch.ENOCOUNTRIES, "no countries activated")
	}

	compute := func(ctx context.Context) ([]*flixsearch.Result, error) {
		s.logger().Debug("new search", "query", query)
		html, err := s.Fetcher.Fetch(ctx, query)
		if err != nil {
			return nil, err
		}
		return s.Extractor.Extract(html)
	}

	var results []*flixsearch.Result
	if s.Cache != nil {
		results, err = s.Cache.GetOrCompute(ctx, query, compute)
	} else {
		results, err = compute(ctx)
	}
	if err != nil {
		return nil, err
	}

	filtered := flixsearch.FilterByCountries(results, active)
	s.logger().Debug("search results",
		"query", query,
		"total", len(results),
		"matching", len(filtered),
	)
	return filtered, nil
}

// Activate marks country, or every country for flixsearch.AllCountries,
// as active and returns the new active list.
func (s *Service) Activate(ctx context.Context, country string) ([]string, error) {
	return s.update(ctx, country, flixsearch.ActivateCountry, "activated")
}

// Deactivate marks country, or every country for flixsearch.AllCountries,
// as inactive and returns the new active list.
func (s *Service) Deactivate(ctx context.Context, country string) ([]string, error) {
	return s.update(ctx, country, flixsearch.DeactivateCountry, "deactivated")
}

func (s *Service) update(ctx context.Context, country string, op func([]string, string) ([]string, error), action string) ([]string, error) {
	active, err := s.Preferences.ActiveCountries(ctx)
	if err != nil {
		return nil, err
	}

	updated, err := op(active, country)
	if err != nil {
		return nil, err
	}

	if !slices.Equal(active, updated) {
		if err := s.Preferences.SetActiveCountries(ctx, updated); err != nil {
			return nil, err
		}
		s.logger().Info(action, "country", country, "active", len(updated))
	}

	if s.Notifier != nil {
		if err := s.Notifier.Notify(ctx, TriggerCountries, ""); err != nil {
			s.logger().Warn("notify failed", "trigger", TriggerCountries, "err", err)
		}
	}

	return updated, nil
}

// Countries returns the catalog with each country's activation state.
// A non-empty filter keeps the countries it fuzzy-matches, so initials
// and subsequences ("nz", "gmny") work, ranked best match first.
func (s *Service) Countries(ctx context.Context, filter string) ([]flixsearch.CountryStatus, error) {
	active, err := s.Preferences.ActiveCountries(ctx)
	if err != nil {
		return nil, err
	}
	isActive := make(map[string]bool, len(active))
	for _, c := range active {
		isActive[c] = true
	}

	names := flixsearch.Countries
	if filter = strings.TrimSpace(filter); filter != "" {
		matches := fuzzy.Find(filter, flixsearch.Countries)
		names = make([]string, 0, len(matches))
		for _, m := range matches {
			names = append(names, m.Str)
		}
	}

	statuses := make([]flixsearch.CountryStatus, 0, len(names))
	for _, c := range names {
		statuses = append(statuses, flixsearch.CountryStatus{Name: c, Active: isActive[c]})
	}
	return statuses, nil
}

// Reset clears cached results and saved preferences.
func (s *Service) Reset(ctx context.Context) error {
	if s.Cache != nil {
		if err := s.Cache.Clear(ctx); err != nil {
			return err
		}
	}
	return s.Preferences.Reset(ctx)
}
