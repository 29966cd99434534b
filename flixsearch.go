// Package flixsearch provides a CLI that searches flixsearch.io for Netflix
// titles and reports which countries each title is available in.
// It fetches a search-results page, extracts result cards from the HTML,
// caches the extracted results and filters them by the user's countries.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package flixsearch

// Version is the release version, overridden at build time with
// -ldflags "-X github.com/fwojciec/flixsearch.Version=...".
var Version = "dev"
