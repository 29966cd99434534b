package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/flixsearch"
	"github.com/fwojciec/flixsearch/discover"
	"github.com/fwojciec/flixsearch/search"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Search     *search.Service
	Discoverer *discover.Discoverer
	Renderer   flixsearch.Renderer
}

// Output formats.
const (
	FormatText   = "text"
	FormatAlfred = "alfred"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DataDir string        `name:"data-dir" env:"FLIXSEARCH_DATA_DIR" help:"Directory for cache and settings (default ~/.flixsearch)"`
	Format  string        `short:"f" enum:"text,alfred" default:"text" env:"FLIXSEARCH_FORMAT" help:"Output format (text, alfred)"`
	Timeout time.Duration `default:"10s" help:"HTTP request timeout"`
	BaseURL string        `name:"base-url" env:"FLIXSEARCH_BASE_URL" default:"https://flixsearch.io" help:"Search provider URL"`
	Verbose bool          `short:"v" help:"Log debug output to stderr"`

	Search     SearchCmd     `cmd:"" help:"Search for titles available in the active countries"`
	Countries  CountriesCmd  `cmd:"" help:"List countries and whether they are active"`
	Activate   ActivateCmd   `cmd:"" help:"Activate a country (or ALL)"`
	Deactivate DeactivateCmd `cmd:"" help:"Deactivate a country (or ALL)"`
	Reset      ResetCmd      `cmd:"" help:"Clear the result cache and settings"`
	Discover   DiscoverCmd   `cmd:"" help:"Run sample searches and list every country seen"`
	Version    VersionCmd    `cmd:"" help:"Print the version"`
}

// Validate rejects flag values kong cannot check on its own.
func (c *CLI) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("--timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query []string `arg:"" help:"Title to search for"`
}

// CountriesCmd is the "countries" subcommand.
type CountriesCmd struct {
	Filter string `arg:"" optional:"" help:"Only show countries fuzzy-matching this text"`
}

// ActivateCmd is the "activate" subcommand.
type ActivateCmd struct {
	Country string `arg:"" help:"Country name or ALL"`
}

// DeactivateCmd is the "deactivate" subcommand.
type DeactivateCmd struct {
	Country string `arg:"" help:"Country name or ALL"`
}

// ResetCmd is the "reset" subcommand.
type ResetCmd struct{}

// DiscoverCmd is the "discover" subcommand.
type DiscoverCmd struct {
	Queries     []string `arg:"" optional:"" help:"Queries to run (default: a set of Netflix originals)"`
	Concurrency int      `short:"c" default:"2" help:"Concurrent fetch limit"`
}

// VersionCmd is the "version" subcommand.
type VersionCmd struct{}
