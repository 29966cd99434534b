// Package extract turns flixsearch.io search-results pages into results.
//
// A results page is a list of "cards". Each card is parsed on its own; a
// card that does not have the expected shape is logged and skipped, so
// drift in the provider's markup reduces the number of results instead of
// failing the whole search.
package extract

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/fwojciec/flixsearch"
)

// Ensure Extractor implements flixsearch.Extractor at compile time.
var _ flixsearch.Extractor = (*Extractor)(nil)

// Extractor extracts results from search-results HTML.
type Extractor struct {
	parser flixsearch.DocumentParser
	logger *slog.Logger
}

// NewExtractor creates a new Extractor using parser to build the document
// tree. Skipped cards are reported to logger; a nil logger discards them.
func NewExtractor(parser flixsearch.DocumentParser, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Extractor{parser: parser, logger: logger}
}

// SkipError describes why a card was not turned into a result.
type SkipError struct {
	Index  int
	Reason string
}

func (e *SkipError) Error() string {
	return fmt.Sprintf("card %d skipped: %s", e.Index, e.Reason)
}

// Extract implements flixsearch.Extractor.
func (e *Extractor) Extract(html string) ([]*flixsearch.Result, error) {
	root, err := e.parser.Parse(html)
	if err != nil {
		return nil, err
	}

	cards := findAll(root, element("div", "card"))
	e.logger.Debug("cards found", "count", len(cards))

	results := make([]*flixsearch.Result, 0, len(cards))
	for i, card := range cards {
		r, err := extractCard(i, card)
		if err != nil {
			e.logger.Warn("skipped card", "index", i, "reason", err.Error())
			continue
		}
		e.logger.Debug("card",
			"index", i,
			"title", r.Title,
			"url", r.URL,
			"genres", strings.Join(r.Genres, ", "),
			"countries", strings.Join(r.Countries, ", "),
		)
		results = append(results, r)
	}

	return results, nil
}

// extractCard builds a result from one card. Any failure, including a
// panic in the node implementation, is reported as *SkipError.
func extractCard(index int, card flixsearch.Node) (r *flixsearch.Result, err error) {
	skip := func(format string, args ...any) (*flixsearch.Result, error) {
		return nil, &SkipError{Index: index, Reason: fmt.Sprintf(format, args...)}
	}

	defer func() {
		if p := recover(); p != nil {
			r, err = skip("panic: %v", p)
		}
	}()

	imageBox := findFirst(card, element("div", "card-image"))
	if imageBox == nil {
		return skip("no image box")
	}

	url := attr(findFirst(imageBox, element("a", "")), "href")
	if url == "" {
		return skip("no URL in image box")
	}

	image := attr(findFirst(imageBox, element("img", "")), "src")
	if image == "" {
		return skip("no image in image box")
	}

	var title string
	if elem := findFirst(imageBox, element("span", "card-title")); elem != nil {
		title = normalize(elem.Text())
	}
	if title == "" {
		title = flixsearch.TitleFromURL(url)
	}

	contentBox := findFirst(card, element("div", "card-content"))
	if contentBox == nil {
		return skip("no content box")
	}

	genres := []string{}
	var description string
	switch paras := findAll(contentBox, element("p", "")); len(paras) {
	case 1:
		description = normalize(paras[0].Text())
	case 2:
		genres = splitGenres(paras[0].Text())
		description = normalize(paras[1].Text())
	default:
		return skip("found %d p elements, not 1 or 2", len(paras))
	}

	flagBox := findFirst(card, element("div", "flags"))
	if flagBox == nil {
		return skip("no flag box")
	}

	var countries []string
	for _, flag := range findAll(flagBox, element("img", "flag-post")) {
		if country := normalize(attr(flag, "title")); country != "" {
			countries = append(countries, country)
		}
	}
	if len(countries) == 0 {
		return skip("no countries")
	}

	return &flixsearch.Result{
		Title:       title,
		URL:         url,
		ImageURL:    image,
		Description: description,
		Genres:      genres,
		Countries:   countries,
	}, nil
}

// splitGenres splits a comma-separated genre list, dropping empty entries.
func splitGenres(s string) []string {
	genres := []string{}
	for _, g := range strings.Split(normalize(s), ",") {
		if g = strings.TrimSpace(g); g != "" {
			genres = append(genres, g)
		}
	}
	return genres
}

func attr(n flixsearch.Node, name string) string {
	if n == nil {
		return ""
	}
	v, _ := n.Attr(name)
	return strings.TrimSpace(v)
}
