package flixsearch

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Result represents one title found on a search-results page.
type Result struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	ImageURL string `json:"imageUrl"`

	// Description is empty when the card carried no description.
	Description string `json:"description,omitempty"`

	// Genres keeps the order used by the provider.
	Genres []string `json:"genres"`

	// Countries lists every country the title is available in.
	Countries []string `json:"countries"`
}

// Validate returns an error if the result contains invalid fields.
func (r *Result) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "result URL required")
	}
	if len(r.Countries) == 0 {
		return Errorf(EINVALID, "result %q has no countries", r.URL)
	}
	return nil
}

var yearSuffix = regexp.MustCompile(`^(.*\S)\s+(\d{4})$`)

// TitleFromURL guesses a title from the last path segment of a detail-page
// URL. Hyphens become spaces, words are title-cased and a trailing
// four-digit year is put in parentheses:
//
//	https://flixsearch.io/movie/breaking-bad-2008 -> Breaking Bad (2008)
func TitleFromURL(rawURL string) string {
	s := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		s = u.Path
	}
	s = strings.TrimRight(s, "/")
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}

	s = strings.Join(strings.Fields(strings.ReplaceAll(s, "-", " ")), " ")
	s = cases.Title(language.Und).String(s)

	if m := yearSuffix.FindStringSubmatch(s); m != nil {
		s = m[1] + " (" + m[2] + ")"
	}
	return s
}

// Fingerprint returns a stable, collision-resistant key for a query.
// It is the hex-encoded SHA-256 digest of the query's UTF-8 bytes.
func Fingerprint(query string) string {
	sum := sha256.Sum256([]byte(query))
	return hex.EncodeToString(sum[:])
}
