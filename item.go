package flixsearch

import (
	"io"
	"strings"
)

// ItemStyle tells a Renderer how to decorate an Item.
type ItemStyle int

const (
	ItemNormal ItemStyle = iota
	ItemWarning
	ItemActive
	ItemInactive
)

// Modifier keys understood by renderers.
const (
	ModCmd  = "cmd"
	ModAlt  = "alt"
	ModCtrl = "ctrl"
)

// Mod is an alternative subtitle shown while a modifier key is held.
type Mod struct {
	Key      string
	Label    string
	Subtitle string
}

// Item is one row of command output.
type Item struct {
	UID          string
	Title        string
	Subtitle     string
	Arg          string
	Autocomplete string
	Valid        bool
	Style        ItemStyle
	Mods         []Mod
}

// Renderer writes a list of items to w.
type Renderer interface {
	Render(w io.Writer, items []Item) error
}

// ResultItem converts a search result into an actionable item. Holding
// cmd shows the genres, alt the countries and ctrl the URL.
func ResultItem(r *Result) Item {
	return Item{
		UID:      r.Title,
		Title:    r.Title,
		Subtitle: r.Description,
		Arg:      r.URL,
		Valid:    true,
		Mods: []Mod{
			{Key: ModCmd, Label: "Genres", Subtitle: strings.Join(r.Genres, ", ")},
			{Key: ModAlt, Label: "Countries", Subtitle: strings.Join(r.Countries, ", ")},
			{Key: ModCtrl, Label: "URL", Subtitle: r.URL},
		},
	}
}

// WarningItem returns a non-actionable item with a warning style.
func WarningItem(title, subtitle string) Item {
	return Item{Title: title, Subtitle: subtitle, Style: ItemWarning}
}
