// Package alfred renders items as Alfred script filter feedback and
// re-runs workflow views through Alfred external triggers.
package alfred

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/flixsearch"
)

// Ensure Renderer implements flixsearch.Renderer.
var _ flixsearch.Renderer = (*Renderer)(nil)

// Icon paths relative to the workflow directory.
const (
	IconWarning  = "icons/Warning.png"
	IconActive   = "icons/Toggle On.png"
	IconInactive = "icons/Toggle Off.png"
)

// Renderer writes script filter JSON.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

type feedback struct {
	Items []item `json:"items"`
}

type item struct {
	UID          string         `json:"uid,omitempty"`
	Title        string         `json:"title"`
	Subtitle     string         `json:"subtitle"`
	Arg          string         `json:"arg,omitempty"`
	Autocomplete string         `json:"autocomplete,omitempty"`
	Valid        bool           `json:"valid"`
	Icon         *icon          `json:"icon,omitempty"`
	Mods         map[string]mod `json:"mods,omitempty"`
}

type icon struct {
	Path string `json:"path"`
}

type mod struct {
	Subtitle string `json:"subtitle"`
	Arg      string `json:"arg,omitempty"`
	Valid    bool   `json:"valid"`
}

// Render writes items as a single script filter document.
func (r *Renderer) Render(w io.Writer, items []flixsearch.Item) error {
	fb := feedback{Items: make([]item, 0, len(items))}
	for _, it := range items {
		fb.Items = append(fb.Items, convert(it))
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(fb); err != nil {
		return fmt.Errorf("encode feedback: %w", err)
	}
	return nil
}

func convert(it flixsearch.Item) item {
	out := item{
		UID:          it.UID,
		Title:        it.Title,
		Subtitle:     it.Subtitle,
		Arg:          it.Arg,
		Autocomplete: it.Autocomplete,
		Valid:        it.Valid,
	}

	switch it.Style {
	case flixsearch.ItemWarning:
		out.Icon = &icon{Path: IconWarning}
	case flixsearch.ItemActive:
		out.Icon = &icon{Path: IconActive}
	case flixsearch.ItemInactive:
		out.Icon = &icon{Path: IconInactive}
	}

	if len(it.Mods) > 0 {
		out.Mods = make(map[string]mod, len(it.Mods))
		for _, m := range it.Mods {
			out.Mods[m.Key] = mod{Subtitle: m.Subtitle, Arg: it.Arg, Valid: it.Valid}
		}
	}
	return out
}
