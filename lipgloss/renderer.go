// Package lipgloss renders items as styled terminal text.
package lipgloss

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/flixsearch"
)

// Ensure Renderer implements flixsearch.Renderer.
var _ flixsearch.Renderer = (*Renderer)(nil)

var (
	pink   = lipgloss.Color("205")
	cyan   = lipgloss.Color("86")
	grey   = lipgloss.Color("245")
	green  = lipgloss.Color("82")
	yellow = lipgloss.Color("220")
)

// Markers printed in front of country rows.
const (
	MarkerActive   = "●"
	MarkerInactive = "○"
	MarkerWarning  = "!"
)

// Renderer writes items as text. Colors are dropped when the writer is not
// a terminal.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

type styles struct {
	title    lipgloss.Style
	subtitle lipgloss.Style
	label    lipgloss.Style
	active   lipgloss.Style
	inactive lipgloss.Style
	warning  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:    r.NewStyle().Bold(true).Foreground(pink),
		subtitle: r.NewStyle().Foreground(grey),
		label:    r.NewStyle().Foreground(cyan),
		active:   r.NewStyle().Foreground(green).Bold(true),
		inactive: r.NewStyle().Foreground(grey),
		warning:  r.NewStyle().Foreground(yellow).Bold(true),
	}
}

// Render writes one block per item separated by blank lines.
func (r *Renderer) Render(w io.Writer, items []flixsearch.Item) error {
	s := newStyles(lipgloss.NewRenderer(w))

	var b strings.Builder
	for i, it := range items {
		if i > 0 && len(it.Mods) > 0 {
			b.WriteString("\n")
		}
		b.WriteString(headline(s, it))
		b.WriteString("\n")
		if it.Subtitle != "" {
			b.WriteString("  " + s.subtitle.Render(it.Subtitle) + "\n")
		}
		for _, m := range it.Mods {
			if m.Subtitle == "" {
				continue
			}
			b.WriteString("  " + s.label.Render(m.Label+":") + " " + m.Subtitle + "\n")
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func headline(s styles, it flixsearch.Item) string {
	switch it.Style {
	case flixsearch.ItemWarning:
		return s.warning.Render(MarkerWarning + " " + it.Title)
	case flixsearch.ItemActive:
		return s.active.Render(MarkerActive) + " " + it.Title
	case flixsearch.ItemInactive:
		return s.inactive.Render(MarkerInactive) + " " + it.Title
	default:
		return s.title.Render(it.Title)
	}
}
