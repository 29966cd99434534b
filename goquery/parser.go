// Package goquery implements flixsearch.DocumentParser on top of goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/flixsearch"
	"golang.org/x/net/html"
)

// Ensure Parser implements flixsearch.DocumentParser at compile time.
var _ flixsearch.DocumentParser = (*Parser)(nil)

// Parser parses HTML with goquery's HTML5 parser.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse returns the document node of html.
func (p *Parser) Parse(s string) (flixsearch.Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return nil, flixsearch.Errorf(flixsearch.EINVALID, "failed to parse HTML: %v", err)
	}
	return &node{sel: doc.Selection}, nil
}

// node wraps a single-node selection.
type node struct {
	sel *goquery.Selection
}

func (n *node) Tag() string {
	if len(n.sel.Nodes) == 0 {
		return ""
	}
	if hn := n.sel.Nodes[0]; hn.Type == html.ElementNode {
		return hn.Data
	}
	return ""
}

func (n *node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

func (n *node) HasClass(class string) bool {
	return n.sel.HasClass(class)
}

func (n *node) Children() []flixsearch.Node {
	children := n.sel.Children()
	out := make([]flixsearch.Node, 0, children.Length())
	children.Each(func(_ int, s *goquery.Selection) {
		out = append(out, &node{sel: s})
	})
	return out
}

func (n *node) Text() string {
	return n.sel.Text()
}
