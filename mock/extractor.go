package mock

import "github.com/fwojciec/flixsearch"

var _ flixsearch.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of flixsearch.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]*flixsearch.Result, error)
}

func (e *Extractor) Extract(html string) ([]*flixsearch.Result, error) {
	return e.ExtractFn(html)
}

var _ flixsearch.DocumentParser = (*DocumentParser)(nil)

// DocumentParser is a mock implementation of flixsearch.DocumentParser.
type DocumentParser struct {
	ParseFn func(html string) (flixsearch.Node, error)
}

func (p *DocumentParser) Parse(html string) (flixsearch.Node, error) {
	return p.ParseFn(html)
}

var _ flixsearch.Node = (*Node)(nil)

// Node is a mock implementation of flixsearch.Node.
type Node struct {
	TagFn      func() string
	AttrFn     func(name string) (string, bool)
	HasClassFn func(class string) bool
	ChildrenFn func() []flixsearch.Node
	TextFn     func() string
}

func (n *Node) Tag() string {
	return n.TagFn()
}

func (n *Node) Attr(name string) (string, bool) {
	return n.AttrFn(name)
}

func (n *Node) HasClass(class string) bool {
	return n.HasClassFn(class)
}

func (n *Node) Children() []flixsearch.Node {
	return n.ChildrenFn()
}

func (n *Node) Text() string {
	return n.TextFn()
}
