package flixsearch

// Extractor turns a search-results page into results.
type Extractor interface {
	// Extract parses html and returns one result per well-formed card,
	// in document order. Malformed cards are skipped, never reported as
	// errors. An error means the document as a whole could not be parsed.
	Extract(html string) ([]*Result, error)
}

// Node is an element in a parsed HTML document.
// It exposes just enough of the tree for result extraction so that
// extraction logic does not depend on a particular parser.
type Node interface {
	// Tag returns the lower-case element name.
	Tag() string

	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)

	// HasClass reports whether the class attribute contains class.
	HasClass(class string) bool

	// Children returns the element children in document order.
	Children() []Node

	// Text returns the concatenated text of the node and its descendants,
	// with character references already decoded.
	Text() string
}

// DocumentParser parses HTML into a tree of nodes.
type DocumentParser interface {
	// Parse returns the root node of the document.
	Parse(html string) (Node, error)
}
