package extract

import "github.com/fwojciec/flixsearch"

// matcher selects nodes during a tree walk.
type matcher func(flixsearch.Node) bool

// element matches nodes with the given tag and, if class is non-empty,
// the given class.
func element(tag, class string) matcher {
	return func(n flixsearch.Node) bool {
		if n.Tag() != tag {
			return false
		}
		return class == "" || n.HasClass(class)
	}
}

// findFirst returns the first descendant of n matching m in document
// order, or nil.
func findFirst(n flixsearch.Node, m matcher) flixsearch.Node {
	for _, c := range n.Children() {
		if m(c) {
			return c
		}
		if found := findFirst(c, m); found != nil {
			return found
		}
	}
	return nil
}

// findAll returns every descendant of n matching m in document order,
// including matches nested inside other matches.
func findAll(n flixsearch.Node, m matcher) []flixsearch.Node {
	var out []flixsearch.Node
	var walk func(flixsearch.Node)
	walk = func(n flixsearch.Node) {
		for _, c := range n.Children() {
			if m(c) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}
