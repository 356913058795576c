package howto

import "regexp"

// Match describes the elements a Node query selects. All non-zero fields
// must hold for an element to match.
type Match struct {
	// Tags lists acceptable tag names. Empty matches any tag.
	Tags []string

	// Class is a single class the element must carry.
	Class string

	// ID is the exact id the element must carry.
	ID string

	// IDPattern must match somewhere in the element's id.
	IDPattern *regexp.Regexp
}

// Tag returns a Match for any of the given tag names.
func Tag(tags ...string) Match {
	return Match{Tags: tags}
}

// Node is a read-only element of a parsed HTML document. Queries search the
// node's descendants in document order and never modify the tree, so one
// parsed document can be queried any number of times with identical results.
type Node interface {
	// Find returns the first descendant matching m.
	Find(m Match) (Node, bool)

	// FindAll returns descendants matching m. A limit <= 0 means no limit.
	FindAll(m Match, limit int) []Node

	// Children returns the direct element children matching m.
	Children(m Match) []Node

	// Text returns the node's text: each text fragment trimmed, empty
	// fragments dropped, the rest joined with sep.
	Text(sep string) string

	// TextExcluding is like Text but skips the subtree rooted at exclude.
	// A nil exclude behaves like Text.
	TextExcluding(sep string, exclude Node) string

	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)
}

// Parser parses raw HTML into a queryable document root.
type Parser interface {
	// Parse returns the root of the parsed document.
	Parse(html string) (Node, error)
}
