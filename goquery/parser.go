// Package goquery implements howto.Parser on top of PuerkitoBio/goquery.
package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/howto"
	"golang.org/x/net/html"
)

// Ensure Parser implements howto.Parser at compile time.
var _ howto.Parser = (*Parser)(nil)

// Ensure Node implements howto.Node at compile time.
var _ howto.Node = (*Node)(nil)

// Parser parses HTML into goquery-backed nodes.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse returns the document root of html.
func (p *Parser) Parse(s string) (howto.Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return nil, howto.Errorf(howto.EINTERNAL, "failed to parse HTML: %v", err)
	}
	return &Node{sel: doc.Selection}, nil
}

// Node wraps a goquery selection holding exactly one node.
type Node struct {
	sel *goquery.Selection
}

// Find returns the first descendant matching m.
func (n *Node) Find(m howto.Match) (howto.Node, bool) {
	nodes := n.FindAll(m, 1)
	if len(nodes) == 0 {
		return nil, false
	}
	return nodes[0], true
}

// FindAll returns descendants matching m in document order.
func (n *Node) FindAll(m howto.Match, limit int) []howto.Node {
	return collect(n.sel.Find(selector(m)), m, limit)
}

// Children returns direct element children matching m.
func (n *Node) Children(m howto.Match) []howto.Node {
	return collect(n.sel.ChildrenFiltered(selector(m)), m, 0)
}

// Text returns the trimmed text fragments of the node joined with sep.
func (n *Node) Text(sep string) string {
	return n.TextExcluding(sep, nil)
}

// TextExcluding returns the node's text without the subtree of exclude.
// The underlying tree is only read, never modified.
func (n *Node) TextExcluding(sep string, exclude howto.Node) string {
	var skip *html.Node
	if ex, ok := exclude.(*Node); ok && ex != nil {
		skip = ex.sel.Get(0)
	}

	var parts []string
	var walk func(*html.Node)
	walk = func(h *html.Node) {
		if h == skip {
			return
		}
		switch h.Type {
		case html.TextNode:
			if t := strings.TrimSpace(h.Data); t != "" {
				parts = append(parts, t)
			}
			return
		case html.ElementNode:
			// Script and style bodies are not prose.
			if h.Data == "script" || h.Data == "style" {
				return
			}
		}
		for c := h.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, h := range n.sel.Nodes {
		walk(h)
	}
	return strings.Join(parts, sep)
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

// selector builds a CSS selector group for m. IDPattern cannot be expressed
// in CSS and is applied by collect.
func selector(m howto.Match) string {
	var suffix strings.Builder
	if m.Class != "" {
		fmt.Fprintf(&suffix, "[class~=%q]", m.Class)
	}
	if m.ID != "" {
		fmt.Fprintf(&suffix, "[id=%q]", m.ID)
	}
	if m.IDPattern != nil {
		suffix.WriteString("[id]")
	}

	tags := m.Tags
	if len(tags) == 0 {
		tags = []string{"*"}
	}
	group := make([]string, len(tags))
	for i, tag := range tags {
		group[i] = tag + suffix.String()
	}
	return strings.Join(group, ", ")
}

func collect(sel *goquery.Selection, m howto.Match, limit int) []howto.Node {
	var nodes []howto.Node
	sel.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if m.IDPattern != nil {
			id, _ := s.Attr("id")
			if !m.IDPattern.MatchString(id) {
				return true
			}
		}
		nodes = append(nodes, &Node{sel: s})
		return limit <= 0 || len(nodes) < limit
	})
	return nodes
}
