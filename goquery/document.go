// Package goquery implements the markup-tree collaborator on top of
// PuerkitoBio/goquery. Node handles wrap selections into the parsed
// tree and stay valid only as long as their Document does.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/joshuabenuck/markup"
)

// Ensure Parser implements markup.Parser at compile time.
var _ markup.Parser = (*Parser)(nil)

// Parser parses raw document text into a navigable tree.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse builds the tree for the given contents. The HTML parser is
// forgiving, so malformed input still yields a tree rather than an
// error.
func (p *Parser) Parse(contents string) (markup.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contents))
	if err != nil {
		return nil, markup.Errorf(markup.EINVALID, "parse document: %v", err)
	}
	return &Document{doc: doc}, nil
}

// Document wraps a parsed goquery document.
type Document struct {
	doc *goquery.Document
}

// tagName restricts First arguments to plain element names. goquery
// compiles its argument as a CSS selector and panics on invalid input,
// so anything else is treated as not found.
var tagName = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9:-]*$`)

// First returns the first node in document order with the given tag
// name.
func (d *Document) First(tag string) (markup.Node, bool) {
	if !tagName.MatchString(tag) {
		return nil, false
	}
	// The HTML parser lowercases element names, so match likewise.
	sel := d.doc.Find(strings.ToLower(tag)).First()
	if sel.Length() == 0 {
		return nil, false
	}
	return &node{sel: sel}, true
}

// FirstAny returns the first element node of any tag.
func (d *Document) FirstAny() (markup.Node, bool) {
	sel := d.doc.Find("*").First()
	if sel.Length() == 0 {
		return nil, false
	}
	return &node{sel: sel}, true
}

// Children returns the direct element children of the document root.
func (d *Document) Children() []markup.Node {
	return wrap(d.doc.Selection.Children())
}

type node struct {
	sel *goquery.Selection
}

func (n *node) Name() string {
	return goquery.NodeName(n.sel)
}

func (n *node) Attrs() []markup.Attr {
	htmlNode := n.sel.Get(0)
	attrs := make([]markup.Attr, 0, len(htmlNode.Attr))
	for _, a := range htmlNode.Attr {
		attrs = append(attrs, markup.Attr{Name: a.Key, Value: a.Val})
	}
	return attrs
}

func (n *node) Children() []markup.Node {
	return wrap(n.sel.Children())
}

func wrap(sel *goquery.Selection) []markup.Node {
	nodes := make([]markup.Node, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &node{sel: s})
	})
	return nodes
}
