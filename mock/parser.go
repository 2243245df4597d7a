package mock

import "github.com/joshuabenuck/markup"

var _ markup.Parser = (*Parser)(nil)

// Parser is a mock implementation of markup.Parser.
type Parser struct {
	ParseFn func(contents string) (markup.Document, error)
}

func (p *Parser) Parse(contents string) (markup.Document, error) {
	return p.ParseFn(contents)
}

var _ markup.Document = (*Document)(nil)

// Document is a mock implementation of markup.Document.
type Document struct {
	FirstFn    func(tag string) (markup.Node, bool)
	FirstAnyFn func() (markup.Node, bool)
	ChildrenFn func() []markup.Node
}

func (d *Document) First(tag string) (markup.Node, bool) {
	return d.FirstFn(tag)
}

func (d *Document) FirstAny() (markup.Node, bool) {
	return d.FirstAnyFn()
}

func (d *Document) Children() []markup.Node {
	return d.ChildrenFn()
}

var _ markup.Node = (*Node)(nil)

// Node is a mock implementation of markup.Node.
type Node struct {
	NameFn     func() string
	AttrsFn    func() []markup.Attr
	ChildrenFn func() []markup.Node
}

func (n *Node) Name() string {
	return n.NameFn()
}

func (n *Node) Attrs() []markup.Attr {
	return n.AttrsFn()
}

func (n *Node) Children() []markup.Node {
	return n.ChildrenFn()
}
