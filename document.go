package markup

// Attr is a single attribute on a markup node, in document order.
type Attr struct {
	Name  string
	Value string
}

// Node is a handle into a parsed markup tree. Nodes are owned by the
// Document that produced them and are valid only as long as that
// Document is; the shell never stores one across a refetch.
type Node interface {
	// Name returns the node's tag name.
	Name() string

	// Attrs returns the node's attributes in document order.
	Attrs() []Attr

	// Children returns the node's direct element children.
	Children() []Node
}

// Document is a parsed markup tree.
type Document interface {
	// First returns the first node in document order whose tag name
	// matches tag. The second return is false when no such node exists.
	First(tag string) (Node, bool)

	// FirstAny returns the first element node of any tag.
	FirstAny() (Node, bool)

	// Children returns the direct element children of the document root.
	Children() []Node
}

// Parser turns raw document text into a navigable markup tree.
type Parser interface {
	Parse(contents string) (Document, error)
}
