package shell

import (
	"github.com/joshuabenuck/markup"
)

// DefaultCols is the display width a fresh session starts with.
const DefaultCols = 80

// Session holds the mutable state a shell accumulates across lines:
// the last targeted URL, the text of the last successfully fetched
// document, and the configured display width. It has exactly one
// owner (the Shell) and one writer at a time; no locking is needed.
type Session struct {
	// URL is the last URL a fetch was attempted against.
	URL string

	// Contents is the raw text of the last successful fetch or load.
	// Meaningful only when Loaded is true.
	Contents string

	// Loaded reports whether any document has been fetched or loaded.
	Loaded bool

	// Cols is the display width for printed lines. Nil means unbounded.
	Cols *int

	// doc caches the parse of Contents. It is dropped whenever Contents
	// is replaced, so a node handle derived from it can never outlive
	// the document it points into.
	doc markup.Document
}

// NewSession returns a session with the default display width.
func NewSession() *Session {
	cols := DefaultCols
	return &Session{Cols: &cols}
}

// SetContents replaces the loaded document and invalidates the cached
// parse.
func (s *Session) SetContents(url, contents string) {
	s.URL = url
	s.Contents = contents
	s.Loaded = true
	s.doc = nil
}

// Document returns the parsed tree for the current contents, parsing
// at most once per load.
func (s *Session) Document(parser markup.Parser) (markup.Document, error) {
	if !s.Loaded {
		return nil, markup.Errorf(markup.EPRECONDITION, "no contents to parse")
	}
	if s.doc == nil {
		doc, err := parser.Parse(s.Contents)
		if err != nil {
			return nil, err
		}
		s.doc = doc
	}
	return s.doc, nil
}
