package mock

import "github.com/joshuabenuck/markup"

var _ markup.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of markup.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*markup.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*markup.ExtractResult, error) {
	return e.ExtractFn(html)
}
