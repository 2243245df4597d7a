package mock

import "github.com/joshuabenuck/markup"

var _ markup.Converter = (*Converter)(nil)

// Converter is a mock implementation of markup.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
