package markup

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input may be a full page or clean HTML from an Extractor.
	// Returns the Markdown representation of the content.
	Convert(html string) (string, error)
}
