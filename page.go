package markup

import (
	"context"
	"time"
)

// Page is a saved snapshot of a fetched document, keyed by URL.
type Page struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	return nil
}

// PageService represents a service for managing saved pages.
type PageService interface {
	// SavePage persists a page, replacing any previous snapshot of the
	// same URL.
	SavePage(ctx context.Context, page *Page) error

	// FindPageByURL retrieves a saved page by URL.
	// Returns ENOTFOUND if no snapshot of the URL exists.
	FindPageByURL(ctx context.Context, url string) (*Page, error)

	// FindPages retrieves pages matching the filter.
	FindPages(ctx context.Context, filter PageFilter) ([]*Page, error)

	// DeletePageByURL permanently removes a saved page.
	// Returns ENOTFOUND if no snapshot of the URL exists.
	DeletePageByURL(ctx context.Context, url string) error
}

// PageFilter represents a filter for FindPages.
type PageFilter struct {
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
