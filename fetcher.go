package markup

import "context"

// FetchResult holds the response to a document fetch. StatusCode is
// surfaced because the shell's url command decides success on the
// status class, not on transport success alone.
type FetchResult struct {
	StatusCode int
	Body       string
}

// Fetcher retrieves raw document text from URLs.
type Fetcher interface {
	// Fetch performs a GET against the URL and returns the status code
	// and decoded body. A non-nil error indicates transport failure;
	// status-class interpretation is left to the caller.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*FetchResult, error)

	// Close releases any resources held by the Fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
