package mock

import (
	"context"

	"github.com/joshuabenuck/markup"
)

var _ markup.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of markup.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*markup.FetchResult, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*markup.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
