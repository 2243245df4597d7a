// Package slog provides logging decorators for markup collaborators.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/joshuabenuck/markup"
)

// Ensure Fetcher implements markup.Fetcher.
var _ markup.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a markup.Fetcher with request logging.
type Fetcher struct {
	next   markup.Fetcher
	logger *slog.Logger
}

// NewFetcher creates a new logging Fetcher.
func NewFetcher(next markup.Fetcher, logger *slog.Logger) *Fetcher {
	return &Fetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*markup.FetchResult, error) {
	begin := time.Now()
	res, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("fetch failed",
			"url", url,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	f.logger.Info("fetch",
		"url", url,
		"status", res.StatusCode,
		"bytes", len(res.Body),
		"duration", time.Since(begin),
	)
	return res, nil
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}
