package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/joshuabenuck/markup"
)

// Compile-time interface verification.
var _ markup.PageService = (*PageService)(nil)

// PageService implements markup.PageService using SQLite.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// SavePage persists a page, replacing any previous snapshot of the
// same URL.
func (s *PageService) SavePage(ctx context.Context, page *markup.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	page.ID = uuid.New().String()
	page.FetchedAt = time.Now().UTC()
	page.ContentHash = hashContent(page.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (id, url, content, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			content = excluded.content,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, page.ID, page.URL, page.Content, page.ContentHash,
		page.FetchedAt.Format(time.RFC3339))

	return err
}

// FindPageByURL retrieves a saved page by URL.
func (s *PageService) FindPageByURL(ctx context.Context, url string) (*markup.Page, error) {
	var page markup.Page
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, content, content_hash, fetched_at
		FROM pages
		WHERE url = ?
	`, url).Scan(&page.ID, &page.URL, &page.Content, &page.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, markup.Errorf(markup.ENOTFOUND, "page not found: %s", url)
	}
	if err != nil {
		return nil, err
	}

	page.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	return &page, nil
}

// FindPages retrieves pages matching the filter, most recent first.
func (s *PageService) FindPages(ctx context.Context, filter markup.PageFilter) ([]*markup.Page, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, content, content_hash, fetched_at FROM pages WHERE 1=1")

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY fetched_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*markup.Page
	for rows.Next() {
		var page markup.Page
		var fetchedAt string

		if err := rows.Scan(&page.ID, &page.URL, &page.Content, &page.ContentHash, &fetchedAt); err != nil {
			return nil, err
		}

		page.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		pages = append(pages, &page)
	}

	return pages, rows.Err()
}

// DeletePageByURL permanently removes a saved page.
func (s *PageService) DeletePageByURL(ctx context.Context, url string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM pages WHERE url = ?", url)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return markup.Errorf(markup.ENOTFOUND, "page not found: %s", url)
	}

	return nil
}
