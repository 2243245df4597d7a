package markup_test

import (
	"testing"

	"github.com/joshuabenuck/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a page with a URL", func(t *testing.T) {
		t.Parallel()

		page := &markup.Page{URL: "https://example.com"}
		require.NoError(t, page.Validate())
	})

	t.Run("rejects a page without a URL", func(t *testing.T) {
		t.Parallel()

		page := &markup.Page{Content: "<html></html>"}
		err := page.Validate()
		require.Error(t, err)
		assert.Equal(t, markup.EINVALID, markup.ErrorCode(err))
	})
}
