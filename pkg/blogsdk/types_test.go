package blogsdk

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNullable(t *testing.T) {
	t.Parallel()

	t.Run("decode distinguishes absent null and value", func(t *testing.T) {
		var req PostUpdateRequest
		require.NoError(t, json.Unmarshal([]byte(`{"image_url": null, "category_id": 4}`), &req))

		require.True(t, req.ImageURL.Set)
		require.True(t, req.ImageURL.Null)
		require.Nil(t, req.ImageURL.Ptr())

		require.True(t, req.CategoryID.Set)
		require.False(t, req.CategoryID.Null)
		require.EqualValues(t, 4, *req.CategoryID.Ptr())

		require.Nil(t, req.Title)
	})

	t.Run("absent fields are omitted when encoding", func(t *testing.T) {
		title := "New"
		b, err := json.Marshal(PostUpdateRequest{Title: &title, ImageURL: Null[string]()})
		require.NoError(t, err)
		require.JSONEq(t, `{"title": "New", "image_url": null}`, string(b))
	})
}
