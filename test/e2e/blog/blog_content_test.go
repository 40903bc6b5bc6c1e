package blog_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/blog/pkg/blogsdk"
	"github.com/stretchr/testify/require"
)

func TestContentManagement(t *testing.T) {
	baseURL, cleanup := setupBlogContainer(t, nil)
	defer cleanup()

	ctx := t.Context()
	admin, _ := registerAndLogin(t, baseURL, adminEmail, adminPassword, true)
	reader, readerUser := registerAndLogin(t, baseURL, "reader@example.com", userPassword, true)
	require.False(t, readerUser.IsAdmin, "Only the first account may claim admin")

	_, err := reader.CreateCategory(ctx, blogsdk.CategoryRequest{Name: "Travel"})
	assertStatus(t, err, http.StatusForbidden, "Non-admin create category")

	cat, err := admin.CreateCategory(ctx, blogsdk.CategoryRequest{Name: "Travel"})
	require.NoError(t, err)

	post, err := admin.CreatePost(ctx, blogsdk.PostCreateRequest{
		Title:      "Hello",
		Content:    "First post",
		CategoryID: &cat.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, post.Category)
	require.Equal(t, "Travel", post.Category.Name)

	anon := blogsdk.NewClient(baseURL)
	list, err := anon.ListPosts(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, list.Posts, 1)

	require.NoError(t, admin.DeleteCategory(ctx, cat.ID))
	got, err := anon.GetPost(ctx, post.ID)
	require.NoError(t, err)
	require.Nil(t, got.CategoryID, "Deleting a category should detach its posts")

	_, err = admin.SetAdmin(ctx, readerUser.ID, true)
	require.NoError(t, err)
	_, err = reader.CreateCategory(ctx, blogsdk.CategoryRequest{Name: "Food"})
	require.NoError(t, err, "Promoted user should be able to write")

	require.NoError(t, admin.DeletePost(ctx, post.ID))
	_, err = anon.GetPost(ctx, post.ID)
	assertStatus(t, err, http.StatusNotFound, "Deleted post")
}

func TestSampleDataSeeding(t *testing.T) {
	baseURL, cleanup := setupBlogContainer(t, map[string]string{"SEED_SAMPLE_DATA": "true"})
	defer cleanup()

	client := blogsdk.NewClient(baseURL)
	ctx := t.Context()

	cats, err := client.ListCategories(ctx, 0, 100)
	require.NoError(t, err)
	require.Len(t, cats.Categories, 3)

	posts, err := client.ListPosts(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, posts.Posts, 3)
	for _, p := range posts.Posts {
		require.NotNil(t, p.Category, "Seeded posts belong to a category")
	}
}
