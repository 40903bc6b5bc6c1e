package blog_test

import (
	"testing"

	"github.com/aussiebroadwan/blog/pkg/blogsdk"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupBlogContainer(t, nil)
	defer cleanup()

	client := blogsdk.NewClient(baseURL)
	ctx := t.Context()

	root, err := client.Root(ctx)
	require.NoError(t, err)
	require.Equal(t, "Welcome to the Blog API", root.Message)

	health, err := client.GetHealth(ctx)
	require.NoError(t, err)
	require.Equal(t, "healthy", health.Status)

	live, err := client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.NotEmpty(t, live.Uptime)

	ready, err := client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, "ok", ready.Checks["database"])
}
