package blogsdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListPosts returns a page of posts ordered by id.
func (c *Client) ListPosts(ctx context.Context, skip, limit int) (*PostList, error) {
	q := url.Values{
		"skip":  {strconv.Itoa(skip)},
		"limit": {strconv.Itoa(limit)},
	}
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/posts?"+q.Encode(), nil, nil)
	if err != nil {
		return nil, err
	}

	var out PostList
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetPost(ctx context.Context, id int64) (*PostResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, postPath(id), nil, nil)
	if err != nil {
		return nil, err
	}

	var out PostResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePost creates a post. Admin only.
func (c *Client) CreatePost(ctx context.Context, req PostCreateRequest) (*PostResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/posts", req)
	if err != nil {
		return nil, err
	}

	var out PostResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePost applies a partial update. Admin only.
func (c *Client) UpdatePost(ctx context.Context, id int64, req PostUpdateRequest) (*PostResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPut, postPath(id), req)
	if err != nil {
		return nil, err
	}

	var out PostResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePost removes a post. Admin only.
func (c *Client) DeletePost(ctx context.Context, id int64) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, postPath(id), nil, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func postPath(id int64) string {
	return "/api/posts/" + strconv.FormatInt(id, 10)
}
