package blogsdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) ListCategories(ctx context.Context, skip, limit int) (*CategoryList, error) {
	q := url.Values{
		"skip":  {strconv.Itoa(skip)},
		"limit": {strconv.Itoa(limit)},
	}
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/categories?"+q.Encode(), nil, nil)
	if err != nil {
		return nil, err
	}

	var out CategoryList
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetCategory(ctx context.Context, id int64) (*CategoryResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, categoryPath(id), nil, nil)
	if err != nil {
		return nil, err
	}

	var out CategoryResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCategory creates a category. Admin only.
func (c *Client) CreateCategory(ctx context.Context, req CategoryRequest) (*CategoryResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/categories", req)
	if err != nil {
		return nil, err
	}

	var out CategoryResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCategory replaces name and description. Admin only.
func (c *Client) UpdateCategory(ctx context.Context, id int64, req CategoryRequest) (*CategoryResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPut, categoryPath(id), req)
	if err != nil {
		return nil, err
	}

	var out CategoryResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCategory removes a category; its posts keep existing uncategorised.
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, categoryPath(id), nil, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func categoryPath(id int64) string {
	return "/api/categories/" + strconv.FormatInt(id, 10)
}
