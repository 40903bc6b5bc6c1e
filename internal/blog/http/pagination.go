package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/blog/internal/blog/service"
)

// parsePage reads skip and limit from the query string, falling back to
// defaultLimit. Range checks are left to service.Page.Validate.
func parsePage(r *http.Request, defaultLimit int) (service.Page, error) {
	q := r.URL.Query()
	page := service.Page{Skip: 0, Limit: defaultLimit}

	if v := q.Get("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return service.Page{}, fmt.Errorf("%w: skip must be an integer", service.ErrBadRequest)
		}
		page.Skip = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return service.Page{}, fmt.Errorf("%w: limit must be an integer", service.ErrBadRequest)
		}
		page.Limit = n
	}
	return page, nil
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id must be a positive integer", service.ErrBadRequest)
	}
	return id, nil
}
