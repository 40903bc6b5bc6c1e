package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/blog/internal/blog/service"
	"github.com/aussiebroadwan/blog/pkg/blogsdk"
	"github.com/aussiebroadwan/blog/pkg/httpx"
	"github.com/aussiebroadwan/blog/pkg/slogx"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

// detail strips the sentinel prefix from a wrapped service error, leaving the
// text added with fmt.Errorf("%w: ...").
func detail(err, sentinel error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, sentinel.Error()+": "); ok {
		return rest
	}
	return ""
}

func withDetail(apiErr *blogsdk.APIError, err, sentinel error) *blogsdk.APIError {
	if d := detail(err, sentinel); d != "" {
		return apiErr.WithDescription(d)
	}
	return apiErr
}

// writeServiceError maps the service error taxonomy onto the API envelope.
// Anything unrecognised is logged and reported as a server error.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *blogsdk.APIError
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		apiErr = blogsdk.ErrUnauthorized
	case errors.Is(err, service.ErrForbidden):
		apiErr = blogsdk.ErrForbidden
	case errors.Is(err, service.ErrNotFound):
		apiErr = withDetail(blogsdk.ErrNotFound, err, service.ErrNotFound)
	case errors.Is(err, service.ErrConflict):
		apiErr = withDetail(blogsdk.ErrConflict, err, service.ErrConflict)
	case errors.Is(err, service.ErrBadRequest):
		apiErr = withDetail(blogsdk.ErrBadRequest, err, service.ErrBadRequest)
	case errors.Is(err, service.ErrExternalService):
		apiErr = withDetail(blogsdk.ErrExternalService, err, service.ErrExternalService)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		apiErr = blogsdk.ErrServerError
	}
	apiErr.WriteError(w)
}

func writeValidationError(w http.ResponseWriter, details map[string]string) {
	httpx.WriteJSON(w, http.StatusBadRequest, blogsdk.ValidationErrorResponse{
		Code:    blogsdk.ErrorCodeValidation,
		Message: "request validation failed",
		Details: details,
	})
}

// validatable is implemented by every blogsdk request type.
type validatable interface {
	Validate() map[string]string
}

// decodeAndValidate reads a JSON body into v and validates it. It writes the
// error response itself and reports whether the handler may continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validatable) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		blogsdk.ErrInvalidJSON.WriteError(w)
		return false
	}
	if errs := v.Validate(); len(errs) > 0 {
		writeValidationError(w, errs)
		return false
	}
	return true
}

func isUnauthorized(err error) bool {
	return errors.Is(err, service.ErrUnauthorized)
}
