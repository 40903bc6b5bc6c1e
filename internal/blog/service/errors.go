package service

import "errors"

// Outcomes the HTTP layer maps to status codes. Detail is attached with
// fmt.Errorf("%w: ...").
var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")
	ErrNotFound        = errors.New("not found")
	ErrBadRequest      = errors.New("bad request")
	ErrExternalService = errors.New("external service error")
)
