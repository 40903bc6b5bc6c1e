package service

import "fmt"

const (
	DefaultPostLimit     = 10
	DefaultCategoryLimit = 100
	MaxPageLimit         = 100
)

// Page is an offset/limit window over an id-ordered listing.
type Page struct {
	Skip  int
	Limit int
}

// Validate rejects negative skips and non-positive limits and caps the
// limit at MaxPageLimit.
func (p Page) Validate() (Page, error) {
	if p.Skip < 0 {
		return Page{}, fmt.Errorf("%w: skip must not be negative", ErrBadRequest)
	}
	if p.Limit <= 0 {
		return Page{}, fmt.Errorf("%w: limit must be positive", ErrBadRequest)
	}
	p.Limit = min(p.Limit, MaxPageLimit)
	return p, nil
}
