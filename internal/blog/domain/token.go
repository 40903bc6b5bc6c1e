package domain

import "time"

// TokenPair is what a successful login or refresh produces. The access token
// goes back in the response body, the refresh token only in the cookie.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    time.Duration // access token lifetime
	RefreshTTL   time.Duration // refresh token lifetime, also the cookie max-age
}
