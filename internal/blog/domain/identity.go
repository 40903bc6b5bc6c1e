package domain

// ExternalIdentity is what an OAuth provider vouches for after a verified
// code exchange.
type ExternalIdentity struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
	Picture       string
}
