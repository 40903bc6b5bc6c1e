package jwtx

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// DefaultJWKSRefresh bounds how long fetched keys are trusted before a
// refetch.
const DefaultJWKSRefresh = time.Hour

// DefaultJWKSMinRefresh is the shortest gap between refetches forced by an
// unknown kid.
const DefaultJWKSMinRefresh = time.Minute

// RemoteKeySet lazily fetches a JWKS document over HTTP and caches it. A
// stale cache triggers a refetch, as does an unknown kid at most once per
// MinRefresh.
type RemoteKeySet struct {
	URL        string
	HTTPClient *http.Client
	TTL        time.Duration
	MinRefresh time.Duration

	keys *KeySet

	mu        sync.Mutex
	fetchedAt time.Time
}

func NewRemoteKeySet(url string, client *http.Client) *RemoteKeySet {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &RemoteKeySet{
		URL:        url,
		HTTPClient: client,
		TTL:        DefaultJWKSRefresh,
		MinRefresh: DefaultJWKSMinRefresh,
		keys:       NewKeySet(),
	}
}

// Key returns the key for kid, refreshing the cache when needed.
func (r *RemoteKeySet) Key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	stale, recent := r.cacheState()
	if !stale {
		if key, err := r.keys.Get(kid); err == nil {
			return key, nil
		}
		// Token-supplied kids must not drive unbounded fetches
		if recent {
			return nil, fmt.Errorf("%w %q", ErrUnknownKID, kid)
		}
	}

	if err := r.Refresh(ctx); err != nil {
		return nil, err
	}

	key, err := r.keys.Get(kid)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownKID, kid)
	}
	return key, nil
}

// cacheState reports whether the cache has expired and whether it was
// fetched within MinRefresh.
func (r *RemoteKeySet) cacheState() (stale, recent bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fetchedAt.IsZero() {
		return true, false
	}
	age := time.Since(r.fetchedAt)
	return age > r.TTL, age < r.MinRefresh
}

// Refresh downloads the JWKS and replaces the cached keys.
func (r *RemoteKeySet) Refresh(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.URL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrKeyFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrKeyFetch, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %d", ErrKeyFetch, resp.StatusCode)
	}

	var jwks JWKS
	if err := json.NewDecoder(resp.Body).Decode(&jwks); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrKeyFetch, err)
	}
	if err := r.keys.ResetFromJWKS(jwks); err != nil {
		return fmt.Errorf("%w: %v", ErrKeyFetch, err)
	}

	r.fetchedAt = time.Now()
	return nil
}
