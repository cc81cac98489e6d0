package zoom

import (
	"context"
	"sync"
	"time"
)

// tokenCache holds the OAuth bearer token with its expiry and refreshes it
// on demand. Scoped to the client that owns it, never package state.
type tokenCache struct {
	mu      sync.Mutex
	token   string
	expires time.Time
	fetch   func(ctx context.Context) (string, time.Time, error)
}

func newTokenCache(fetch func(ctx context.Context) (string, time.Time, error)) *tokenCache {
	return &tokenCache{fetch: fetch}
}

func (tc *tokenCache) get(ctx context.Context) (string, error) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	// Refresh a minute early so an in-flight API call never carries a
	// token that expires mid-request.
	if tc.token != "" && time.Now().Before(tc.expires.Add(-time.Minute)) {
		return tc.token, nil
	}

	token, expires, err := tc.fetch(ctx)
	if err != nil {
		return "", err
	}
	tc.token = token
	tc.expires = expires
	return token, nil
}
