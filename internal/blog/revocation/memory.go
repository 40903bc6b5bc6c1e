package revocation

import (
	"context"
	"sync"
	"time"
)

// MemoryList is a process-local List. Entries linger after expiry until
// Sweep removes them.
type MemoryList struct {
	mu      sync.RWMutex
	entries map[string]time.Time

	// now is replaceable in tests
	now func() time.Time
}

func NewMemoryList() *MemoryList {
	return &MemoryList{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (l *MemoryList) Revoke(_ context.Context, jti string, exp time.Time) error {
	if !exp.After(l.now()) {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if cur, ok := l.entries[jti]; !ok || exp.After(cur) {
		l.entries[jti] = exp
	}
	return nil
}

func (l *MemoryList) RevokeIfAbsent(_ context.Context, jti string, exp time.Time) (bool, error) {
	now := l.now()
	if !exp.After(now) {
		return false, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if cur, ok := l.entries[jti]; ok && cur.After(now) {
		return false, nil
	}
	l.entries[jti] = exp
	return true, nil
}

func (l *MemoryList) IsRevoked(_ context.Context, jti string) (bool, error) {
	l.mu.RLock()
	exp, ok := l.entries[jti]
	l.mu.RUnlock()
	return ok && exp.After(l.now()), nil
}

func (l *MemoryList) Ping(context.Context) error { return nil }

// Sweep drops expired entries and returns how many were removed.
func (l *MemoryList) Sweep(_ context.Context) int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for jti, exp := range l.entries {
		if !exp.After(now) {
			delete(l.entries, jti)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked entries, expired or not.
func (l *MemoryList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
