package utils

import (
	"context"
	"sync"
	"time"
)

// blacklistEntry keeps expiration metadata for a revoked token ID.
type blacklistEntry struct {
	expiresAt time.Time
}

var (
	blacklist   = map[string]blacklistEntry{}
	blacklistMu sync.RWMutex
)

// BlacklistToken stores a token ID (jti claim) until expiration to support
// logout semantics. Keying on the jti rather than the signed string keeps
// revocation scoped to one session even if another login produced an
// identical token. Redis is preferred so revocation survives restarts; the
// in-memory map is the fallback.
func BlacklistToken(id string, expiresAt time.Time) {
	if rc := GetRedis(); rc != nil {
		ttl := time.Until(expiresAt)
		if ttl <= 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = rc.Set(ctx, "jwt:blacklist:"+id, "1", ttl).Err()
		return
	}
	blacklistMu.Lock()
	blacklist[id] = blacklistEntry{expiresAt: expiresAt}
	blacklistMu.Unlock()
}

// IsTokenBlacklisted checks if a token ID was revoked before natural expiration.
func IsTokenBlacklisted(id string) bool {
	if rc := GetRedis(); rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		n, err := rc.Exists(ctx, "jwt:blacklist:"+id).Result()
		if err == nil {
			return n > 0
		}
		// Fail open on Redis errors to avoid locking the admin out.
		return false
	}

	blacklistMu.RLock()
	entry, ok := blacklist[id]
	blacklistMu.RUnlock()
	if !ok {
		return false
	}

	if time.Now().After(entry.expiresAt) {
		blacklistMu.Lock()
		delete(blacklist, id)
		blacklistMu.Unlock()
		return false
	}

	return true
}
