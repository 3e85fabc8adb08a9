package utils

import (
	"context"
	"sync"
	"time"
)

// revokedEntry keeps expiration metadata for a revoked session.
type revokedEntry struct {
	expiresAt time.Time
}

var (
	revoked   = map[string]revokedEntry{}
	revokedMu sync.RWMutex
)

// RevokeSession marks a session id as ended until its natural expiration,
// which is what makes logout effective before the token expires.
func RevokeSession(sessionID string, expiresAt time.Time) {
	// Prefer Redis: key with TTL until session expiration
	if rc := GetRedis(); rc != nil {
		ttl := time.Until(expiresAt)
		if ttl <= 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = rc.Set(ctx, "session:revoked:"+sessionID, "1", ttl).Err()
		return
	}
	// Fallback to in-memory
	revokedMu.Lock()
	revoked[sessionID] = revokedEntry{expiresAt: expiresAt}
	revokedMu.Unlock()
}

// IsSessionRevoked checks whether a session was ended before natural expiration.
func IsSessionRevoked(sessionID string) bool {
	if rc := GetRedis(); rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		n, err := rc.Exists(ctx, "session:revoked:"+sessionID).Result()
		if err == nil {
			return n > 0
		}
		// On Redis error, fail open to avoid locking everyone out
		return false
	}
	revokedMu.RLock()
	entry, ok := revoked[sessionID]
	revokedMu.RUnlock()
	if !ok {
		return false
	}

	if time.Now().After(entry.expiresAt) {
		revokedMu.Lock()
		delete(revoked, sessionID)
		revokedMu.Unlock()
		return false
	}

	return true
}
