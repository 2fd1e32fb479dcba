// Package cache stores fetched community listings between runs so that
// iterating on the lexicon does not re-hit the API.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Cache defines the interface for listing caching.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// ListingKey builds the cache key for one community fetch. Mode and
// limit are part of the key: a hot/25 listing is not a top/100 listing.
func ListingKey(community, mode string, limit int) string {
	raw := fmt.Sprintf("%s|%s|%d", community, mode, limit)
	hash := sha256.Sum256([]byte(raw))
	return "quadrant:v1:" + hex.EncodeToString(hash[:])
}
