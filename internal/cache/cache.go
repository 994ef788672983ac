// Package cache provides the fetched-document cache used when
// analyzing documents by URL.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching fetched document text
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from a document URL
func Key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "clauscan:v1:" + hex.EncodeToString(hash[:])
}
