package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores downloaded bulletin bodies keyed by Key
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// keyPrefix versions the cached layout; bump it when the stored encoding changes
const keyPrefix = "crimezones-v1-"

// Key derives a filesystem-safe cache key from a source URL
func Key(rawURL string) string {
	hash := sha256.Sum256([]byte(rawURL))
	return keyPrefix + hex.EncodeToString(hash[:])
}
