package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Cache defines the interface for the shared lookup cache. Writes to
// the same key are idempotent value-wise, so last-write-wins is fine.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key builds a cache key from the given parts. Translation lookups use
// (text, source language, target language).
func Key(parts ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return "claimscope:v1:" + hex.EncodeToString(hash[:])
}
