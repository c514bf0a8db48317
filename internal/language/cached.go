package language

import (
	"context"
	"time"

	"github.com/claimscope/claimscope/internal/cache"
)

// CachedTranslator memoizes translations on the shared cache, keyed by
// (text, source language, target language). The same input always
// yields the same translation, so concurrent last-write-wins on a key
// is harmless.
type CachedTranslator struct {
	inner Translator
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedTranslator wraps a translator with caching.
func NewCachedTranslator(inner Translator, c cache.Cache, ttl time.Duration) *CachedTranslator {
	return &CachedTranslator{inner: inner, cache: c, ttl: ttl}
}

// Translate implements Translator. Failures are not cached.
func (t *CachedTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if text == "" {
		return text, nil
	}

	key := cache.Key(text, sourceLang, targetLang)
	if val, found := t.cache.Get(key); found {
		return string(val), nil
	}

	translated, err := t.inner.Translate(ctx, text, sourceLang, targetLang)
	if err != nil {
		return "", err
	}

	_ = t.cache.Set(key, []byte(translated), t.ttl)
	return translated, nil
}
