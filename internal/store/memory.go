package store

import (
	"context"
	"sync"

	"github.com/claimscope/claimscope/internal/model"
)

// MemoryStore is a volatile Store for tests and one-shot CLI runs.
type MemoryStore struct {
	mu         sync.Mutex
	checks     map[string]model.CheckRecord // keyed (text, region)
	fakeClaims map[string][]string          // keyed region
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		checks:     make(map[string]model.CheckRecord),
		fakeClaims: make(map[string][]string),
	}
}

func checkKey(text, region string) string {
	return text + "\x00" + region
}

// UpsertCheck implements Store. First write wins, matching the
// INSERT OR IGNORE semantics of the SQLite backend.
func (m *MemoryStore) UpsertCheck(_ context.Context, rec model.CheckRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := checkKey(rec.OriginalText, rec.Region)
	if _, exists := m.checks[key]; exists {
		return nil
	}
	m.checks[key] = rec
	return nil
}

// AppendFakeClaim implements Store.
func (m *MemoryStore) AppendFakeClaim(_ context.Context, region, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.fakeClaims[region] = append(m.fakeClaims[region], text)
	return nil
}

// FakeClaims implements Store.
func (m *MemoryStore) FakeClaims(_ context.Context, region string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	claims := m.fakeClaims[region]
	out := make([]string, len(claims))
	copy(out, claims)
	return out, nil
}

// FakeCounts implements Store.
func (m *MemoryStore) FakeCounts(_ context.Context) (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	counts := make(map[string]int, len(m.fakeClaims))
	for region, claims := range m.fakeClaims {
		counts[region] = len(claims)
	}
	return counts, nil
}

// CheckCount reports how many distinct (text, region) records exist.
func (m *MemoryStore) CheckCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.checks)
}

// Close implements Store.
func (m *MemoryStore) Close() error { return nil }
