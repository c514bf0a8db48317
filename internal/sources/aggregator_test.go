package sources

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/claimscope/claimscope/internal/model"
)

// stubSource implements Source with canned items and an optional
// internal delay bounded by its own timeout, like a real connector.
type stubSource struct {
	name    string
	items   []model.EvidenceItem
	delay   time.Duration
	timeout time.Duration
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Search(ctx context.Context, _, _ string) []model.EvidenceItem {
	if s.delay > 0 {
		wait := s.delay
		if s.timeout > 0 && s.timeout < wait {
			wait = s.timeout
		}
		select {
		case <-time.After(wait):
			if s.timeout > 0 && s.delay > s.timeout {
				return nil // own timeout elapsed, result abandoned
			}
		case <-ctx.Done():
			return nil
		}
	}
	return s.items
}

func items(urls ...string) []model.EvidenceItem {
	out := make([]model.EvidenceItem, len(urls))
	for i, u := range urls {
		out[i] = model.EvidenceItem{URL: u, Publisher: "stub"}
	}
	return out
}

func urlSet(evidence []model.EvidenceItem) map[string]bool {
	set := make(map[string]bool, len(evidence))
	for _, item := range evidence {
		set[item.URL] = true
	}
	return set
}

func TestAggregate_DeduplicatesByURL(t *testing.T) {
	agg := NewAggregator(zerolog.Nop(),
		&stubSource{name: "a", items: items("https://x/1", "https://x/2")},
		&stubSource{name: "b", items: items("https://x/2", "https://x/3")},
		&stubSource{name: "c", items: items("https://x/1")},
	)

	merged := agg.Aggregate(context.Background(), "q", "en")

	seen := make(map[string]int)
	for _, item := range merged {
		seen[item.URL]++
	}
	for url, count := range seen {
		if count != 1 {
			t.Errorf("url %s appears %d times, want 1", url, count)
		}
	}
	if len(merged) != 3 {
		t.Errorf("expected 3 unique items, got %d", len(merged))
	}
}

func TestAggregate_DropsEmptyURLs(t *testing.T) {
	agg := NewAggregator(zerolog.Nop(),
		&stubSource{name: "a", items: []model.EvidenceItem{{URL: "", Publisher: "x"}, {URL: "https://x/1"}}},
	)

	merged := agg.Aggregate(context.Background(), "q", "en")
	if len(merged) != 1 || merged[0].URL != "https://x/1" {
		t.Errorf("items without a url must be discarded, got %+v", merged)
	}
}

func TestAggregate_AllSourcesEmpty(t *testing.T) {
	agg := NewAggregator(zerolog.Nop(),
		&stubSource{name: "a"},
		&stubSource{name: "b"},
	)

	merged := agg.Aggregate(context.Background(), "q", "en")
	if len(merged) != 0 {
		t.Errorf("expected empty set, got %d items", len(merged))
	}
}

func TestAggregate_NoSources(t *testing.T) {
	agg := NewAggregator(zerolog.Nop())
	if merged := agg.Aggregate(context.Background(), "q", "en"); len(merged) != 0 {
		t.Errorf("expected empty set with no sources, got %d items", len(merged))
	}
}

func TestAggregate_SlowSourceDoesNotStallOthers(t *testing.T) {
	// The slow source simulates a connector whose provider hangs past
	// its own timeout; it contributes nothing but must not delay the
	// join beyond that timeout.
	slow := &stubSource{name: "slow", items: items("https://slow/1"), delay: 10 * time.Second, timeout: 200 * time.Millisecond}
	agg := NewAggregator(zerolog.Nop(),
		slow,
		&stubSource{name: "a", items: items("https://x/1")},
		&stubSource{name: "b", items: items("https://x/2")},
		&stubSource{name: "c", items: items("https://x/3")},
	)

	start := time.Now()
	merged := agg.Aggregate(context.Background(), "q", "en")
	elapsed := time.Since(start)

	if elapsed > time.Second {
		t.Errorf("aggregation took %v, should be bounded by the slow connector's own timeout", elapsed)
	}

	got := urlSet(merged)
	for _, want := range []string{"https://x/1", "https://x/2", "https://x/3"} {
		if !got[want] {
			t.Errorf("missing %s from prompt sources", want)
		}
	}
	if got["https://slow/1"] {
		t.Error("timed-out connector's result should be abandoned")
	}
}
