package sources

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/claimscope/claimscope/internal/model"
	"github.com/claimscope/claimscope/internal/worker"
)

// Aggregator fans a query out to every configured source concurrently
// and merges the results. Merging happens single-threaded after the
// join: each connector produces its own local slice, so nothing is
// written concurrently.
type Aggregator struct {
	sources []Source
	log     zerolog.Logger
}

// NewAggregator creates an aggregator over the given sources.
func NewAggregator(log zerolog.Logger, srcs ...Source) *Aggregator {
	return &Aggregator{sources: srcs, log: log}
}

type searchJob struct {
	source Source
	query  string
	lang   string
}

type searchResult struct {
	source string
	items  []model.EvidenceItem
}

func (searchResult) GetError() error { return nil }

func (j searchJob) Execute(ctx context.Context) worker.Result {
	return searchResult{source: j.source.Name(), items: j.source.Search(ctx, j.query, j.lang)}
}

// Aggregate queries all sources with one worker each, collects results
// in completion order and deduplicates by URL, keeping the first-seen
// occurrence. A failing source contributes nothing; aggregation itself
// never fails. The overall bound is the slowest single connector's own
// timeout, since the connectors run in parallel.
func (a *Aggregator) Aggregate(ctx context.Context, query, lang string) []model.EvidenceItem {
	if len(a.sources) == 0 {
		return []model.EvidenceItem{}
	}

	pool := worker.NewPool(ctx, len(a.sources))
	pool.Start()
	for _, src := range a.sources {
		pool.Submit(searchJob{source: src, query: query, lang: lang})
	}
	results := pool.Wait()

	seen := make(map[string]struct{})
	merged := make([]model.EvidenceItem, 0, len(results)*webSearchPageSize)
	for _, r := range results {
		sr, ok := r.(searchResult)
		if !ok {
			continue
		}
		kept := 0
		for _, item := range sr.items {
			if item.URL == "" {
				continue
			}
			if _, dup := seen[item.URL]; dup {
				continue
			}
			seen[item.URL] = struct{}{}
			merged = append(merged, item)
			kept++
		}
		a.log.Debug().Str("source", sr.source).Int("items", len(sr.items)).Int("kept", kept).Msg("merged source results")
	}

	return merged
}
