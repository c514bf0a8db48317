package sources

import (
	"context"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/claimscope/claimscope/internal/model"
	"github.com/claimscope/claimscope/internal/worker"
)

const webSearchEndpoint = "https://www.googleapis.com/customsearch/v1"

const webSearchPageSize = 5

// WebSearch searches the open web through the Google Custom Search
// JSON API. It needs both an API key and a search-engine ID; with
// either missing it short-circuits to an empty result.
type WebSearch struct {
	client
	apiKey   string
	cx       string
	endpoint string
}

// NewWebSearch creates the Custom Search connector.
func NewWebSearch(cfg model.SourcesConfig, limiter *worker.Limiter, log zerolog.Logger) *WebSearch {
	return &WebSearch{
		client:   newClient(cfg, limiter, log),
		apiKey:   cfg.GoogleSearchKey,
		cx:       cfg.GoogleCX,
		endpoint: webSearchEndpoint,
	}
}

// Name implements Source.
func (s *WebSearch) Name() string { return "websearch" }

type webSearchResponse struct {
	Items []struct {
		Link        string `json:"link"`
		DisplayLink string `json:"displayLink"`
		Snippet     string `json:"snippet"`
	} `json:"items"`
}

// Search implements Source.
func (s *WebSearch) Search(ctx context.Context, query, _ string) []model.EvidenceItem {
	if s.apiKey == "" || s.cx == "" {
		return nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("key", s.apiKey)
	params.Set("cx", s.cx)
	params.Set("num", strconv.Itoa(webSearchPageSize))

	var resp webSearchResponse
	if err := s.getJSON(ctx, s.endpoint, params, &resp); err != nil {
		s.recovered(s.Name(), err)
		return nil
	}

	items := make([]model.EvidenceItem, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Link == "" {
			continue
		}
		publisher := item.DisplayLink
		if publisher == "" {
			publisher = "GoogleSearch"
		}
		items = append(items, model.EvidenceItem{
			URL:       item.Link,
			Publisher: publisher,
			Snippet:   StripMarkup(item.Snippet),
		})
	}
	return items
}
