package sources

import (
	"context"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/claimscope/claimscope/internal/model"
	"github.com/claimscope/claimscope/internal/worker"
)

const newsAPIEndpoint = "https://newsapi.org/v2/everything"

// NewsAPI searches general news coverage through the NewsAPI
// "everything" endpoint.
type NewsAPI struct {
	client
	apiKey   string
	pageSize int
	endpoint string
}

// NewNewsAPI creates the NewsAPI connector. With no API key configured
// the connector short-circuits to an empty result without calling out.
func NewNewsAPI(cfg model.SourcesConfig, limiter *worker.Limiter, log zerolog.Logger) *NewsAPI {
	return &NewsAPI{
		client:   newClient(cfg, limiter, log),
		apiKey:   cfg.NewsAPIKey,
		pageSize: cfg.PageSize,
		endpoint: newsAPIEndpoint,
	}
}

// Name implements Source.
func (s *NewsAPI) Name() string { return "newsapi" }

type newsAPIResponse struct {
	Articles []struct {
		URL         string `json:"url"`
		Description string `json:"description"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// Search implements Source.
func (s *NewsAPI) Search(ctx context.Context, query, lang string) []model.EvidenceItem {
	if s.apiKey == "" {
		return nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("apiKey", s.apiKey)
	params.Set("language", lang)
	params.Set("pageSize", strconv.Itoa(s.pageSize))

	var resp newsAPIResponse
	if err := s.getJSON(ctx, s.endpoint, params, &resp); err != nil {
		s.recovered(s.Name(), err)
		return nil
	}

	items := make([]model.EvidenceItem, 0, len(resp.Articles))
	for _, art := range resp.Articles {
		if art.URL == "" {
			continue
		}
		publisher := art.Source.Name
		if publisher == "" {
			publisher = "NewsAPI"
		}
		items = append(items, model.EvidenceItem{
			URL:       art.URL,
			Publisher: publisher,
			Snippet:   StripMarkup(art.Description),
		})
	}
	return items
}
