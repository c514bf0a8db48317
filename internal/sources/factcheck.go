package sources

import (
	"context"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/claimscope/claimscope/internal/model"
	"github.com/claimscope/claimscope/internal/worker"
)

const factCheckEndpoint = "https://factchecktools.googleapis.com/v1alpha1/claims:search"

// factCheckPageSize is deliberately small; claim reviews are dense and
// a handful is enough to corroborate or refute.
const factCheckPageSize = 5

// FactCheck searches published claim reviews through the Google Fact
// Check Tools API.
type FactCheck struct {
	client
	apiKey   string
	endpoint string
}

// NewFactCheck creates the Fact Check Tools connector.
func NewFactCheck(cfg model.SourcesConfig, limiter *worker.Limiter, log zerolog.Logger) *FactCheck {
	return &FactCheck{
		client:   newClient(cfg, limiter, log),
		apiKey:   cfg.FactCheckKey,
		endpoint: factCheckEndpoint,
	}
}

// Name implements Source.
func (s *FactCheck) Name() string { return "factcheck" }

type factCheckResponse struct {
	Claims []struct {
		ClaimReview []struct {
			URL           string `json:"url"`
			TextualRating string `json:"textualRating"`
			Publisher     struct {
				Name string `json:"name"`
			} `json:"publisher"`
		} `json:"claimReview"`
	} `json:"claims"`
}

// Search implements Source. The review's textual rating ("False",
// "Misleading", ...) rides along as the snippet so the authority
// classifier can pick up debunking language from it.
func (s *FactCheck) Search(ctx context.Context, query, _ string) []model.EvidenceItem {
	if s.apiKey == "" {
		return nil
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("key", s.apiKey)
	params.Set("pageSize", strconv.Itoa(factCheckPageSize))

	var resp factCheckResponse
	if err := s.getJSON(ctx, s.endpoint, params, &resp); err != nil {
		s.recovered(s.Name(), err)
		return nil
	}

	items := make([]model.EvidenceItem, 0, len(resp.Claims))
	for _, claim := range resp.Claims {
		if len(claim.ClaimReview) == 0 {
			continue
		}
		review := claim.ClaimReview[0]
		if review.URL == "" {
			continue
		}
		publisher := review.Publisher.Name
		if publisher == "" {
			publisher = "FactCheck"
		}
		items = append(items, model.EvidenceItem{
			URL:       review.URL,
			Publisher: publisher,
			Snippet:   review.TextualRating,
		})
	}
	return items
}
