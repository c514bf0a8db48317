package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"

	"github.com/rs/zerolog"

	"github.com/claimscope/claimscope/internal/model"
	"github.com/claimscope/claimscope/internal/worker"
)

const wikipediaPageSize = 5

// langCodeRe guards the language token interpolated into the wiki host.
var langCodeRe = regexp.MustCompile(`^[a-z]{2,3}$`)

// Wikipedia searches encyclopedia articles through the MediaWiki
// opensearch API of the language-matching wiki. It needs no
// credentials, so it is always active.
type Wikipedia struct {
	client
	endpoint string // Test override; empty means per-language wiki host
}

// NewWikipedia creates the encyclopedia connector.
func NewWikipedia(cfg model.SourcesConfig, limiter *worker.Limiter, log zerolog.Logger) *Wikipedia {
	return &Wikipedia{client: newClient(cfg, limiter, log)}
}

// Name implements Source.
func (s *Wikipedia) Name() string { return "wikipedia" }

// Search implements Source. The opensearch payload is positional:
// [term, titles, descriptions, urls]; only the fourth slot matters.
func (s *Wikipedia) Search(ctx context.Context, query, lang string) []model.EvidenceItem {
	if !langCodeRe.MatchString(lang) {
		lang = "en"
	}
	endpoint := s.endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s.wikipedia.org/w/api.php", lang)
	}

	params := url.Values{}
	params.Set("action", "opensearch")
	params.Set("search", query)
	params.Set("limit", fmt.Sprintf("%d", wikipediaPageSize))
	params.Set("format", "json")

	var resp []json.RawMessage
	if err := s.getJSON(ctx, endpoint, params, &resp); err != nil {
		s.recovered(s.Name(), err)
		return nil
	}
	if len(resp) < 4 {
		return nil
	}

	var links []string
	if err := json.Unmarshal(resp[3], &links); err != nil {
		s.recovered(s.Name(), fmt.Errorf("decode links: %w", err))
		return nil
	}

	items := make([]model.EvidenceItem, 0, len(links))
	for _, link := range links {
		if link == "" {
			continue
		}
		items = append(items, model.EvidenceItem{
			URL:       link,
			Publisher: "Wikipedia",
		})
	}
	return items
}
