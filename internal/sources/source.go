// Package sources implements the external evidence connectors and the
// concurrent aggregator that merges their results.
package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/claimscope/claimscope/internal/model"
	"github.com/claimscope/claimscope/internal/worker"
)

// maxResponseBytes caps how much of a provider payload is read.
const maxResponseBytes = 1 << 20

// Source is one external evidence backend behind a uniform contract.
// Search never returns an error and never blocks past the connector's
// own timeout: any failure (network error, non-2xx status, malformed
// payload, missing credential) yields an empty result.
type Source interface {
	Name() string
	Search(ctx context.Context, query, lang string) []model.EvidenceItem
}

// client is the shared HTTP plumbing for the connectors: a bounded
// http.Client, per-host rate limiting and structured failure logging.
type client struct {
	http    *http.Client
	limiter *worker.Limiter
	timeout time.Duration
	ua      string
	log     zerolog.Logger
}

func newClient(cfg model.SourcesConfig, limiter *worker.Limiter, log zerolog.Logger) client {
	return client{
		http: &http.Client{
			Timeout: cfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		limiter: limiter,
		timeout: cfg.Timeout,
		ua:      cfg.UserAgent,
		log:     log,
	}
}

// getJSON performs one rate-limited GET and decodes the JSON payload
// into out. Connectors translate any returned error into an empty
// result; the error is for their logs only. The per-call budget covers
// the limiter wait and the request together: a queued token cannot
// stretch the call past the configured timeout.
func (c client) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, endpoint); err != nil {
			return fmt.Errorf("rate limit: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.ua)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}

// recovered logs a locally-contained connector failure. The caller
// still returns an empty result; the response shape never changes.
func (c client) recovered(name string, err error) {
	c.log.Warn().Str("source", name).Err(err).Bool("recovered", true).Msg("connector failure, returning no evidence")
}
