package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/claimscope/claimscope/internal/model"
)

// RemoteProvider scores text against a sequence-classifier inference
// service (a sidecar serving the fine-tuned misinformation model).
// Wire contract: POST {"text": ...} -> {"label": "Fake"|"True",
// "score": 0..1}.
type RemoteProvider struct {
	httpClient *http.Client
	baseURL    string
}

// NewRemoteProvider creates a remote inference provider.
func NewRemoteProvider(cfg model.ClassifierConfig) (*RemoteProvider, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("remote classifier requires a base URL")
	}

	return &RemoteProvider{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
	}, nil
}

// Name implements Provider.
func (p *RemoteProvider) Name() string { return "remote" }

type remoteRequest struct {
	Text string `json:"text"`
}

type remoteResponse struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classify implements Provider.
func (p *RemoteProvider) Classify(ctx context.Context, text string) (model.Prediction, error) {
	body, err := json.Marshal(remoteRequest{Text: text})
	if err != nil {
		return model.Prediction{}, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return model.Prediction{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return model.Prediction{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.Prediction{}, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return model.Prediction{}, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}

	var out remoteResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return model.Prediction{}, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}

	return model.Prediction{Label: out.Label, Score: clampScore(out.Score)}, nil
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
