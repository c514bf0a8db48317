package language

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/claimscope/claimscope/internal/model"
)

// Translator converts text between languages. Implementations may
// fail; callers that must not block the pipeline go through
// TranslateOrOriginal instead of handling errors themselves.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// TranslateOrOriginal is the fail-open entry point: on any translation
// failure the original text is returned unchanged and the failure is
// logged as locally recovered.
func TranslateOrOriginal(ctx context.Context, t Translator, text, sourceLang, targetLang string, log zerolog.Logger) string {
	if t == nil || text == "" || sourceLang == targetLang {
		return text
	}
	translated, err := t.Translate(ctx, text, sourceLang, targetLang)
	if err != nil {
		log.Warn().Str("source_lang", sourceLang).Str("target_lang", targetLang).Err(err).
			Bool("recovered", true).Msg("translation failed, keeping original text")
		return text
	}
	return translated
}

// GoogleTranslator translates through the public Google web translate
// endpoint, the same backend the original deployment used.
type GoogleTranslator struct {
	httpClient *http.Client
	baseURL    string
}

// NewGoogleTranslator creates the web-endpoint translator.
func NewGoogleTranslator(cfg model.TranslatorConfig) *GoogleTranslator {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 6 * time.Second
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://translate.googleapis.com"
	}

	return &GoogleTranslator{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Translate implements Translator. The endpoint answers with nested
// positional arrays; the translation is the first element of each
// segment under the first slot.
func (g *GoogleTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if sourceLang == "" {
		sourceLang = "auto"
	}

	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", sourceLang)
	params.Set("tl", targetLang)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/translate_a/single?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	var outer []json.RawMessage
	if err := json.Unmarshal(body, &outer); err != nil {
		return "", fmt.Errorf("decode payload: %w", err)
	}
	if len(outer) == 0 {
		return "", fmt.Errorf("empty payload")
	}

	var segments [][]any
	if err := json.Unmarshal(outer[0], &segments); err != nil {
		return "", fmt.Errorf("decode segments: %w", err)
	}

	var b strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		if part, ok := seg[0].(string); ok {
			b.WriteString(part)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no translation in payload")
	}
	return b.String(), nil
}
