package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/claimscope/claimscope/internal/model"
)

// OpenAIProvider scores text with a chat-completion model constrained
// to emit a binary verdict. A fallback when no fine-tuned inference
// sidecar is deployed.
type OpenAIProvider struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

const openAISystemPrompt = `You are a misinformation classifier. ` +
	`Given a news claim, respond with ONLY a JSON object of the form ` +
	`{"label":"Fake"|"True","score":<confidence in [0,1]>}. No prose.`

// NewOpenAIProvider creates an OpenAI-backed classifier.
func NewOpenAIProvider(cfg model.ClassifierConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = openai.GPT4oMini
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &OpenAIProvider{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   modelName,
		timeout: timeout,
	}, nil
}

// Name implements Provider.
func (p *OpenAIProvider) Name() string { return "openai" }

// Classify implements Provider.
func (p *OpenAIProvider) Classify(ctx context.Context, text string) (model.Prediction, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: openAISystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		MaxTokens:   32,
		Temperature: 0, // Deterministic verdicts
	})
	if err != nil {
		return model.Prediction{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return model.Prediction{}, fmt.Errorf("%w: empty completion", ErrUnavailable)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.Trim(content, "` \n")

	var out struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return model.Prediction{}, fmt.Errorf("%w: malformed verdict %q", ErrUnavailable, content)
	}
	if out.Label != "Fake" && out.Label != "True" {
		return model.Prediction{}, fmt.Errorf("%w: unknown label %q", ErrUnavailable, out.Label)
	}

	return model.Prediction{Label: out.Label, Score: clampScore(out.Score)}, nil
}
