package classify

import (
	"fmt"
	"strings"

	"github.com/claimscope/claimscope/internal/model"
)

// NewProvider creates a classifier provider from configuration. An
// unconfigured or unknown provider is a construction-time error: the
// pipeline cannot run without a scorer, and the misconfiguration
// should surface once at startup rather than per request.
func NewProvider(cfg model.ClassifierConfig) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "remote":
		return NewRemoteProvider(cfg)

	case "openai":
		return NewOpenAIProvider(cfg)

	case "":
		return nil, fmt.Errorf("no classifier provider configured (supported: remote, openai)")

	default:
		return nil, fmt.Errorf("unknown classifier provider: %s (supported: remote, openai)", cfg.Provider)
	}
}
