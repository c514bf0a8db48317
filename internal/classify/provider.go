// Package classify provides the text-classifier capability the
// pipeline scores claims with. The classifier is a black box behind
// the Provider interface; providers are selected at construction time,
// never probed per request.
package classify

import (
	"context"
	"errors"

	"github.com/claimscope/claimscope/internal/model"
)

// ErrUnavailable marks a scoring failure. The pipeline cannot produce
// a verdict without a model score, so this is fatal to the request.
var ErrUnavailable = errors.New("classifier unavailable")

// Provider scores English claim text. Classify must not be called with
// empty text.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Classify returns the class hint and confidence for the text.
	Classify(ctx context.Context, text string) (model.Prediction, error)
}
