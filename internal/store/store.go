// Package store persists check history and the per-region fake-claims
// accumulator. Persistence is best-effort from the pipeline's point of
// view: store failures never change a response.
package store

import (
	"context"

	"github.com/claimscope/claimscope/internal/model"
)

// Store is the history and accumulator backend.
type Store interface {
	// UpsertCheck records a completed check. Idempotent on
	// (original text, region): resubmitting the same claim for the
	// same region is a no-op.
	UpsertCheck(ctx context.Context, rec model.CheckRecord) error

	// AppendFakeClaim adds a refuted claim text to a region's list.
	AppendFakeClaim(ctx context.Context, region, text string) error

	// FakeClaims returns the accumulated fake-claim texts for a region.
	FakeClaims(ctx context.Context, region string) ([]string, error)

	// FakeCounts returns the fake-claim count per region.
	FakeCounts(ctx context.Context) (map[string]int, error)

	// Close releases the backend.
	Close() error
}
