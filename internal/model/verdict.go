package model

import "time"

// Prediction is the raw output of the text classifier collaborator:
// a binary class hint plus a confidence score in [0,1]. Opaque to the
// pipeline beyond that numeric contract.
type Prediction struct {
	Label string  `json:"label"` // "Fake" or "True"
	Score float64 `json:"score"`
}

// Final verdict labels. The synthesizer emits exactly one of these.
const (
	LabelConfirmed = "True / Confirmed"
	LabelRefuted   = "False / Refuted"
)

// Fixed explanations attached to each verdict branch.
const (
	ExplanationConfirmed = "Authoritative sources confirm this claim."
	ExplanationRefuted   = "No authoritative evidence found. The claim is likely false."
)

// Verdict is the synthesized outcome for one claim. Computed once per
// query and never mutated afterwards.
type Verdict struct {
	Label       string  `json:"label"`
	Confidence  float64 `json:"confidence"` // Clamped to [0,1]
	Explanation string  `json:"explanation"`
}

// CheckRecord is the persisted history entry for one verified claim.
// The store treats (OriginalText, Region) as the natural key: duplicate
// submissions are idempotent no-ops.
type CheckRecord struct {
	Region         string    `json:"region"`
	OriginalText   string    `json:"original_text"`
	NormalizedText string    `json:"normalized_text"`
	Verdict        Verdict   `json:"verdict"`
	CreatedAt      time.Time `json:"created_at"`
}

// CheckResult is the full response payload for one claim check.
type CheckResult struct {
	Input       CheckInput       `json:"input"`
	Prediction  CheckPrediction  `json:"prediction"`
	Sources     []EvidenceItem   `json:"sources"`
	State       string           `json:"state"`
	Explanation string           `json:"explanation"`
	Education   []string         `json:"education"`
	Meta        CheckMeta        `json:"meta"`
}

// CheckInput echoes the submitted claim back to the caller.
type CheckInput struct {
	Original string `json:"original"`
}

// CheckPrediction is the user-facing label/confidence pair.
type CheckPrediction struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// CheckMeta carries request diagnostics.
type CheckMeta struct {
	LatencySeconds   float64 `json:"latency_seconds"`
	LanguageDetected string  `json:"language_detected"`
}

// RegionStats summarizes accumulated fake claims for one region.
type RegionStats struct {
	Fake   int    `json:"fake"`
	Total  int    `json:"total"`
	Status string `json:"status"`
}

// FakeStatus maps an accumulated fake-claim count to a severity band.
func FakeStatus(count int) string {
	switch {
	case count > 10:
		return "high"
	case count > 5:
		return "moderate"
	default:
		return "low"
	}
}

// NewRegionStats builds the stats row for a count.
func NewRegionStats(count int) RegionStats {
	return RegionStats{Fake: count, Total: count, Status: FakeStatus(count)}
}
