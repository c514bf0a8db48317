// Package verdict combines the model score with authority-filtered
// evidence into the final label and confidence.
package verdict

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/claimscope/claimscope/internal/model"
)

// FakeClaimSink receives claim texts the synthesizer refuted, keyed by
// region. Deduplication, if any, belongs to the sink.
type FakeClaimSink interface {
	AppendFakeClaim(ctx context.Context, region, text string) error
}

// Synthesizer applies the verdict-combination policy: any confirming
// authoritative evidence dominates the bare classifier score, while
// absence of confirming evidence is default-deny. Precision over
// recall: an unconfirmed claim is flagged false rather than true.
type Synthesizer struct {
	sink FakeClaimSink
	log  zerolog.Logger
}

// NewSynthesizer creates a synthesizer. The sink may be nil, in which
// case refuted claims are not accumulated.
func NewSynthesizer(sink FakeClaimSink, log zerolog.Logger) *Synthesizer {
	return &Synthesizer{sink: sink, log: log}
}

// confirmBoost is added to the model score when authoritative
// confirming evidence exists.
const confirmBoost = 0.3

// Synthesize produces the verdict for one claim. originalText is the
// as-submitted claim (not the normalized translation); on the refuted
// branch it is appended to the region's fake-claims accumulator.
//
// Myth-flagged items do not move the confidence beyond the score
// inversion. Only the confirmed/empty partition feeds the formula.
func (s *Synthesizer) Synthesize(ctx context.Context, region, originalText string, score float64, filtered []model.EvidenceItem) model.Verdict {
	confirmed := 0
	for _, item := range filtered {
		if item.ContextFlag == model.ContextConfirmed {
			confirmed++
		}
	}

	if confirmed > 0 {
		return model.Verdict{
			Label:       model.LabelConfirmed,
			Confidence:  clamp(score + confirmBoost),
			Explanation: model.ExplanationConfirmed,
		}
	}

	v := model.Verdict{
		Label:       model.LabelRefuted,
		Confidence:  clamp(1 - score),
		Explanation: model.ExplanationRefuted,
	}

	if s.sink != nil {
		if err := s.sink.AppendFakeClaim(ctx, region, originalText); err != nil {
			// Best-effort accumulation; the verdict stands regardless
			s.log.Warn().Str("region", region).Err(err).Bool("recovered", true).Msg("fake claim append failed")
		}
	}

	return v
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// EducationTips is the fixed media-literacy list attached to every
// check response.
func EducationTips() []string {
	return []string{
		"Cross-check news across multiple trusted sources.",
		"Verify the date & context of the claim.",
		"Be careful of emotionally charged clickbait.",
		"Use fact-checking portals like AltNews or PolitiFact.",
	}
}
