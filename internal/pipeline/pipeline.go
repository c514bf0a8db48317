// Package pipeline orchestrates one claim check end to end:
// normalization, concurrent scoring and evidence aggregation,
// authority filtering, verdict synthesis, and best-effort persistence.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/claimscope/claimscope/internal/cache"
	"github.com/claimscope/claimscope/internal/classify"
	"github.com/claimscope/claimscope/internal/language"
	"github.com/claimscope/claimscope/internal/model"
	"github.com/claimscope/claimscope/internal/region"
	"github.com/claimscope/claimscope/internal/sources"
	"github.com/claimscope/claimscope/internal/store"
	"github.com/claimscope/claimscope/internal/validate"
	"github.com/claimscope/claimscope/internal/verdict"
	"github.com/claimscope/claimscope/internal/worker"
)

// ErrEmptyClaim rejects requests with no claim text before any
// downstream call is made.
var ErrEmptyClaim = errors.New("empty claim text")

// Aggregator is the evidence-aggregation dependency.
type Aggregator interface {
	Aggregate(ctx context.Context, query, lang string) []model.EvidenceItem
}

// Pipeline wires the collaborators for the serving flow. The
// classifier is injected at construction: a missing scorer is a
// startup configuration error, not a per-request check.
type Pipeline struct {
	detector   *language.Detector
	translator language.Translator
	regions    *region.Detector
	classifier classify.Provider
	aggregator Aggregator
	authority  *validate.AuthorityClassifier
	synth      *verdict.Synthesizer
	store      store.Store
	log        zerolog.Logger
}

// New builds the full production pipeline from configuration: the four
// source connectors behind a shared rate limiter, the cached fail-open
// translator, and the store-backed fake-claim accumulator.
func New(cfg *model.Config, classifier classify.Provider, st store.Store, log zerolog.Logger) *Pipeline {
	limiter := worker.NewLimiter(cfg.Sources.RatePerSecond, cfg.Sources.RateBurst)
	agg := sources.NewAggregator(log,
		sources.NewNewsAPI(cfg.Sources, limiter, log),
		sources.NewFactCheck(cfg.Sources, limiter, log),
		sources.NewWebSearch(cfg.Sources, limiter, log),
		sources.NewWikipedia(cfg.Sources, limiter, log),
	)

	var translator language.Translator
	if cfg.Translator.Enabled {
		c := cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
		translator = language.NewCachedTranslator(language.NewGoogleTranslator(cfg.Translator), c, cfg.Cache.TTL)
	}

	return &Pipeline{
		detector:   language.NewDetector(),
		translator: translator,
		regions:    region.NewDetector(),
		classifier: classifier,
		aggregator: agg,
		authority:  validate.NewAuthorityClassifier(cfg.Authority),
		synth:      verdict.NewSynthesizer(st, log),
		store:      st,
		log:        log,
	}
}

// NewWithParts builds a pipeline from explicit collaborators, for
// tests and embedding.
func NewWithParts(classifier classify.Provider, agg Aggregator, authority *validate.AuthorityClassifier,
	synth *verdict.Synthesizer, st store.Store, translator language.Translator, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		detector:   language.NewDetector(),
		translator: translator,
		regions:    region.NewDetector(),
		classifier: classifier,
		aggregator: agg,
		authority:  authority,
		synth:      synth,
		store:      st,
		log:        log,
	}
}

// Regions exposes the gazetteer for the map endpoint.
func (p *Pipeline) Regions() []string {
	return p.regions.Regions()
}

// Check runs the full verification flow for one claim. The scoring
// call and the evidence aggregation are independent once the text is
// normalized, so they run concurrently. A dead scorer fails the
// request; zero evidence does not, it just drives the refuted branch.
func (p *Pipeline) Check(ctx context.Context, text, location string) (*model.CheckResult, error) {
	start := time.Now()

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyClaim
	}

	lang := p.detector.Detect(text)
	englishText := text
	if lang != "en" {
		englishText = language.TranslateOrOriginal(ctx, p.translator, text, lang, "en", p.log)
	}

	regionName := p.regions.Detect(englishText)
	if regionName == region.GeneralRegion && location != "" {
		regionName = p.regions.Detect(location)
	}

	var pred model.Prediction
	var items []model.EvidenceItem

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		scored, err := p.classifier.Classify(gctx, englishText)
		if err != nil {
			return fmt.Errorf("score claim: %w", err)
		}
		pred = scored
		return nil
	})
	g.Go(func() error {
		items = p.aggregator.Aggregate(gctx, englishText, lang)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	filtered := p.authority.Classify(items)
	v := p.synth.Synthesize(ctx, regionName, text, pred.Score, filtered)

	education := verdict.EducationTips()
	label, explanation := v.Label, v.Explanation
	if lang != "en" {
		label = language.TranslateOrOriginal(ctx, p.translator, label, "en", lang, p.log)
		explanation = language.TranslateOrOriginal(ctx, p.translator, explanation, "en", lang, p.log)
		for i := range filtered {
			if filtered[i].Snippet != "" {
				filtered[i].Snippet = language.TranslateOrOriginal(ctx, p.translator, filtered[i].Snippet, "en", lang, p.log)
			}
		}
		for i := range education {
			education[i] = language.TranslateOrOriginal(ctx, p.translator, education[i], "en", lang, p.log)
		}
	}

	if p.store != nil {
		rec := model.CheckRecord{
			Region:         regionName,
			OriginalText:   text,
			NormalizedText: englishText,
			Verdict:        v,
			CreatedAt:      time.Now().UTC(),
		}
		if err := p.store.UpsertCheck(ctx, rec); err != nil {
			// Best-effort history; the response is already decided
			p.log.Warn().Str("region", regionName).Err(err).Bool("recovered", true).Msg("check persistence failed")
		}
	}

	return &model.CheckResult{
		Input:       model.CheckInput{Original: text},
		Prediction:  model.CheckPrediction{Label: label, Confidence: round3(v.Confidence)},
		Sources:     filtered,
		State:       regionName,
		Explanation: explanation,
		Education:   education,
		Meta: model.CheckMeta{
			LatencySeconds:   round3(time.Since(start).Seconds()),
			LanguageDetected: lang,
		},
	}, nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
