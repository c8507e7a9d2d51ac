// Package sentiment implements the two-tier hybrid sentiment engine: a
// deterministic VADER lexicon baseline that always runs, plus an optional
// contextual adjudication stage that may override it on ambiguous or
// distress-flagged texts.
package sentiment

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/jonreiter/govader"

	"github.com/spacesedan/brandpulse/internal/models"
)

// Compound-score thresholds mapping the VADER baseline onto labels.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// Engine classifies sentiment. Safe for concurrent use; the adjudicator is
// a shared read-only handle.
type Engine struct {
	analyzer    *govader.SentimentIntensityAnalyzer
	adjudicator Adjudicator
	hasBackend  bool
	triggers    []string
	healthGate  *atomic.Bool
}

// NewEngine builds an engine with the given escalation triggers. Pass
// NoAdjudicator{} to run lexicon-only.
func NewEngine(adjudicator Adjudicator, triggers []string) *Engine {
	if adjudicator == nil {
		adjudicator = NoAdjudicator{}
	}
	_, none := adjudicator.(NoAdjudicator)
	return &Engine{
		analyzer:    govader.NewSentimentIntensityAnalyzer(),
		adjudicator: adjudicator,
		hasBackend:  !none,
		triggers:    triggers,
	}
}

// SetHealthGate installs an externally maintained health flag; while it
// reads false the escalation stage is skipped entirely.
func (e *Engine) SetHealthGate(gate *atomic.Bool) {
	e.healthGate = gate
}

// Analyze returns a sentiment label and a score in [-1, 1]. Empty or blank
// text yields (Neutral, 0.0) without evaluating any trigger. Adjudication
// failure is silent: the baseline result is retained for that text only.
func (e *Engine) Analyze(ctx context.Context, text string) (string, float64) {
	if strings.TrimSpace(text) == "" {
		return models.SentimentNeutral, 0.0
	}

	label, score := e.Baseline(text)

	if !e.Escalates(text, label) {
		return label, score
	}

	if adjLabel, adjScore, ok := e.TryAdjudicate(ctx, text); ok {
		return adjLabel, adjScore
	}
	return label, score
}

// TryAdjudicate asks the configured backend for an overriding verdict. The
// third return reports whether the override should be applied; every
// failure mode leaves the caller on its baseline.
func (e *Engine) TryAdjudicate(ctx context.Context, text string) (string, float64, bool) {
	if !e.hasBackend {
		return "", 0, false
	}
	if e.healthGate != nil && !e.healthGate.Load() {
		return "", 0, false
	}

	result, err := e.adjudicator.Adjudicate(ctx, text)
	if err != nil {
		if !errors.Is(err, ErrAdjudicationUnavailable) {
			slog.Warn("[SentimentEngine] Adjudication failed, keeping baseline",
				slog.String("error", err.Error()))
		}
		return "", 0, false
	}

	return result.Label, result.Polarity, true
}

// Baseline runs the VADER lexicon pass over the normalized text.
func (e *Engine) Baseline(text string) (string, float64) {
	plain := NormalizeText(text)
	compound := e.analyzer.PolarityScores(plain).Compound

	switch {
	case compound >= positiveThreshold:
		return models.SentimentPositive, compound
	case compound <= negativeThreshold:
		return models.SentimentNegative, compound
	default:
		return models.SentimentNeutral, compound
	}
}

// Escalates fires on any complaint-indicator keyword, or whenever the
// baseline could not commit to a polarity.
func (e *Engine) Escalates(text, baselineLabel string) bool {
	if baselineLabel == models.SentimentNeutral {
		return true
	}

	lower := strings.ToLower(text)
	for _, trigger := range e.triggers {
		if strings.Contains(lower, trigger) {
			return true
		}
	}
	return false
}
