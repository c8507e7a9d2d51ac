package sentiment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/openai/openai-go"

	"github.com/spacesedan/brandpulse/internal/clients"
	"github.com/spacesedan/brandpulse/internal/models"
)

// ErrAdjudicationUnavailable is returned by backends that cannot produce a
// verdict; the engine treats it as a silent fall-through to the baseline.
var ErrAdjudicationUnavailable = errors.New("adjudication backend not available")

// Adjudicator is the optional contextual second opinion on a text's
// sentiment. Implementations must be safe for concurrent use.
type Adjudicator interface {
	Adjudicate(ctx context.Context, text string) (models.AdjudicationResult, error)
}

// NoAdjudicator is the backend used when no contextual judgment is
// configured: it always reports unavailability so the lexicon baseline
// stands unconditionally.
type NoAdjudicator struct{}

func (NoAdjudicator) Adjudicate(_ context.Context, _ string) (models.AdjudicationResult, error) {
	return models.AdjudicationResult{}, ErrAdjudicationUnavailable
}

const adjudicationPrompt = `Analyze the sentiment of the following customer comment about a bank.
The context is critical. A statement like "my balance is zero" is highly negative.
Classify the sentiment as one of: 'Positive', 'Negative', or 'Neutral'.
Also provide a polarity score from -1.0 (most negative) to 1.0 (most positive).
Return your answer ONLY as a valid JSON object with keys "sentiment" and "polarity".
No Markdown formatting, no extra text before or after the JSON.`

const (
	adjudicationTimeout = 20 * time.Second
	adjudicationModel   = openai.ChatModelGPT3_5Turbo

	// Consecutive failures before the backend reports itself unhealthy.
	unhealthyFailureStreak = 3
)

// RemoteAdjudicator asks OpenAI for a context-aware verdict. Every call is
// bounded by its own timeout and any failure surfaces as an error for the
// engine to absorb.
type RemoteAdjudicator struct {
	client *clients.AIClient

	failureStreak atomic.Int32
}

func NewRemoteAdjudicator() *RemoteAdjudicator {
	return &RemoteAdjudicator{
		client: clients.GetAIClient(),
	}
}

func (r *RemoteAdjudicator) Adjudicate(ctx context.Context, text string) (models.AdjudicationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, adjudicationTimeout)
	defer cancel()

	completion, err := r.client.Client.Chat.Completions.New(ctx,
		openai.ChatCompletionNewParams{
			Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
				openai.SystemMessage(adjudicationPrompt),
				openai.UserMessage(text),
			}),
			Model:       openai.F(adjudicationModel),
			Temperature: openai.Float(0.0),
		})
	if err != nil {
		r.failureStreak.Add(1)
		return models.AdjudicationResult{}, fmt.Errorf("adjudication request failed: %w", err)
	}

	if len(completion.Choices) == 0 || strings.TrimSpace(completion.Choices[0].Message.Content) == "" {
		r.failureStreak.Add(1)
		return models.AdjudicationResult{}, errors.New("adjudication returned an empty response")
	}

	result, err := parseAdjudicationResponse(completion.Choices[0].Message.Content)
	if err != nil {
		r.failureStreak.Add(1)
		return models.AdjudicationResult{}, err
	}

	r.failureStreak.Store(0)
	return result, nil
}

// Healthy reports whether the backend has produced a verdict recently
// enough to keep escalating to it.
func (r *RemoteAdjudicator) Healthy() bool {
	return r.failureStreak.Load() < unhealthyFailureStreak
}

// parseAdjudicationResponse strips markdown fences the model sometimes adds
// despite instructions, then validates the strict JSON contract.
func parseAdjudicationResponse(response string) (models.AdjudicationResult, error) {
	cleaned := strings.TrimSpace(response)

	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "\n")
		cleaned = strings.TrimSuffix(cleaned, "```")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimPrefix(cleaned, "\n")
		cleaned = strings.TrimSuffix(cleaned, "```")
	}
	cleaned = strings.TrimSpace(cleaned)

	if !strings.HasPrefix(cleaned, "{") || !strings.HasSuffix(cleaned, "}") {
		slog.Warn("[Adjudicator] Response does not look like a JSON object after cleaning",
			slog.String("response", snippet(response)))
		return models.AdjudicationResult{}, errors.New("adjudication response is not a JSON object")
	}

	var result models.AdjudicationResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return models.AdjudicationResult{}, fmt.Errorf("adjudication response is not valid JSON: %w", err)
	}

	switch result.Label {
	case models.SentimentPositive, models.SentimentNegative, models.SentimentNeutral:
	default:
		return models.AdjudicationResult{}, fmt.Errorf("adjudication returned unknown label %q", result.Label)
	}

	if result.Polarity > 1.0 {
		result.Polarity = 1.0
	} else if result.Polarity < -1.0 {
		result.Polarity = -1.0
	}

	return result, nil
}

func snippet(s string) string {
	const snippetLen = 100
	if len(s) > snippetLen {
		return s[:snippetLen] + "..."
	}
	return s
}
