package sentiment

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	"github.com/spacesedan/brandpulse/internal/clients"
	"github.com/spacesedan/brandpulse/internal/models"
)

// CachedAdjudicator wraps another backend with a Valkey read-through cache
// keyed by text digest. Cache failures are non-fatal: a miss or an error
// simply forwards to the wrapped backend.
type CachedAdjudicator struct {
	cache *clients.ValkeyClient
	next  Adjudicator
}

// WithCache wraps next with the given cache. A nil cache returns next
// unchanged.
func WithCache(cache *clients.ValkeyClient, next Adjudicator) Adjudicator {
	if cache == nil {
		return next
	}
	return &CachedAdjudicator{cache: cache, next: next}
}

func (c *CachedAdjudicator) Adjudicate(ctx context.Context, text string) (models.AdjudicationResult, error) {
	digest := textDigest(text)

	if result, ok := c.cache.GetAdjudication(ctx, digest); ok {
		return result, nil
	}

	result, err := c.next.Adjudicate(ctx, text)
	if err != nil {
		return result, err
	}

	if err := c.cache.StoreAdjudication(ctx, digest, result); err != nil {
		slog.Warn("[Adjudicator] Failed to cache adjudication result",
			slog.String("error", err.Error()))
	}

	return result, nil
}

func textDigest(text string) string {
	hash := sha256.Sum256([]byte(text))
	return hex.EncodeToString(hash[:])
}
