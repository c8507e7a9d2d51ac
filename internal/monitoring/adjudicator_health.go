package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

const HEALTHCHECK_TIMER = 15

// HealthChecker is anything that can report whether it is currently worth
// sending work to.
type HealthChecker interface {
	Healthy() bool
}

// MonitorAdjudicatorHealth keeps the shared health flag in sync with the
// adjudication backend. While the flag reads false the sentiment engine
// stops escalating and every text stays on its lexicon baseline.
func MonitorAdjudicatorHealth(ctx context.Context, healthy *atomic.Bool, checker HealthChecker) {
	ticker := time.NewTicker(time.Second * HEALTHCHECK_TIMER)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			isHealthy := checker.Healthy()
			wasHealthy := healthy.Swap(isHealthy)
			if !isHealthy && wasHealthy {
				slog.Warn("[HealthCheck] Adjudicator is unhealthy, falling back to lexicon baseline")
			}
			if isHealthy && !wasHealthy {
				slog.Info("[HealthCheck] Adjudicator recovered")
			}
		}
	}
}
