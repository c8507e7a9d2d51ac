package clients

import "time"

const (
	MAX_RETRIES     = 3
	INITIAL_BACKOFF = 250 * time.Millisecond
	CACHE_TTL       = 86400 // adjudication cache expiry, seconds
)
