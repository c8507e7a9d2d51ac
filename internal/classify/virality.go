package classify

import "github.com/spacesedan/brandpulse/internal/models"

// Engagement weights for the virality score. Shares travel further than
// likes; comments sit in between.
const (
	shareWeight   = 2.0
	commentWeight = 1.5

	// Applied once when the brand of interest is mentioned at all; not
	// compounded per mention.
	brandBoost = 1.2
)

// ViralityScore combines the engagement counters into a single reach
// metric. Missing counters are zero, so the score is always >= 0 for
// well-formed input.
func ViralityScore(item models.TextItem, brandMentions int) float64 {
	score := item.Likes + shareWeight*item.Shares + commentWeight*item.Comments
	if brandMentions > 0 {
		score *= brandBoost
	}
	return score
}
