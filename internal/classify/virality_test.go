package classify

import (
	"math"
	"testing"

	"github.com/spacesedan/brandpulse/internal/models"
)

func TestViralityScoreFormula(t *testing.T) {
	tests := []struct {
		name     string
		item     models.TextItem
		mentions int
		want     float64
	}{
		{"no engagement", models.TextItem{}, 0, 0},
		{"likes only", models.TextItem{Likes: 10}, 0, 10},
		{"weighted counters", models.TextItem{Likes: 10, Shares: 2, Comments: 2}, 0, 17},
		{"brand boost", models.TextItem{Likes: 10}, 1, 12},
		{"boost not compounded", models.TextItem{Likes: 10}, 5, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ViralityScore(tt.item, tt.mentions)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ViralityScore = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestViralityBoostIsExactlyTwentyPercent(t *testing.T) {
	item := models.TextItem{Likes: 7, Shares: 3, Comments: 1}

	plain := ViralityScore(item, 0)
	boosted := ViralityScore(item, 1)

	if math.Abs(boosted-plain*1.2) > 1e-9 {
		t.Errorf("boosted = %f, want exactly 1.2 * %f", boosted, plain)
	}
}

func TestViralityMonotonicInEachCounter(t *testing.T) {
	base := models.TextItem{Likes: 5, Shares: 5, Comments: 5}
	baseScore := ViralityScore(base, 0)

	bumps := []struct {
		name string
		item models.TextItem
	}{
		{"likes", models.TextItem{Likes: 6, Shares: 5, Comments: 5}},
		{"shares", models.TextItem{Likes: 5, Shares: 6, Comments: 5}},
		{"comments", models.TextItem{Likes: 5, Shares: 5, Comments: 6}},
	}

	for _, tt := range bumps {
		if got := ViralityScore(tt.item, 0); got <= baseScore {
			t.Errorf("bumping %s: score %f not greater than %f", tt.name, got, baseScore)
		}
	}
}
