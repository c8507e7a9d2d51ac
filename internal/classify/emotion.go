package classify

import (
	"strings"

	"github.com/spacesedan/brandpulse/internal/lexicon"
	"github.com/spacesedan/brandpulse/internal/models"
)

// EmotionClassifier picks the best-supported emotion for a text by counting
// cue-word hits per category. Ties go to the category declared earlier in
// the cue table, so results are reproducible.
type EmotionClassifier struct {
	cues []lexicon.EmotionCues
}

func NewEmotionClassifier(cues []lexicon.EmotionCues) *EmotionClassifier {
	return &EmotionClassifier{cues: cues}
}

// Classify returns the winning emotion and the cue words that supported it.
// Texts matching no cue at all are Neutral with no evidence.
func (c *EmotionClassifier) Classify(text string) (string, []string) {
	if strings.TrimSpace(text) == "" {
		return models.EmotionNeutral, nil
	}

	lower := strings.ToLower(text)

	best := models.EmotionNeutral
	bestCount := 0
	var bestKeywords []string

	for _, cue := range c.cues {
		var found []string
		for _, kw := range cue.Keywords {
			if strings.Contains(lower, kw) {
				found = append(found, kw)
			}
		}
		// Strict > keeps declaration order as the tie-break.
		if len(found) > bestCount {
			best = cue.Emotion
			bestCount = len(found)
			bestKeywords = found
		}
	}

	return best, bestKeywords
}
