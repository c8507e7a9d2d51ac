package classify

import (
	"testing"

	"github.com/spacesedan/brandpulse/internal/lexicon"
	"github.com/spacesedan/brandpulse/internal/models"
)

func TestEmotionClassify(t *testing.T) {
	classifier := NewEmotionClassifier(lexicon.DefaultEmotionCues)

	tests := []struct {
		name         string
		text         string
		wantEmotion  string
		wantKeywords []string
	}{
		{
			name:         "joy",
			text:         "excellent service, thank you so much",
			wantEmotion:  models.EmotionJoy,
			wantKeywords: []string{"excellent", "thank you"},
		},
		{
			name:         "frustration",
			text:         "terrible app, I hate this so much",
			wantEmotion:  models.EmotionFrustration,
			wantKeywords: []string{"terrible", "hate"},
		},
		{
			name:        "anxiety",
			text:        "worried and nervous about my deposit",
			wantEmotion: models.EmotionAnxiety,
		},
		{
			name:        "no cues",
			text:        "visited the branch on monday",
			wantEmotion: models.EmotionNeutral,
		},
		{
			name:        "empty text",
			text:        "",
			wantEmotion: models.EmotionNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emotion, keywords := classifier.Classify(tt.text)
			if emotion != tt.wantEmotion {
				t.Errorf("emotion = %q, want %q", emotion, tt.wantEmotion)
			}
			if emotion == models.EmotionNeutral && keywords != nil {
				t.Errorf("keywords = %v, want nil evidence for Neutral", keywords)
			}
			if tt.wantKeywords != nil {
				if len(keywords) != len(tt.wantKeywords) {
					t.Fatalf("keywords = %v, want %v", keywords, tt.wantKeywords)
				}
				for i := range keywords {
					if keywords[i] != tt.wantKeywords[i] {
						t.Errorf("keywords[%d] = %q, want %q", i, keywords[i], tt.wantKeywords[i])
					}
				}
			}
		})
	}
}

// A text matching exactly one cue from each of two categories must always
// resolve to the category declared earlier.
func TestEmotionTieBreaksByDeclarationOrder(t *testing.T) {
	classifier := NewEmotionClassifier(lexicon.DefaultEmotionCues)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"joy beats frustration", "happy yet angry", models.EmotionJoy},
		{"frustration beats anxiety", "annoyed and scared", models.EmotionFrustration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 10; i++ {
				emotion, _ := classifier.Classify(tt.text)
				if emotion != tt.want {
					t.Fatalf("run %d: emotion = %q, want %q", i, emotion, tt.want)
				}
			}
		})
	}
}
