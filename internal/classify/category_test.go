package classify

import (
	"testing"

	"github.com/spacesedan/brandpulse/internal/models"
)

func TestCategoryClassify(t *testing.T) {
	classifier := NewCategoryClassifier()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"question mark", "is the branch open today?", models.CategoryInquiry},
		{"interrogative phrase", "explain the fee structure please", models.CategoryInquiry},
		{"complaint", "the transfer failed again", models.CategoryComplaint},
		{"praise", "excellent support from the branch team", models.CategoryPraise},
		{"suggestion", "please add dark mode to the app", models.CategorySuggestion},
		{"fallback", "visited the branch today", models.CategoryOther},
		{"empty text", "", models.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, reason := classifier.Classify(tt.text)
			if category != tt.want {
				t.Errorf("category = %q, want %q", category, tt.want)
			}
			if reason == "" {
				t.Error("expected a non-empty reason")
			}
		})
	}
}

// Earlier branches must win even when later branches would also match.
func TestCategoryCascadeOrder(t *testing.T) {
	classifier := NewCategoryClassifier()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"inquiry beats complaint", "why is this terrible app not working?", models.CategoryInquiry},
		{"complaint beats praise", "great app but the login failed", models.CategoryComplaint},
		{"praise beats suggestion", "love it, you should be proud", models.CategoryPraise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, _ := classifier.Classify(tt.text)
			if category != tt.want {
				t.Errorf("category = %q, want %q", category, tt.want)
			}
		})
	}
}

// Every text receives exactly one category.
func TestCategoryCascadeIsTotal(t *testing.T) {
	classifier := NewCategoryClassifier()

	texts := []string{
		"", "hello", "???", "the quick brown fox",
		"complaint problem issue all at once",
		"éèê accents and 中文",
	}

	known := map[string]bool{
		models.CategoryInquiry:    true,
		models.CategoryComplaint:  true,
		models.CategoryPraise:     true,
		models.CategorySuggestion: true,
		models.CategoryOther:      true,
	}

	for _, text := range texts {
		category, _ := classifier.Classify(text)
		if !known[category] {
			t.Errorf("Classify(%q) = %q, not a known category", text, category)
		}
	}
}

func TestCategoryEmptyTextReason(t *testing.T) {
	classifier := NewCategoryClassifier()

	category, reason := classifier.Classify("   ")
	if category != models.CategoryOther {
		t.Errorf("category = %q, want Other", category)
	}
	if reason != reasonNoText {
		t.Errorf("reason = %q, want %q", reason, reasonNoText)
	}
}
