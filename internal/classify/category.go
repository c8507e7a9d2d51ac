package classify

import (
	"strings"

	"github.com/spacesedan/brandpulse/internal/lexicon"
	"github.com/spacesedan/brandpulse/internal/models"
)

// Machine-readable reasons attached to every category decision.
const (
	reasonNoText     = "No text content"
	reasonInquiry    = "Contains questions or information seeking"
	reasonComplaint  = "Contains complaint or problem description"
	reasonPraise     = "Contains positive feedback or appreciation"
	reasonSuggestion = "Contains suggestions or feature requests"
	reasonOther      = "General discussion or observation"
)

// CategoryClassifier assigns exactly one category per text via an ordered
// first-match cascade: Inquiry, Complaint, Praise, Suggestion, Other. The
// ordering is part of the contract; reordering changes results.
type CategoryClassifier struct {
	inquiryPhrases     []string
	complaintKeywords  []string
	praiseKeywords     []string
	suggestionKeywords []string
}

func NewCategoryClassifier() *CategoryClassifier {
	return &CategoryClassifier{
		inquiryPhrases:     lexicon.InquiryPhrases,
		complaintKeywords:  lexicon.ComplaintKeywords,
		praiseKeywords:     lexicon.PraiseKeywords,
		suggestionKeywords: lexicon.SuggestionKeywords,
	}
}

// Classify returns the category and the reason the matching branch fired.
func (c *CategoryClassifier) Classify(text string) (string, string) {
	if strings.TrimSpace(text) == "" {
		return models.CategoryOther, reasonNoText
	}

	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "?") || containsAny(lower, c.inquiryPhrases):
		return models.CategoryInquiry, reasonInquiry
	case containsAny(lower, c.complaintKeywords):
		return models.CategoryComplaint, reasonComplaint
	case containsAny(lower, c.praiseKeywords):
		return models.CategoryPraise, reasonPraise
	case containsAny(lower, c.suggestionKeywords):
		return models.CategorySuggestion, reasonSuggestion
	default:
		return models.CategoryOther, reasonOther
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
