package lexicon

import "github.com/spacesedan/brandpulse/internal/models"

// DefaultBrand is the brand of interest in the stock tables.
const DefaultBrand = "prime_bank"

// DefaultEntityPatterns covers the brand of interest and its tracked
// competitors. Order is the declaration order reported by IdentifyEntity.
var DefaultEntityPatterns = []EntityPatterns{
	{Key: "prime_bank", Patterns: []string{`prime\s*bank`, `primebank`, `@primebank`, `prime\s*b\.?`}},
	{Key: "eastern_bank", Patterns: []string{`eastern\s*bank`, `ebl`, `@easternbank`}},
	{Key: "brac_bank", Patterns: []string{`brac\s*bank`, `@bracbank`}},
	{Key: "city_bank", Patterns: []string{`city\s*bank`, `@citybank`}},
	{Key: "dutch_bangla", Patterns: []string{`dutch\s*bangla`, `dbbl`, `@dutchbangla`}},
}

// ComplaintTriggers escalate a text to the adjudication stage: their literal
// presence suggests distress that plain cue-word scoring can miss.
var ComplaintTriggers = []string{
	"complaint", "problem", "issue", "error", "failed",
	"not working", "terrible", "worst", "pathetic", "disappointed",
}

// EmotionCues is one keyword set per emotion. Slice order is the tie-break
// priority: when two emotions score equally, the earlier one wins.
type EmotionCues struct {
	Emotion  string
	Keywords []string
}

var DefaultEmotionCues = []EmotionCues{
	{Emotion: models.EmotionJoy, Keywords: []string{
		"happy", "excellent", "amazing", "great", "wonderful",
		"fantastic", "love", "best", "thank you", "appreciate",
	}},
	{Emotion: models.EmotionFrustration, Keywords: []string{
		"frustrated", "angry", "terrible", "horrible", "worst",
		"hate", "annoyed", "disappointed", "pathetic",
	}},
	{Emotion: models.EmotionConfusion, Keywords: []string{
		"confused", "unclear", "don't understand", "what", "how",
		"why", "?", "help me", "lost",
	}},
	{Emotion: models.EmotionAnxiety, Keywords: []string{
		"worried", "concern", "anxious", "nervous", "scared",
		"fear", "panic", "urgent",
	}},
}

// Category cue tables for the first-match rule cascade.
var (
	InquiryPhrases = []string{
		"how do", "what is", "when", "where", "can i", "could you", "explain",
	}
	ComplaintKeywords = []string{
		"complaint", "problem", "issue", "error", "failed", "not working", "terrible", "worst",
	}
	PraiseKeywords = []string{
		"thank", "great", "excellent", "love", "best", "appreciate", "amazing",
	}
	SuggestionKeywords = []string{
		"suggest", "should", "could", "recommend", "request", "please add",
	}
)

// TopicCues maps a human-readable topic to its keyword set. Declaration
// order breaks ties between equally discussed topics.
type TopicCues struct {
	Topic    string
	Keywords []string
}

var DefaultTopicCues = []TopicCues{
	{Topic: "Digital Banking", Keywords: []string{"app", "online", "mobile", "website", "internet banking", "crashing"}},
	{Topic: "Customer Service", Keywords: []string{"staff", "service", "help", "support", "employee", "behavior"}},
	{Topic: "Fees & Charges", Keywords: []string{"fee", "charge", "cost", "expensive", "hidden"}},
	{Topic: "Loans & Credit", Keywords: []string{"loan", "credit", "mortgage", "interest", "emi", "card"}},
	{Topic: "Branch & ATM", Keywords: []string{"atm", "branch", "location", "machine", "cash", "queue", "wait"}},
}

// ThemeStopWords are filtered out of theme extraction on top of the standard
// English stop-word list: brand tokens and generic filler that would
// otherwise dominate every theme.
var ThemeStopWords = []string{
	"prime", "bank", "banks", "banking", "post", "posts",
	"this", "that", "with", "have", "just", "really", "very",
}

// EmotionRecommendations is the static advice table keyed by the dominant
// emotion of a batch.
var EmotionRecommendations = map[string]string{
	models.EmotionJoy:         "Leverage positive emotions by encouraging happy customers to share testimonials.",
	models.EmotionFrustration: "Implement a rapid response protocol for frustrated customers to prevent escalation.",
	models.EmotionConfusion:   "Create clearer communication materials and improve the FAQ/help section.",
	models.EmotionAnxiety:     "Provide reassurance through proactive communication about security and processes.",
	models.EmotionNeutral:     "Engage neutral customers with targeted campaigns to foster a positive connection.",
}

// SentimentRecommendations is keyed by the dominant sentiment of a batch.
var SentimentRecommendations = map[string]string{
	models.SentimentPositive: "Amplify what is working: highlight praised services in outbound campaigns.",
	models.SentimentNegative: "Prioritize service recovery on the most common negative themes before they spread.",
	models.SentimentNeutral:  "Convert informational interest into engagement with clear product guidance.",
}
