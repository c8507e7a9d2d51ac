package models

// Sentiment labels produced by the hybrid engine.
const (
	SentimentPositive = "Positive"
	SentimentNegative = "Negative"
	SentimentNeutral  = "Neutral"
)

// Emotion labels, in tie-break priority order.
const (
	EmotionJoy         = "Joy"
	EmotionFrustration = "Frustration"
	EmotionConfusion   = "Confusion"
	EmotionAnxiety     = "Anxiety"
	EmotionNeutral     = "Neutral"
)

// Post categories produced by the rule cascade.
const (
	CategoryInquiry    = "Inquiry"
	CategoryComplaint  = "Complaint"
	CategoryPraise     = "Praise"
	CategorySuggestion = "Suggestion"
	CategoryOther      = "Other"
)

// Entity attribution sentinels.
const (
	EntityNone     = "none"
	EntityMultiple = "multiple"
)

// ClassificationResult holds every derived column for a single TextItem.
// Sentiment, emotion and category are always single-valued; ties are broken
// deterministically by the classifiers that produce them.
type ClassificationResult struct {
	PrimaryEntity   string   `json:"primary_entity"`
	AllEntities     []string `json:"all_entities,omitempty"`
	EntityMentions  int      `json:"entity_mentions"`
	Sentiment       string   `json:"sentiment"`
	SentimentScore  float64  `json:"sentiment_score"`
	Emotion         string   `json:"emotion"`
	EmotionKeywords []string `json:"emotion_keywords,omitempty"`
	Category        string   `json:"category"`
	CategoryReason  string   `json:"category_reason"`
	ViralScore      float64  `json:"viral_score"`
}

// AnalyzedItem is the augmented row handed to the insight layer: the
// original item plus everything the pipeline derived from it.
type AnalyzedItem struct {
	TextItem
	ClassificationResult
}
