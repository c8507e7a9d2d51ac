package models

// Report is the full nested insight structure produced from one analyzed
// batch. Every section is always populated; empty batches yield "no data"
// summaries instead of nil sections.
type Report struct {
	Overview   OverviewInsight   `json:"overview"`
	Sentiment  SentimentInsight  `json:"sentiment"`
	Emotion    EmotionInsight    `json:"emotion"`
	Category   CategoryInsight   `json:"category"`
	Topics     TopicInsight      `json:"topics"`
	Actions    ActionInsight     `json:"actions"`
	Comparison ComparisonInsight `json:"comparison"`
}

type OverviewInsight struct {
	Summary    string  `json:"summary"`
	Context    string  `json:"context"`
	TotalPosts int     `json:"total_posts"`
	BrandPosts int     `json:"brand_posts"`
	BrandShare float64 `json:"brand_share"`
}

type SentimentInsight struct {
	Summary        string              `json:"summary"`
	Distribution   map[string]float64  `json:"distribution"`
	Examples       map[string][]string `json:"examples"`
	Themes         map[string]string   `json:"themes"`
	Recommendation string              `json:"recommendation"`
}

type EmotionInsight struct {
	Summary         string              `json:"summary"`
	Distribution    map[string]int      `json:"distribution"`
	DominantEmotion string              `json:"dominant_emotion"`
	Examples        map[string][]string `json:"examples"`
	Themes          map[string]string   `json:"themes"`
	Recommendation  string              `json:"recommendation"`
}

type CategoryInsight struct {
	Summary         string         `json:"summary"`
	Distribution    map[string]int `json:"distribution"`
	UrgentAttention string         `json:"urgent_attention"`
	Opportunities   string         `json:"opportunities"`
}

type TopicInsight struct {
	Summary        string         `json:"summary"`
	AllTopics      map[string]int `json:"all_topics"`
	Trending       string         `json:"trending"`
	Recommendation string         `json:"recommendation"`
}

type ActionInsight struct {
	Summary   string         `json:"summary"`
	Immediate PriorityBucket `json:"immediate"`
	QuickWins PriorityBucket `json:"quick_wins"`
}

type PriorityBucket struct {
	Count       int      `json:"count"`
	Description string   `json:"description"`
	Action      string   `json:"action"`
	Examples    []string `json:"examples,omitempty"`
}

type ComparisonInsight struct {
	Summary        string                    `json:"summary"`
	Standing       string                    `json:"standing"`
	Entities       map[string]EntityStanding `json:"entities,omitempty"`
	Recommendation string                    `json:"recommendation"`
}

// EntityStanding is one entity's slice of the comparative analysis.
type EntityStanding struct {
	Posts        int     `json:"posts"`
	PositiveRate float64 `json:"positive_rate"`
}
