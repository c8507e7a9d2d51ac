// Package insights aggregates a classified batch into per-axis
// distributions, representative examples, extracted themes and canned
// recommendations. Every operation tolerates an empty batch by returning a
// well-formed "no data" section instead of an error.
package insights

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/spacesedan/brandpulse/internal/lexicon"
	"github.com/spacesedan/brandpulse/internal/models"
)

const (
	maxExamplesPerLabel = 3
	maxEmotionExamples  = 2
	quickWinLimit       = 5

	// Positive rates closer than this are reported as parity rather than
	// forced above/below.
	parityEpsilon = 1e-9
)

var sentimentOrder = []string{
	models.SentimentPositive,
	models.SentimentNegative,
	models.SentimentNeutral,
}

var emotionOrder = []string{
	models.EmotionJoy,
	models.EmotionFrustration,
	models.EmotionConfusion,
	models.EmotionAnxiety,
	models.EmotionNeutral,
}

var categoryOrder = []string{
	models.CategoryInquiry,
	models.CategoryComplaint,
	models.CategoryPraise,
	models.CategorySuggestion,
	models.CategoryOther,
}

// Generator builds insight reports. It reads batches without mutating them
// and carries no state between calls beyond its lexicon tables.
type Generator struct {
	lex        *lexicon.Lexicon
	topics     []lexicon.TopicCues
	themeStops []string
}

func NewGenerator(lex *lexicon.Lexicon) *Generator {
	return &Generator{
		lex:        lex,
		topics:     lexicon.DefaultTopicCues,
		themeStops: lexicon.ThemeStopWords,
	}
}

// Generate produces the full report. all is every classified row; brand is
// the subset mentioning the brand of interest. Both may be empty.
func (g *Generator) Generate(all, brand []models.AnalyzedItem) models.Report {
	return models.Report{
		Overview:   g.overview(all, brand),
		Sentiment:  g.sentimentInsight(brand),
		Emotion:    g.emotionInsight(brand),
		Category:   g.categoryInsight(brand),
		Topics:     g.topicInsight(brand),
		Actions:    g.actionInsight(brand),
		Comparison: g.comparisonInsight(all),
	}
}

func (g *Generator) overview(all, brand []models.AnalyzedItem) models.OverviewInsight {
	total := len(all)
	brandPosts := len(brand)

	share := 0.0
	if total > 0 {
		share = float64(brandPosts) / float64(total) * 100
	}

	return models.OverviewInsight{
		Summary: fmt.Sprintf("Analyzed %d total posts, of which %d (%.1f%%) specifically mention %s.",
			total, brandPosts, share, prettyEntity(g.lex.Brand())),
		Context: fmt.Sprintf("The remaining %d posts mention other banks or general banking topics.",
			total-brandPosts),
		TotalPosts: total,
		BrandPosts: brandPosts,
		BrandShare: share,
	}
}

func (g *Generator) sentimentInsight(items []models.AnalyzedItem) models.SentimentInsight {
	if len(items) == 0 {
		return models.SentimentInsight{
			Summary:      g.noData("sentiment analysis"),
			Distribution: map[string]float64{},
			Examples:     map[string][]string{},
			Themes:       map[string]string{},
		}
	}

	counts := make(map[string]int)
	texts := make(map[string][]string)
	for _, item := range items {
		counts[item.Sentiment]++
		texts[item.Sentiment] = append(texts[item.Sentiment], item.Text)
	}

	distribution := make(map[string]float64, len(counts))
	examples := make(map[string][]string, len(counts))
	themes := make(map[string]string, len(counts))
	for _, label := range sentimentOrder {
		if counts[label] == 0 {
			continue
		}
		distribution[label] = float64(counts[label]) / float64(len(items)) * 100
		examples[label] = firstN(texts[label], maxExamplesPerLabel)
		themes[label] = ExtractTheme(texts[label], g.themeStops)
	}

	dominant := dominantLabel(counts, sentimentOrder)

	return models.SentimentInsight{
		Summary: fmt.Sprintf("Sentiment Breakdown: %.1f%% Positive, %.1f%% Negative, %.1f%% Neutral.",
			distribution[models.SentimentPositive],
			distribution[models.SentimentNegative],
			distribution[models.SentimentNeutral]),
		Distribution:   distribution,
		Examples:       examples,
		Themes:         themes,
		Recommendation: lexicon.SentimentRecommendations[dominant],
	}
}

func (g *Generator) emotionInsight(items []models.AnalyzedItem) models.EmotionInsight {
	if len(items) == 0 {
		return models.EmotionInsight{
			Summary:      g.noData("emotion analysis"),
			Distribution: map[string]int{},
			Examples:     map[string][]string{},
			Themes:       map[string]string{},
		}
	}

	counts := make(map[string]int)
	texts := make(map[string][]string)
	for _, item := range items {
		counts[item.Emotion]++
		texts[item.Emotion] = append(texts[item.Emotion], item.Text)
	}

	dominant := dominantLabel(counts, emotionOrder)

	examples := make(map[string][]string)
	themes := make(map[string]string)
	for _, label := range emotionOrder {
		if label == models.EmotionNeutral || counts[label] == 0 {
			continue
		}
		examples[label] = firstN(texts[label], maxEmotionExamples)
		themes[label] = ExtractTheme(texts[label], g.themeStops)
	}

	return models.EmotionInsight{
		Summary: fmt.Sprintf("The dominant emotion expressed is '%s' with %d mentions.",
			dominant, counts[dominant]),
		Distribution:    counts,
		DominantEmotion: dominant,
		Examples:        examples,
		Themes:          themes,
		Recommendation:  lexicon.EmotionRecommendations[dominant],
	}
}

func (g *Generator) categoryInsight(items []models.AnalyzedItem) models.CategoryInsight {
	if len(items) == 0 {
		return models.CategoryInsight{
			Summary:      g.noData("category analysis"),
			Distribution: map[string]int{},
		}
	}

	counts := make(map[string]int)
	for _, item := range items {
		counts[item.Category]++
	}

	var parts []string
	for _, label := range labelsByCount(counts, categoryOrder) {
		parts = append(parts, fmt.Sprintf("%s (%d)", label, counts[label]))
	}

	return models.CategoryInsight{
		Summary:         "Post categories: " + strings.Join(parts, ", "),
		Distribution:    counts,
		UrgentAttention: fmt.Sprintf("%d complaints require attention.", counts[models.CategoryComplaint]),
		Opportunities:   fmt.Sprintf("%d suggestions offer improvement ideas.", counts[models.CategorySuggestion]),
	}
}

func (g *Generator) topicInsight(items []models.AnalyzedItem) models.TopicInsight {
	if len(items) == 0 {
		return models.TopicInsight{
			Summary:   g.noData("topic analysis"),
			AllTopics: map[string]int{},
			Trending:  "None",
		}
	}

	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(strings.ToLower(item.Text))
		sb.WriteByte(' ')
	}
	allText := sb.String()

	counts := make(map[string]int, len(g.topics))
	ranked := make([]string, 0, len(g.topics))
	for _, topic := range g.topics {
		total := 0
		for _, kw := range topic.Keywords {
			total += strings.Count(allText, kw)
		}
		counts[topic.Topic] = total
		ranked = append(ranked, topic.Topic)
	}

	// ranked starts in declaration order; a stable sort keeps that order
	// between equally discussed topics.
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})

	trending := "None"
	recommendation := "No clear topic trends."
	if counts[ranked[0]] > 0 {
		trending = ranked[0]
		recommendation = fmt.Sprintf("Focus on improving %s due to high discussion volume.",
			strings.ToLower(trending))
	}

	top := ranked
	if len(top) > 3 {
		top = top[:3]
	}

	return models.TopicInsight{
		Summary:        fmt.Sprintf("Top discussed topics are: %s.", strings.Join(top, ", ")),
		AllTopics:      counts,
		Trending:       trending,
		Recommendation: recommendation,
	}
}

func (g *Generator) actionInsight(items []models.AnalyzedItem) models.ActionInsight {
	if len(items) == 0 {
		return models.ActionInsight{
			Summary: g.noData("action analysis"),
		}
	}

	var highPriority []string
	for _, item := range items {
		if item.Sentiment == models.SentimentNegative && item.Category == models.CategoryComplaint {
			highPriority = append(highPriority, item.Text)
		}
	}

	var positives []models.AnalyzedItem
	for _, item := range items {
		if item.Sentiment == models.SentimentPositive {
			positives = append(positives, item)
		}
	}
	sort.SliceStable(positives, func(i, j int) bool {
		return positives[i].ViralScore > positives[j].ViralScore
	})
	if len(positives) > quickWinLimit {
		positives = positives[:quickWinLimit]
	}

	quickWinTexts := make([]string, 0, len(positives))
	for _, item := range positives {
		quickWinTexts = append(quickWinTexts, item.Text)
	}

	return models.ActionInsight{
		Summary: fmt.Sprintf("%d high-priority complaints and %d amplifiable positive posts identified.",
			len(highPriority), len(quickWinTexts)),
		Immediate: models.PriorityBucket{
			Count:       len(highPriority),
			Description: "High-priority complaints (Negative sentiment + Complaint category) require immediate response.",
			Action:      "Review these posts and contact customers within 24 hours.",
			Examples:    firstN(highPriority, maxExamplesPerLabel),
		},
		QuickWins: models.PriorityBucket{
			Count:       len(quickWinTexts),
			Description: "Positive testimonials with high viral scores are available for marketing.",
			Action:      "Amplify these success stories and thank the customers publicly.",
			Examples:    quickWinTexts,
		},
	}
}

func (g *Generator) comparisonInsight(all []models.AnalyzedItem) models.ComparisonInsight {
	posts := make(map[string]int)
	positive := make(map[string]int)
	for _, item := range all {
		entity := item.PrimaryEntity
		if entity == models.EntityNone || entity == models.EntityMultiple {
			continue
		}
		posts[entity]++
		if item.Sentiment == models.SentimentPositive {
			positive[entity]++
		}
	}

	standings := make(map[string]models.EntityStanding, len(posts))
	for entity, n := range posts {
		standings[entity] = models.EntityStanding{
			Posts:        n,
			PositiveRate: float64(positive[entity]) / float64(n) * 100,
		}
	}

	brand := g.lex.Brand()
	brandStanding, ok := standings[brand]
	if !ok {
		return models.ComparisonInsight{
			Summary:  g.noData("comparison"),
			Standing: "unknown",
			Entities: standings,
		}
	}

	var competitorRates []float64
	for entity, standing := range standings {
		if entity != brand {
			competitorRates = append(competitorRates, standing.PositiveRate)
		}
	}

	if len(competitorRates) == 0 {
		return models.ComparisonInsight{
			Summary: fmt.Sprintf("%s's positive sentiment is %.1f%%; no competitor posts to compare against.",
				prettyEntity(brand), brandStanding.PositiveRate),
			Standing:       "uncontested",
			Entities:       standings,
			Recommendation: "Track competitor channels to establish a benchmark.",
		}
	}

	competitorMean := stat.Mean(competitorRates, nil)
	diff := brandStanding.PositiveRate - competitorMean

	var standing, phrase, recommendation string
	switch {
	case diff > parityEpsilon:
		standing, phrase = "above", "above"
		recommendation = "Focus on maintaining positive momentum."
	case diff < -parityEpsilon:
		standing, phrase = "below", "below"
		recommendation = "Urgent improvement needed to match competitor satisfaction."
	default:
		standing, phrase = "at parity", "at parity with"
		recommendation = "Differentiate the experience to pull ahead of competitors."
	}

	return models.ComparisonInsight{
		Summary: fmt.Sprintf("%s's positive sentiment (%.1f%%) is %s the competitor average of %.1f%%.",
			prettyEntity(brand), brandStanding.PositiveRate, phrase, competitorMean),
		Standing:       standing,
		Entities:       standings,
		Recommendation: recommendation,
	}
}

func (g *Generator) noData(axis string) string {
	return fmt.Sprintf("No %s posts found for %s.", prettyEntity(g.lex.Brand()), axis)
}

// dominantLabel picks the highest-count label; ties resolve to the label
// earlier in the fixed order.
func dominantLabel(counts map[string]int, order []string) string {
	best := ""
	bestCount := -1
	for _, label := range order {
		if counts[label] > bestCount {
			best = label
			bestCount = counts[label]
		}
	}
	return best
}

// labelsByCount returns the populated labels sorted by count descending,
// ties in fixed-order position.
func labelsByCount(counts map[string]int, order []string) []string {
	var labels []string
	for _, label := range order {
		if counts[label] > 0 {
			labels = append(labels, label)
		}
	}
	sort.SliceStable(labels, func(i, j int) bool {
		return counts[labels[i]] > counts[labels[j]]
	})
	return labels
}

func firstN(texts []string, n int) []string {
	if len(texts) > n {
		texts = texts[:n]
	}
	return append([]string(nil), texts...)
}

// prettyEntity turns an entity key like "prime_bank" into "Prime Bank".
func prettyEntity(key string) string {
	parts := strings.Split(key, "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}
