// Package classify runs the per-item classification stages: entity
// attribution, sentiment, emotion, category and virality. Items are
// independent, so the pipeline fans work out across a bounded worker pool;
// results are written by index to preserve input order.
package classify

import (
	"context"
	"log/slog"
	"sync"

	"github.com/spacesedan/brandpulse/internal/lexicon"
	"github.com/spacesedan/brandpulse/internal/models"
	"github.com/spacesedan/brandpulse/internal/sentiment"
	"github.com/spacesedan/brandpulse/internal/utils"
)

const defaultWorkers = 8

type Pipeline struct {
	lex        *lexicon.Lexicon
	engine     *sentiment.Engine
	emotions   *EmotionClassifier
	categories *CategoryClassifier
	workers    int
}

func NewPipeline(lex *lexicon.Lexicon, engine *sentiment.Engine) *Pipeline {
	return &Pipeline{
		lex:        lex,
		engine:     engine,
		emotions:   NewEmotionClassifier(lexicon.DefaultEmotionCues),
		categories: NewCategoryClassifier(),
		workers:    defaultWorkers,
	}
}

// WithWorkers overrides the worker-pool size. Values below 1 are ignored.
func (p *Pipeline) WithWorkers(n int) *Pipeline {
	if n >= 1 {
		p.workers = n
	}
	return p
}

// Run classifies every item and returns the augmented rows in input order.
// The first stage is pure lexicon work; texts whose baseline sentiment is
// ambiguous or distress-flagged are buffered and offered to the
// adjudication backend in a bounded second stage. A failed adjudication
// leaves that item on its baseline; nothing stalls the batch.
func (p *Pipeline) Run(ctx context.Context, items []models.TextItem) []models.AnalyzedItem {
	results := make([]models.AnalyzedItem, len(items))
	escalations := utils.NewBatchBuffer[int]()

	p.forEachIndex(len(items), func(i int) {
		results[i] = p.classifyOne(items[i])
		if !results[i].IsEmpty() && p.engine.Escalates(items[i].Text, results[i].Sentiment) {
			escalations.Add(i)
		}
	})

	p.adjudicateBatch(ctx, results, escalations.GetAndClear())

	slog.Info("[Pipeline] Batch classified",
		slog.Int("items", len(items)))

	return results
}

// classifyOne runs every lexicon stage for a single item.
func (p *Pipeline) classifyOne(item models.TextItem) models.AnalyzedItem {
	result := models.AnalyzedItem{TextItem: item}

	primary, all := p.lex.IdentifyEntity(item.Text)
	result.PrimaryEntity = primary
	result.AllEntities = all
	result.EntityMentions = p.lex.BrandMentions(item.Text)

	if item.IsEmpty() {
		result.Sentiment, result.SentimentScore = models.SentimentNeutral, 0.0
	} else {
		result.Sentiment, result.SentimentScore = p.engine.Baseline(item.Text)
	}

	result.Emotion, result.EmotionKeywords = p.emotions.Classify(item.Text)
	result.Category, result.CategoryReason = p.categories.Classify(item.Text)
	result.ViralScore = ViralityScore(item, result.EntityMentions)

	return result
}

// adjudicateBatch replaces baseline sentiment with backend verdicts for the
// buffered indexes, again bounded by the worker pool.
func (p *Pipeline) adjudicateBatch(ctx context.Context, results []models.AnalyzedItem, indexes []int) {
	if len(indexes) == 0 {
		return
	}

	p.forEachIndex(len(indexes), func(n int) {
		i := indexes[n]
		if label, score, ok := p.engine.TryAdjudicate(ctx, results[i].Text); ok {
			results[i].Sentiment = label
			results[i].SentimentScore = score
		}
	})
}

// forEachIndex runs fn(0..n-1) across the worker pool.
func (p *Pipeline) forEachIndex(n int, fn func(int)) {
	if n == 0 {
		return
	}

	workers := p.workers
	if workers > n {
		workers = n
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indexes {
				fn(i)
			}
		}()
	}

	for i := 0; i < n; i++ {
		indexes <- i
	}
	close(indexes)
	wg.Wait()
}
