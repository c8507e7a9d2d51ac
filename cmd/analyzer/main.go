// Command analyzer classifies a directory of social-media exports and
// emits the insight report as JSON.
//
// Usage:
//
//	analyzer [flags]
//
// Flags:
//
//	-data string
//	      Directory holding *.csv and *.txt exports (default "data/uploads")
//	-out string
//	      Insight report destination, "-" for stdout (default "-")
//	-rows string
//	      Optional path for the augmented per-row CSV
//	-workers int
//	      Classification worker-pool size
//	-no-adjudication
//	      Force lexicon-only sentiment even when an OpenAI key is configured
package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/spacesedan/brandpulse/config"
	"github.com/spacesedan/brandpulse/internal/classify"
	"github.com/spacesedan/brandpulse/internal/clients"
	"github.com/spacesedan/brandpulse/internal/ingest"
	"github.com/spacesedan/brandpulse/internal/insights"
	"github.com/spacesedan/brandpulse/internal/lexicon"
	"github.com/spacesedan/brandpulse/internal/logging"
	"github.com/spacesedan/brandpulse/internal/models"
	"github.com/spacesedan/brandpulse/internal/monitoring"
	"github.com/spacesedan/brandpulse/internal/sentiment"
)

func main() {
	dataDir := flag.String("data", "data/uploads", "Directory holding *.csv and *.txt exports")
	outPath := flag.String("out", "-", "Insight report destination, - for stdout")
	rowsPath := flag.String("rows", "", "Optional path for the augmented per-row CSV")
	workers := flag.Int("workers", 0, "Classification worker-pool size (0 = default)")
	noAdjudication := flag.Bool("no-adjudication", false, "Force lexicon-only sentiment")
	flag.Parse()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lex := buildLexicon()
	engine := buildEngine(ctx, *noAdjudication)
	defer clients.CloseValkey()

	pipeline := classify.NewPipeline(lex, engine)
	if *workers > 0 {
		pipeline.WithWorkers(*workers)
	}

	items, err := ingest.LoadDir(*dataDir)
	if err != nil {
		slog.Error("[Main] Failed to load data directory",
			slog.String("dir", *dataDir),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	analyzed := pipeline.Run(ctx, items)

	var brandOnly []models.AnalyzedItem
	for _, item := range analyzed {
		if item.EntityMentions > 0 {
			brandOnly = append(brandOnly, item)
		}
	}

	report := insights.NewGenerator(lex).Generate(analyzed, brandOnly)

	if err := writeReport(report, *outPath); err != nil {
		slog.Error("[Main] Failed to write insight report",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *rowsPath != "" {
		if err := writeRows(analyzed, *rowsPath); err != nil {
			slog.Error("[Main] Failed to write augmented rows",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	slog.Info("[Main] Analysis complete",
		slog.Int("total", len(analyzed)),
		slog.Int("brand_posts", len(brandOnly)))
}

func buildLexicon() *lexicon.Lexicon {
	brand := os.Getenv("BRANDPULSE_BRAND")
	if brand == "" {
		return lexicon.Default()
	}

	lex, err := lexicon.New(brand, lexicon.DefaultEntityPatterns)
	if err != nil {
		slog.Error("[Main] Invalid BRANDPULSE_BRAND",
			slog.String("brand", brand),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	return lex
}

// buildEngine wires the hybrid sentiment engine: the OpenAI adjudicator
// (behind the optional Valkey cache) when credentials are configured, the
// lexicon baseline alone otherwise.
func buildEngine(ctx context.Context, noAdjudication bool) *sentiment.Engine {
	if noAdjudication || !clients.HasAICredentials() {
		slog.Info("[Main] Adjudication disabled, using lexicon baseline only")
		return sentiment.NewEngine(sentiment.NoAdjudicator{}, lexicon.ComplaintTriggers)
	}

	remote := sentiment.NewRemoteAdjudicator()
	adjudicator := sentiment.WithCache(clients.InitValkey(), remote)
	engine := sentiment.NewEngine(adjudicator, lexicon.ComplaintTriggers)

	healthy := &atomic.Bool{}
	healthy.Store(true)
	engine.SetHealthGate(healthy)
	go monitoring.MonitorAdjudicatorHealth(ctx, healthy, remote)

	return engine
}

func writeReport(report models.Report, path string) error {
	raw, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	if path == "-" {
		_, err = fmt.Fprintln(os.Stdout, string(raw))
		return err
	}
	return os.WriteFile(path, append(raw, '\n'), 0o644)
}

// writeRows emits the augmented table: the original columns plus every
// derived classification column.
func writeRows(items []models.AnalyzedItem, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"text", "likes", "shares", "comments", "location", "link", "source_file",
		"primary_entity", "entity_mentions", "sentiment", "sentiment_score",
		"emotion", "emotion_keywords", "category", "category_reason", "viral_score",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, item := range items {
		record := []string{
			item.Text,
			strconv.FormatFloat(item.Likes, 'f', -1, 64),
			strconv.FormatFloat(item.Shares, 'f', -1, 64),
			strconv.FormatFloat(item.Comments, 'f', -1, 64),
			item.Location,
			item.Link,
			item.SourceFile,
			item.PrimaryEntity,
			strconv.Itoa(item.EntityMentions),
			item.Sentiment,
			strconv.FormatFloat(item.SentimentScore, 'f', 4, 64),
			item.Emotion,
			strings.Join(item.EmotionKeywords, "|"),
			item.Category,
			item.CategoryReason,
			strconv.FormatFloat(item.ViralScore, 'f', 2, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
