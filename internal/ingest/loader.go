// Package ingest is the thin loading collaborator in front of the
// classification core: it turns CSV and TXT exports into a uniform batch of
// TextItems. Per-file problems are logged and skipped; only an unreadable
// source is worth an error.
package ingest

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spacesedan/brandpulse/internal/models"
)

// Column names that may carry the text payload, tried in order.
var textColumnCandidates = []string{
	"text", "content", "message", "review", "comment", "post", "review text",
}

// LoadDir loads every *.csv and *.txt file under dir into one batch,
// preserving file order (sorted by name) and row order within each file.
func LoadDir(dir string) ([]models.TextItem, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("ingest: reading %s: %w", dir, err)
	}

	var items []models.TextItem
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		var fileItems []models.TextItem
		var loadErr error

		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".csv":
			fileItems, loadErr = LoadCSV(path)
		case ".txt":
			fileItems, loadErr = LoadTXT(path)
		default:
			continue
		}

		if loadErr != nil {
			slog.Error("[Ingest] Skipping unreadable file",
				slog.String("file", path),
				slog.String("error", loadErr.Error()))
			continue
		}

		items = append(items, fileItems...)
	}

	slog.Info("[Ingest] Batch loaded",
		slog.String("dir", dir),
		slog.Int("items", len(items)))

	return items, nil
}

// LoadCSV parses one CSV export. The text column is inferred from the
// header; engagement counters are parsed leniently (anything unparsable or
// negative counts as zero). Rows with a blank text cell are dropped.
func LoadCSV(path string) ([]models.TextItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ingest: parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	textCol := -1
	for _, candidate := range textColumnCandidates {
		if i, ok := columns[candidate]; ok {
			textCol = i
			break
		}
	}
	if textCol == -1 {
		return nil, fmt.Errorf("ingest: no text column in %s (header: %s)",
			path, strings.Join(header, ", "))
	}

	sourceFile := filepath.Base(path)
	var items []models.TextItem
	for _, record := range records[1:] {
		text := strings.TrimSpace(cell(record, textCol))
		if text == "" {
			continue
		}

		items = append(items, models.TextItem{
			Text:       text,
			Likes:      numericCell(record, columns, "likes"),
			Shares:     numericCell(record, columns, "shares"),
			Comments:   numericCell(record, columns, "comments"),
			Location:   stringCell(record, columns, "location"),
			Link:       firstStringCell(record, columns, "link", "url"),
			SourceFile: sourceFile,
		})
	}

	return items, nil
}

// LoadTXT treats every non-blank line as one item.
func LoadTXT(path string) ([]models.TextItem, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	sourceFile := filepath.Base(path)
	var items []models.TextItem
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		items = append(items, models.TextItem{
			Text:       line,
			SourceFile: sourceFile,
		})
	}

	return items, nil
}

func cell(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}

func stringCell(record []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok {
		return ""
	}
	return strings.TrimSpace(cell(record, i))
}

func firstStringCell(record []string, columns map[string]int, names ...string) string {
	for _, name := range names {
		if v := stringCell(record, columns, name); v != "" {
			return v
		}
	}
	return ""
}

func numericCell(record []string, columns map[string]int, name string) float64 {
	raw := stringCell(record, columns, name)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
