package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "posts.csv",
		"Text,Likes,Shares,Comments,Location,Link\n"+
			"Prime Bank app is great,10,2,1,Dhaka,https://example.com/a\n"+
			"Worst service ever,abc,-5,3,,\n"+
			",5,5,5,Dhaka,\n")

	items, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2 (blank text row dropped)", len(items))
	}

	first := items[0]
	if first.Text != "Prime Bank app is great" {
		t.Errorf("text = %q", first.Text)
	}
	if first.Likes != 10 || first.Shares != 2 || first.Comments != 1 {
		t.Errorf("engagement = %v/%v/%v, want 10/2/1", first.Likes, first.Shares, first.Comments)
	}
	if first.Location != "Dhaka" || first.Link != "https://example.com/a" {
		t.Errorf("location/link = %q/%q", first.Location, first.Link)
	}
	if first.SourceFile != "posts.csv" {
		t.Errorf("source file = %q, want posts.csv", first.SourceFile)
	}

	second := items[1]
	if second.Likes != 0 || second.Shares != 0 {
		t.Errorf("lenient numerics = %v/%v, want 0/0 for unparsable and negative",
			second.Likes, second.Shares)
	}
	if second.Comments != 3 {
		t.Errorf("comments = %v, want 3", second.Comments)
	}
}

func TestLoadCSVTextColumnInference(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"content column", "content,likes"},
		{"message column", "message,likes"},
		{"review column", "Review,Likes"},
		{"review text column", "Review Text,Likes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeFile(t, dir, "export.csv", tt.header+"\nhello world,3\n")

			items, err := LoadCSV(path)
			if err != nil {
				t.Fatalf("LoadCSV: %v", err)
			}
			if len(items) != 1 || items[0].Text != "hello world" {
				t.Errorf("items = %+v, want one row with text %q", items, "hello world")
			}
		})
	}
}

func TestLoadCSVPrefersTextOverLaterCandidates(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "both.csv",
		"comment,text\nsecondary,primary\n")

	items, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(items) != 1 || items[0].Text != "primary" {
		t.Errorf("items = %+v, want the text column to win", items)
	}
}

func TestLoadCSVLinkFallsBackToURL(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "urls.csv",
		"text,url\nsome post,https://example.com/b\n")

	items, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if items[0].Link != "https://example.com/b" {
		t.Errorf("link = %q, want the url column value", items[0].Link)
	}
}

func TestLoadCSVNoTextColumn(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.csv", "id,likes\n1,2\n")

	if _, err := LoadCSV(path); err == nil {
		t.Error("expected an error for a header without a text column")
	}
}

func TestLoadCSVRaggedRows(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ragged.csv",
		"text,likes,shares\nshort row\nfull row,4,2\n")

	items, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Likes != 0 {
		t.Errorf("missing cells should read as zero, got %v", items[0].Likes)
	}
	if items[1].Likes != 4 {
		t.Errorf("likes = %v, want 4", items[1].Likes)
	}
}

func TestLoadTXT(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", "first line\n\n  second line  \n\n")

	items, err := LoadTXT(path)
	if err != nil {
		t.Fatalf("LoadTXT: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2 (blank lines dropped)", len(items))
	}
	if items[0].Text != "first line" || items[1].Text != "second line" {
		t.Errorf("texts = %q, %q", items[0].Text, items[1].Text)
	}
	if items[0].SourceFile != "notes.txt" {
		t.Errorf("source file = %q, want notes.txt", items[0].SourceFile)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.csv", "text\nfrom csv\n")
	writeFile(t, dir, "b.txt", "from txt\n")
	writeFile(t, dir, "c.json", `{"ignored": true}`)
	writeFile(t, dir, "broken.csv", "id\n1\n") // no text column, skipped

	items, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2 (csv + txt, others skipped)", len(items))
	}
	if items[0].Text != "from csv" || items[1].Text != "from txt" {
		t.Errorf("texts = %q, %q, want file-name order", items[0].Text, items[1].Text)
	}
}

func TestLoadDirMissing(t *testing.T) {
	if _, err := LoadDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
