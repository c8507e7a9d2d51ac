package insights

import (
	"strings"
	"testing"
)

func TestExtractTheme(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		stops []string
		want  string
	}{
		{
			name:  "no texts",
			texts: nil,
			want:  "general topics",
		},
		{
			name:  "all stop words",
			texts: []string{"the and of", "a an it"},
			want:  "general topics",
		},
		{
			name:  "short tokens filtered",
			texts: []string{"app app app"},
			want:  "general topics",
		},
		{
			name:  "extra stops filtered",
			texts: []string{"bank bank bank"},
			stops: []string{"bank"},
			want:  "general topics",
		},
		{
			name:  "most frequent token first",
			texts: []string{"transfer failed", "transfer stuck", "transfer delayed again"},
			want:  "transfer, failed, stuck",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractTheme(tt.texts, tt.stops); got != tt.want {
				t.Errorf("ExtractTheme(%v) = %q, want %q", tt.texts, got, tt.want)
			}
		})
	}
}

func TestExtractThemeTopThree(t *testing.T) {
	texts := []string{"transfer charges branch queue deposit"}

	theme := ExtractTheme(texts, nil)
	if parts := strings.Split(theme, ", "); len(parts) != 3 {
		t.Errorf("theme = %q, want exactly three tokens", theme)
	}
}

func TestExtractThemeTieKeepsFirstSeenOrder(t *testing.T) {
	theme := ExtractTheme([]string{"charges transfer deposit"}, nil)
	if theme != "charges, transfer, deposit" {
		t.Errorf("theme = %q, want first-seen order on equal counts", theme)
	}
}
