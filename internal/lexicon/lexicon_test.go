package lexicon

import (
	"testing"

	"github.com/spacesedan/brandpulse/internal/models"
)

func TestIdentifyEntity(t *testing.T) {
	lex := Default()

	tests := []struct {
		name        string
		text        string
		wantPrimary string
		wantAll     []string
	}{
		{
			name:        "single entity",
			text:        "Prime Bank has great service",
			wantPrimary: "prime_bank",
			wantAll:     []string{"prime_bank"},
		},
		{
			name:        "at-mention form",
			text:        "hey @primebank fix your app",
			wantPrimary: "prime_bank",
			wantAll:     []string{"prime_bank"},
		},
		{
			name:        "competitor only",
			text:        "BRAC Bank approved my loan",
			wantPrimary: "brac_bank",
			wantAll:     []string{"brac_bank"},
		},
		{
			name:        "multiple entities",
			text:        "Prime Bank is better than City Bank",
			wantPrimary: models.EntityMultiple,
			wantAll:     []string{"prime_bank", "city_bank"},
		},
		{
			name:        "no entity",
			text:        "the weather is nice today",
			wantPrimary: models.EntityNone,
			wantAll:     nil,
		},
		{
			name:        "empty text",
			text:        "",
			wantPrimary: models.EntityNone,
			wantAll:     nil,
		},
		{
			name:        "whitespace only",
			text:        "   ",
			wantPrimary: models.EntityNone,
			wantAll:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary, all := lex.IdentifyEntity(tt.text)
			if primary != tt.wantPrimary {
				t.Errorf("primary = %q, want %q", primary, tt.wantPrimary)
			}
			if len(all) != len(tt.wantAll) {
				t.Fatalf("all = %v, want %v", all, tt.wantAll)
			}
			for i := range all {
				if all[i] != tt.wantAll[i] {
					t.Errorf("all[%d] = %q, want %q", i, all[i], tt.wantAll[i])
				}
			}
		})
	}
}

func TestMentionCount(t *testing.T) {
	lex := Default()

	tests := []struct {
		name   string
		text   string
		entity string
		want   int
	}{
		{
			name:   "canonical form counted once",
			text:   "Prime Bank app is terrible, nothing works",
			entity: "prime_bank",
			want:   1,
		},
		{
			name:   "case insensitive",
			text:   "PRIME BANK and primebank",
			entity: "prime_bank",
			want:   2,
		},
		{
			name:   "repeat mentions",
			text:   "Prime Bank then Prime Bank again",
			entity: "prime_bank",
			want:   2,
		},
		{
			name:   "other entity ignored",
			text:   "City Bank only",
			entity: "prime_bank",
			want:   0,
		},
		{
			name:   "unknown entity",
			text:   "Prime Bank",
			entity: "nonexistent",
			want:   0,
		},
		{
			name:   "empty text",
			text:   "",
			entity: "prime_bank",
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lex.MentionCount(tt.text, tt.entity)
			if got != tt.want {
				t.Errorf("MentionCount(%q, %q) = %d, want %d", tt.text, tt.entity, got, tt.want)
			}
		})
	}
}

func TestBrandMentionsConsistentWithIdentify(t *testing.T) {
	lex := Default()

	text := "nothing about any bank brand here"
	primary, _ := lex.IdentifyEntity(text)
	if primary != models.EntityNone {
		t.Fatalf("primary = %q, want none", primary)
	}
	if n := lex.BrandMentions(text); n != 0 {
		t.Errorf("BrandMentions = %d, want 0 when primary is none", n)
	}
}

func TestNewRejectsUnknownBrand(t *testing.T) {
	_, err := New("missing_brand", DefaultEntityPatterns)
	if err == nil {
		t.Fatal("expected error for brand without a pattern set")
	}
}
