package models_test

import (
	"strings"
	"testing"

	"github.com/meridianlaw/cms/internal/models"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Simple", "Jane Roe", "jane-roe"},
		{"TrailingPunctuation", "Jane Roe!!", "jane-roe"},
		{"MixedCase", "JANE roe", "jane-roe"},
		{"InnerPunctuationRun", "Estate -- Planning & Probate", "estate-planning-probate"},
		{"LeadingTrailingJunk", "  ...Family Law...  ", "family-law"},
		{"Digits", "Top 10 FAQs", "top-10-faqs"},
		{"Empty", "", ""},
		{"OnlyPunctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := models.Slugify(tt.in); got != tt.want {
				t.Fatalf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	// same title, same slug, every time
	for range 5 {
		if got := models.Slugify("Corporate Law & Compliance"); got != "corporate-law-compliance" {
			t.Fatalf("unexpected slug %q", got)
		}
	}
}

func TestReadTime(t *testing.T) {
	tests := []struct {
		name  string
		words int
		want  string
	}{
		{"Empty", 0, "1 min read"},
		{"Short", 50, "1 min read"},
		{"ExactlyOnePage", 200, "1 min read"},
		{"JustOver", 201, "2 min read"},
		{"Long", 1000, "5 min read"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := strings.TrimSpace(strings.Repeat("word ", tt.words))
			if got := models.ReadTime(content); got != tt.want {
				t.Fatalf("ReadTime(%d words) = %q, want %q", tt.words, got, tt.want)
			}
		})
	}
}

func TestStatusChecks(t *testing.T) {
	if !models.ValidContentStatus("active") || !models.ValidContentStatus("inactive") {
		t.Fatal("content statuses rejected")
	}
	if models.ValidContentStatus("published") {
		t.Fatal("blog status accepted as content status")
	}
	if !models.ValidBlogStatus("draft") || !models.ValidBlogStatus("published") {
		t.Fatal("blog statuses rejected")
	}
	if models.ValidBlogStatus("archived") {
		t.Fatal("unknown blog status accepted")
	}
	if !models.ValidContactStatus("new") || !models.ValidContactStatus("read") || !models.ValidContactStatus("responded") {
		t.Fatal("contact statuses rejected")
	}
	if models.ValidContactStatus("closed") {
		t.Fatal("unknown contact status accepted")
	}
}
