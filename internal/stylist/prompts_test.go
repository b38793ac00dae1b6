package stylist

import (
	"strings"
	"testing"

	"github.com/stylematch/go-wardrobe-backend/internal/domain"
)

func TestWardrobeSummary_RendersOneLinePerItem(t *testing.T) {
	items := []domain.ClothingItem{
		{Category: "shirt", Color: "blue", Style: "casual", Description: "cotton shirt"},
		{Category: "shoes", Color: "white", Style: "sporty", Description: "running shoes"},
	}
	got := WardrobeSummary(items)
	want := "- shirt: blue casual, cotton shirt\n- shoes: white sporty, running shoes"
	if got != want {
		t.Fatalf("WardrobeSummary = %q, want %q", got, want)
	}
}

func TestWardrobeSummary_PlaceholdersForEmptyFields(t *testing.T) {
	got := WardrobeSummary([]domain.ClothingItem{{}})
	if got != "- item: color style, " {
		t.Fatalf("unexpected summary for empty item: %q", got)
	}
}

func TestWardrobeSummary_Empty(t *testing.T) {
	if got := WardrobeSummary(nil); got != "" {
		t.Fatalf("expected empty summary, got %q", got)
	}
}

func TestOutfitPrompt_ContainsWardrobeAndOccasion(t *testing.T) {
	items := []domain.ClothingItem{
		{Category: "dress", Color: "red", Style: "elegant", Description: "evening dress"},
	}
	p := OutfitPrompt(items, "wedding")

	for _, want := range []string{
		"- dress: red elegant, evening dress",
		"Occasion: wedding",
		"suggest 2-3 complete outfits",
		"Styling tips",
		"Color coordination analysis",
	} {
		if !strings.Contains(p, want) {
			t.Fatalf("prompt missing %q:\n%s", want, p)
		}
	}
}

func TestAnalyzerPrompt_RequestsParsableFormat(t *testing.T) {
	// The requested reply format must match what ParseAnalysis reads back.
	if !strings.Contains(AnalyzerPrompt, "Category: [category]") ||
		!strings.Contains(AnalyzerPrompt, "Description: [description]") {
		t.Fatalf("analyzer prompt no longer requests the labeled format:\n%s", AnalyzerPrompt)
	}
}
