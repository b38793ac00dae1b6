package stylist

import (
	"fmt"
	"strings"

	"github.com/stylematch/go-wardrobe-backend/internal/domain"
)

// System prompts framing the model for each call site.
const (
	AnalyzerSystemPrompt = "You are a professional fashion stylist analyzing clothing items."
	ComposerSystemPrompt = "You are an expert fashion stylist providing outfit recommendations."
)

// AnalyzerPrompt is the fixed instruction sent alongside the clothing image.
// The requested four-line format is what ParseAnalysis expects back.
const AnalyzerPrompt = "Analyze this clothing item and provide: " +
	"1) Category (e.g., shirt, pants, dress, shoes, jacket, accessory), " +
	"2) Primary color, " +
	"3) Style (e.g., casual, formal, sporty, elegant), " +
	"4) Brief description. " +
	"Format your response as: Category: [category]\nColor: [color]\nStyle: [style]\nDescription: [description]"

// WardrobeSummary renders the selected items as one summary line each, the
// textual wardrobe description embedded in the outfit prompt. Empty
// category/color/style fall back to literal placeholder words so the line
// stays well-formed; an empty description simply renders empty.
func WardrobeSummary(items []domain.ClothingItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		category := item.Category
		if category == "" {
			category = "item"
		}
		color := item.Color
		if color == "" {
			color = "color"
		}
		style := item.Style
		if style == "" {
			style = "style"
		}
		lines = append(lines, fmt.Sprintf("- %s: %s %s, %s", category, color, style, item.Description))
	}
	return strings.Join(lines, "\n")
}

// OutfitPrompt builds the single-turn prompt asking for outfit suggestions
// from the given wardrobe for an occasion. The reply is returned to the
// caller verbatim; no structure is imposed on it.
func OutfitPrompt(items []domain.ClothingItem, occasion string) string {
	return fmt.Sprintf(`Given these clothing items from a wardrobe:
%s

Occasion: %s

Provide:
1. Best outfit combinations (suggest 2-3 complete outfits)
2. Styling tips for each combination
3. Color coordination analysis

Format your response clearly with sections for each outfit combination.`, WardrobeSummary(items), occasion)
}
