// Package stylist holds the prompt templates sent to the AI chat provider
// and the parsing applied to its replies. The reply format is a soft
// contract with the upstream model (four colon-delimited labeled lines),
// so everything that depends on it lives here behind small, independently
// testable functions.
package stylist

import "strings"

// Analysis is the normalized classification of one clothing image.
// Fields the model failed to supply are left empty; callers apply
// OrDefaults before persisting.
type Analysis struct {
	Category    string `json:"category"`
	Color       string `json:"color"`
	Style       string `json:"style"`
	Description string `json:"description"`
}

// Fixed fallback values substituted when analysis cannot be completed
// or a field is missing from the reply.
const (
	DefaultCategory    = "unknown"
	DefaultColor       = "unknown"
	DefaultStyle       = "casual"
	DefaultDescription = "Clothing item"
)

// FallbackAnalysis returns the fixed record used when the AI call fails
// outright. A degraded classification is preferable to a failed upload,
// so this is what the analyzer produces on any error.
func FallbackAnalysis() Analysis {
	return Analysis{
		Category:    DefaultCategory,
		Color:       DefaultColor,
		Style:       DefaultStyle,
		Description: DefaultDescription,
	}
}

// OrDefaults fills any empty field with its fixed fallback value.
func (a Analysis) OrDefaults() Analysis {
	if a.Category == "" {
		a.Category = DefaultCategory
	}
	if a.Color == "" {
		a.Color = DefaultColor
	}
	if a.Style == "" {
		a.Style = DefaultStyle
	}
	if a.Description == "" {
		a.Description = DefaultDescription
	}
	return a
}

// ParseAnalysis extracts the four labeled fields from a freeform model
// reply. The reply is split on newlines; for each line containing a colon,
// the text before the first colon (trimmed, lowercased) is the field name
// and the remainder (trimmed) is the value. Only the four recognized names
// are retained, in any order, any subset. Lines without a colon and
// unrecognized names are silently ignored; missing fields stay empty.
func ParseAnalysis(reply string) Analysis {
	var a Analysis
	for _, line := range strings.Split(reply, "\n") {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "category":
			a.Category = value
		case "color":
			a.Color = value
		case "style":
			a.Style = value
		case "description":
			a.Description = value
		}
	}
	return a
}
