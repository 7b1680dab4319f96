package ui

import (
	"strings"

	"github.com/filter-today/filterctl/internal/record"
)

// RenderKeywordCloud renders weighted keywords as flowing text. Heavier
// keywords get brighter, bolder styling; the flow wraps at width.
func RenderKeywordCloud(keywords []record.Keyword, width int, theme Theme) string {
	if len(keywords) == 0 {
		return theme.MutedStyle().Render("No keywords yet.")
	}
	if width < 20 {
		width = 20
	}

	maxWeight := keywords[0].Weight
	for _, k := range keywords {
		if k.Weight > maxWeight {
			maxWeight = k.Weight
		}
	}

	var b strings.Builder
	lineLen := 0
	for i, k := range keywords {
		word := renderKeyword(k, maxWeight, theme)
		// plain length drives wrapping, not the styled length
		plainLen := len([]rune(k.Text))

		if i > 0 {
			if lineLen+2+plainLen > width {
				b.WriteString("\n")
				lineLen = 0
			} else {
				b.WriteString("  ")
				lineLen += 2
			}
		}
		b.WriteString(word)
		lineLen += plainLen
	}
	return b.String()
}

func renderKeyword(k record.Keyword, maxWeight int, theme Theme) string {
	if maxWeight < 1 {
		maxWeight = 1
	}
	switch {
	case k.Weight*3 >= maxWeight*2:
		return theme.AccentStyle().Bold(true).Render(k.Text)
	case k.Weight*3 >= maxWeight:
		return theme.HeaderStyle().Bold(false).Render(k.Text)
	default:
		return theme.MutedStyle().Render(k.Text)
	}
}
