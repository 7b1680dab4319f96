package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/filter-today/filterctl/internal/record"
)

const maxBarWidth = 30

// RenderStatsChart renders monthly emotion counts as proportional bars,
// each painted in its emotion's tone color.
func RenderStatsChart(stats []record.Stat, theme Theme) string {
	total := 0
	for _, s := range stats {
		total += s.Count
	}
	if total == 0 {
		return theme.MutedStyle().Render("No records this month.")
	}

	labelWidth := 0
	for _, s := range stats {
		if w := len(statLabel(s)); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	for i, s := range stats {
		if s.Count == 0 {
			continue
		}
		if i > 0 && b.Len() > 0 {
			b.WriteString("\n")
		}

		barLen := s.Count * maxBarWidth / total
		if barLen < 1 {
			barLen = 1
		}

		hex := s.HexCode
		if hex == "" {
			hex = record.EmotionHexCode(s.EmotionType)
		}
		bar := lipgloss.NewStyle().
			Foreground(lipgloss.Color(hex)).
			Render(strings.Repeat("█", barLen))

		pct := s.Count * 100 / total
		fmt.Fprintf(&b, "%-*s %s %d (%d%%)", labelWidth, statLabel(s), bar, s.Count, pct)
	}
	return b.String()
}

func statLabel(s record.Stat) string {
	if s.Label != "" {
		return s.Label
	}
	return record.EmotionLabel(s.EmotionType)
}
