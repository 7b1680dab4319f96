package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/filter-today/filterctl/internal/calendar"
	"github.com/filter-today/filterctl/internal/record"
)

// weekdayHeader is the Monday-first column header row.
var weekdayHeader = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// RenderCalendar renders a month of cells as a Monday-first grid. Days with a
// record are painted in that record's tone color, future days are dimmed, and
// the selected day is highlighted. When stale is set a footer notes that the
// colors come from the local cache.
func RenderCalendar(g calendar.Grid, cells []calendar.Cell, theme Theme, stale bool) string {
	var b strings.Builder

	title := fmt.Sprintf("%s %d", time.Month(g.Month).String(), g.Year)
	b.WriteString(theme.HeaderStyle().Render(title))
	b.WriteString("\n\n")

	for i, h := range weekdayHeader {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(theme.MutedStyle().Render(fmt.Sprintf("%3s", h)))
	}
	b.WriteString("\n")

	for i, cell := range cells {
		if i > 0 && i%7 == 0 {
			b.WriteString("\n")
		} else if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(renderCell(cell, theme))
	}
	b.WriteString("\n")

	if stale {
		b.WriteString("\n")
		b.WriteString(theme.MutedStyle().Render("(offline: showing last fetched colors)"))
		b.WriteString("\n")
	}

	return b.String()
}

func renderCell(cell calendar.Cell, theme Theme) string {
	if cell.IsLeadingPad {
		return "   "
	}

	label := fmt.Sprintf("%3d", cell.Day)

	style := lipgloss.NewStyle()
	switch {
	case cell.IsFuture:
		style = style.Foreground(theme.Muted)
	case cell.HasRecord:
		style = style.Foreground(lipgloss.Color(cell.HexCode)).Bold(true)
	default:
		style = style.Foreground(theme.Primary)
	}
	if cell.IsSelected {
		style = style.Reverse(true)
	}

	return style.Render(label)
}

// RenderEmotionLegend renders a one-line legend of emotion colors.
func RenderEmotionLegend() string {
	parts := make([]string, 0, len(record.Emotions))
	for _, e := range record.Emotions {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(e.HexCode)).Render("■")
		parts = append(parts, swatch+" "+e.Label)
	}
	return strings.Join(parts, "  ")
}
