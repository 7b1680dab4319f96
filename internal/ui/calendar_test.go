package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/filter-today/filterctl/internal/calendar"
	"github.com/filter-today/filterctl/internal/config"
	"github.com/filter-today/filterctl/internal/record"
)

func testTheme() Theme {
	return ResolveTheme(config.ThemeConfig{})
}

func TestRenderCalendarHeader(t *testing.T) {
	g := calendar.MonthGrid(2024, 2)
	cells := calendar.BuildCells(g, record.ToneMap{}, "", time.Date(2024, 2, 15, 12, 0, 0, 0, time.Local))

	out := RenderCalendar(g, cells, testTheme(), false)

	if !strings.Contains(out, "February 2024") {
		t.Error("missing month title")
	}
	for _, h := range []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"} {
		if !strings.Contains(out, h) {
			t.Errorf("missing weekday header %q", h)
		}
	}
}

func TestRenderCalendarRowsAreSevenWide(t *testing.T) {
	// February 2024 opens on Thursday: 3 pads + 29 days = 32 cells, 5 rows.
	g := calendar.MonthGrid(2024, 2)
	cells := calendar.BuildCells(g, record.ToneMap{}, "", time.Date(2024, 2, 15, 12, 0, 0, 0, time.Local))

	out := RenderCalendar(g, cells, testTheme(), false)
	lines := strings.Split(out, "\n")

	dayRows := 0
	for _, line := range lines {
		if strings.Contains(line, "29") || strings.Contains(line, " 1") {
			dayRows++
		}
	}
	if dayRows < 2 {
		t.Errorf("expected day rows containing first and last day, got output:\n%s", out)
	}
	if !strings.Contains(out, "29") {
		t.Error("leap day missing")
	}
}

func TestRenderCalendarStaleFooter(t *testing.T) {
	g := calendar.MonthGrid(2024, 2)
	cells := calendar.BuildCells(g, record.ToneMap{}, "", time.Now())

	fresh := RenderCalendar(g, cells, testTheme(), false)
	stale := RenderCalendar(g, cells, testTheme(), true)

	if strings.Contains(fresh, "offline") {
		t.Error("fresh render should not mention offline cache")
	}
	if !strings.Contains(stale, "offline") {
		t.Error("stale render should mention offline cache")
	}
}

func TestRenderEmotionLegend(t *testing.T) {
	out := RenderEmotionLegend()
	for _, label := range []string{"Joy", "Calm", "Anger", "Sadness", "Anxiety", "Normal"} {
		if !strings.Contains(out, label) {
			t.Errorf("legend missing %q", label)
		}
	}
}
