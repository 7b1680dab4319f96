package ui

import (
	"strings"
	"testing"

	"github.com/filter-today/filterctl/internal/record"
)

func TestRenderStatsChartEmpty(t *testing.T) {
	out := RenderStatsChart(nil, testTheme())
	if !strings.Contains(out, "No records") {
		t.Errorf("empty stats render = %q", out)
	}
}

func TestRenderStatsChartBars(t *testing.T) {
	stats := []record.Stat{
		{EmotionType: "JOY", Label: "Joy", Count: 6, HexCode: "#FFD700"},
		{EmotionType: "SADNESS", Label: "Sadness", Count: 2, HexCode: "#4682B4"},
	}
	out := RenderStatsChart(stats, testTheme())

	if !strings.Contains(out, "Joy") || !strings.Contains(out, "Sadness") {
		t.Errorf("missing labels in %q", out)
	}
	if !strings.Contains(out, "6 (75%)") {
		t.Errorf("missing joy count/percent in %q", out)
	}
	if !strings.Contains(out, "2 (25%)") {
		t.Errorf("missing sadness count/percent in %q", out)
	}
	if !strings.Contains(out, "█") {
		t.Error("missing bars")
	}
}

func TestRenderStatsChartSkipsZeroCounts(t *testing.T) {
	stats := []record.Stat{
		{EmotionType: "JOY", Label: "Joy", Count: 3},
		{EmotionType: "ANGER", Label: "Anger", Count: 0},
	}
	out := RenderStatsChart(stats, testTheme())
	if strings.Contains(out, "Anger") {
		t.Error("zero-count emotion should be skipped")
	}
}

func TestRenderStatsChartLabelFallback(t *testing.T) {
	stats := []record.Stat{{EmotionType: "CALM", Count: 1}}
	out := RenderStatsChart(stats, testTheme())
	if !strings.Contains(out, "Calm") {
		t.Errorf("expected palette label fallback, got %q", out)
	}
}
