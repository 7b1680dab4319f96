package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/filter-today/filterctl/internal/record"
)

func statsHandler(stats []record.Stat) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/analysis/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stats)
	})
	return mux
}

func TestStatsRunTable(t *testing.T) {
	setupTestEnv(t, statsHandler([]record.Stat{
		{EmotionType: "JOY", Label: "Joy", Count: 5, HexCode: "#FFD700"},
		{EmotionType: "CALM", Label: "Calm", Count: 2, HexCode: "#ADD8E6"},
	}))

	var buf bytes.Buffer
	if err := statsRun(&buf, 2024, 2, false); err != nil {
		t.Fatalf("statsRun: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Joy") || !strings.Contains(out, "Calm") {
		t.Errorf("table output = %q", out)
	}
}

func TestStatsRunChart(t *testing.T) {
	setupTestEnv(t, statsHandler([]record.Stat{
		{EmotionType: "JOY", Label: "Joy", Count: 3, HexCode: "#FFD700"},
	}))

	var buf bytes.Buffer
	if err := statsRun(&buf, 2024, 2, true); err != nil {
		t.Fatalf("statsRun: %v", err)
	}
	if !strings.Contains(buf.String(), "█") {
		t.Error("chart output missing bars")
	}
}

func TestStatsRunJSON(t *testing.T) {
	setupTestEnv(t, statsHandler([]record.Stat{
		{EmotionType: "JOY", Label: "Joy", Count: 3, HexCode: "#FFD700"},
	}))
	jsonOutput = true

	var buf bytes.Buffer
	if err := statsRun(&buf, 2024, 2, false); err != nil {
		t.Fatalf("statsRun: %v", err)
	}

	var stats []record.Stat
	if err := json.Unmarshal(buf.Bytes(), &stats); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if len(stats) != 1 || stats[0].Count != 3 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestKeywordsRunTable(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/diary/analysis/keywords", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]record.Keyword{{Text: "coffee", Weight: 4}})
	})
	setupTestEnv(t, mux)

	var buf bytes.Buffer
	if err := keywordsRun(&buf, 2024, 2, false); err != nil {
		t.Fatalf("keywordsRun: %v", err)
	}
	if !strings.Contains(buf.String(), "coffee") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestKeywordsRunCloud(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/diary/analysis/keywords", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]record.Keyword{
			{Text: "coffee", Weight: 4},
			{Text: "rain", Weight: 1},
		})
	})
	setupTestEnv(t, mux)

	var buf bytes.Buffer
	if err := keywordsRun(&buf, 2024, 2, true); err != nil {
		t.Fatalf("keywordsRun: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "coffee") || !strings.Contains(out, "rain") {
		t.Errorf("cloud output = %q", out)
	}
}
