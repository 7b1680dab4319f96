package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/filter-today/filterctl/internal/record"
)

// FormatRecordSaved formats a save confirmation message.
func FormatRecordSaved(w io.Writer, r record.Record, updated bool) {
	verb := "Created"
	if updated {
		verb = "Updated"
	}
	fmt.Fprintf(w, "%s record for %s (%s)\n", verb, r.RecordDate, record.EmotionLabel(r.EmotionType))
}

// FormatRecordDeleted formats a deletion confirmation message.
func FormatRecordDeleted(w io.Writer, dateKey string) {
	fmt.Fprintf(w, "Deleted record for %s.\n", dateKey)
}

// FormatRecordFull formats a full record display with metadata header.
// The markdownStyle parameter controls glamour rendering (e.g. "dark", "light").
func FormatRecordFull(w io.Writer, r record.Record, markdownStyle string) {
	fmt.Fprintf(w, "Date: %s\n", r.RecordDate)
	fmt.Fprintf(w, "Tone: %s", r.HexCode)
	if r.EmotionType != "" {
		fmt.Fprintf(w, " (%s)", record.EmotionLabel(r.EmotionType))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)

	rendered := RenderMarkdownWithStyle(r.Content, 80, markdownStyle)
	fmt.Fprintln(w, rendered)
}

// FormatStatsTable renders the monthly emotion distribution as a table.
func FormatStatsTable(w io.Writer, stats []record.Stat) {
	if len(stats) == 0 {
		fmt.Fprintln(w, "No records this month.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleDouble)
	t.Style().Options.SeparateRows = false

	t.AppendHeader(table.Row{
		text.FgGreen.Sprintf("Emotion"),
		text.FgGreen.Sprintf("Count"),
		text.FgGreen.Sprintf("Color"),
	})
	for _, s := range stats {
		t.AppendRow(table.Row{statLabel(s), s.Count, s.HexCode})
	}
	t.Render()
}

// FormatKeywordsTable renders keyword weights as a table.
func FormatKeywordsTable(w io.Writer, keywords []record.Keyword) {
	if len(keywords) == 0 {
		fmt.Fprintln(w, "No keywords yet.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleDouble)
	t.Style().Options.SeparateRows = false

	t.AppendHeader(table.Row{
		text.FgGreen.Sprintf("Keyword"),
		text.FgGreen.Sprintf("Weight"),
	})
	for _, k := range keywords {
		t.AppendRow(table.Row{k.Text, k.Weight})
	}
	t.Render()
}

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// SaveResult is a JSON representation for write output.
type SaveResult struct {
	RecordDate  string `json:"recordDate"`
	DiaryID     int64  `json:"diaryId,omitempty"`
	HexCode     string `json:"hexCode"`
	EmotionType string `json:"emotionType,omitempty"`
	Updated     bool   `json:"updated"`
}

// DeleteResult is a JSON representation for delete output.
type DeleteResult struct {
	RecordDate string `json:"recordDate"`
	Deleted    bool   `json:"deleted"`
}
