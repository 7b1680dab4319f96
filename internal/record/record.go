// Package record defines the Filter.today domain types shared by the API
// client, the calendar, and the edit session: diary records, monthly tone
// maps, emotion stats, and keyword weights.
package record

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateKeyFormat is the wire format for record dates (recordDate, tone-map keys).
const DateKeyFormat = "2006-01-02"

// DefaultHexCode is the color preloaded into a new-record form before the
// user (or the analyzer) picks an emotion.
const DefaultHexCode = "#ff9900"

var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Record is one diary entry for a calendar date, as returned by
// GET /api/diary?recordDate=YYYY-MM-DD. The server's canonical ID field is
// diaryId; older payloads also carried "id" but the client reads diaryId only.
type Record struct {
	DiaryID     int64  `json:"diaryId"`
	RecordDate  string `json:"recordDate"`
	Content     string `json:"content"`
	HexCode     string `json:"hexCode"`
	EmotionType string `json:"emotionType"`
}

// Draft is the client-side payload for create and update calls.
type Draft struct {
	RecordDate string `json:"recordDate"`
	Content    string `json:"content"`
	HexCode    string `json:"hexCode"`
}

// Summary is the per-day projection inside a monthly tone map.
type Summary struct {
	DiaryID     int64  `json:"diaryId,omitempty"`
	HexCode     string `json:"hexCode"`
	Content     string `json:"content"`
	EmotionType string `json:"emotionType,omitempty"`
}

// ToneMap maps a date key (YYYY-MM-DD) to the record summary for that day.
// Absent keys mean no record. A month has at most one summary per date.
type ToneMap map[string]Summary

// Stat is one slice of the monthly emotion distribution.
type Stat struct {
	EmotionType string `json:"emotionType"`
	Label       string `json:"emotionType_label"`
	Count       int    `json:"count"`
	HexCode     string `json:"hexCode"`
}

// Keyword is a weighted term from the monthly keyword analysis.
type Keyword struct {
	Text   string `json:"text"`
	Weight int    `json:"weight"`
}

// Suggestion is the analyzer's verdict for a piece of content.
type Suggestion struct {
	HexCode     string `json:"hexCode"`
	EmotionType string `json:"emotionType"`
}

// Emotion is one entry of the server's emotion palette.
type Emotion struct {
	Type    string
	Label   string
	HexCode string
}

// Emotions mirrors the server-side emotion enum and its representative
// colors, in display order.
var Emotions = []Emotion{
	{Type: "JOY", Label: "Joy", HexCode: "#FFD700"},
	{Type: "CALM", Label: "Calm", HexCode: "#ADD8E6"},
	{Type: "ANGER", Label: "Anger", HexCode: "#FF4500"},
	{Type: "SADNESS", Label: "Sadness", HexCode: "#4682B4"},
	{Type: "ANXIETY", Label: "Anxiety", HexCode: "#808080"},
	{Type: "NORMAL", Label: "Normal", HexCode: "#E0E0E0"},
}

// EmotionByType looks up a palette entry by its wire name (e.g. "JOY").
func EmotionByType(name string) (Emotion, bool) {
	for _, e := range Emotions {
		if e.Type == name {
			return e, true
		}
	}
	return Emotion{}, false
}

// EmotionLabel returns the display label for an emotion type, falling back
// to the raw type name for values the palette does not know.
func EmotionLabel(name string) string {
	if e, ok := EmotionByType(name); ok {
		return e.Label
	}
	return name
}

// EmotionHexCode returns the palette color for an emotion type, falling back
// to DefaultHexCode for unknown values.
func EmotionHexCode(name string) string {
	if e, ok := EmotionByType(name); ok {
		return e.HexCode
	}
	return DefaultHexCode
}

// DateKey formats a time as a tone-map date key in its own location.
func DateKey(t time.Time) string {
	return t.Format(DateKeyFormat)
}

// ParseDateKey parses a YYYY-MM-DD key into a local-midnight time.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DateKeyFormat, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", key)
	}
	return t, nil
}

// MonthKey formats a (year, month) pair as YYYY-MM with a zero-padded month,
// the form the backend expects in query strings.
func MonthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// ValidateContent rejects empty or whitespace-only diary content.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("record content must not be empty")
	}
	return nil
}

// ValidateHexCode checks for a #RRGGBB color string.
func ValidateHexCode(hex string) error {
	if !hexPattern.MatchString(hex) {
		return fmt.Errorf("invalid color %q (must be #RRGGBB)", hex)
	}
	return nil
}

// Preview returns a single-line truncated preview of record content.
func (r Record) Preview(maxLen int) string {
	content := strings.ReplaceAll(r.Content, "\n", " ")
	if len(content) <= maxLen {
		return content
	}
	return content[:maxLen-3] + "..."
}
