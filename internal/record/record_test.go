package record

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateKeyRoundTrip(t *testing.T) {
	d := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.Local)
	key := DateKey(d)
	if key != "2024-02-10" {
		t.Errorf("DateKey = %q, want 2024-02-10", key)
	}
	parsed, err := ParseDateKey(key)
	if err != nil {
		t.Fatalf("ParseDateKey: %v", err)
	}
	if !parsed.Equal(d) {
		t.Errorf("ParseDateKey = %v, want %v", parsed, d)
	}
}

func TestParseDateKeyRejectsGarbage(t *testing.T) {
	for _, key := range []string{"", "2024-13-01", "02-10-2024", "yesterday"} {
		if _, err := ParseDateKey(key); err == nil {
			t.Errorf("ParseDateKey(%q): expected error", key)
		}
	}
}

func TestMonthKeyZeroPads(t *testing.T) {
	if got := MonthKey(2024, 2); got != "2024-02" {
		t.Errorf("MonthKey = %q, want 2024-02", got)
	}
	if got := MonthKey(2024, 11); got != "2024-11" {
		t.Errorf("MonthKey = %q, want 2024-11", got)
	}
}

func TestValidateContent(t *testing.T) {
	if err := ValidateContent("good day"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, content := range []string{"", "   ", "\n\t "} {
		if err := ValidateContent(content); err == nil {
			t.Errorf("ValidateContent(%q): expected error", content)
		}
	}
}

func TestValidateHexCode(t *testing.T) {
	for _, hex := range []string{"#ff9900", "#FFD700", "#4682B4"} {
		if err := ValidateHexCode(hex); err != nil {
			t.Errorf("ValidateHexCode(%q): %v", hex, err)
		}
	}
	for _, hex := range []string{"", "ff9900", "#ff990", "#gggggg", "red"} {
		if err := ValidateHexCode(hex); err == nil {
			t.Errorf("ValidateHexCode(%q): expected error", hex)
		}
	}
}

func TestEmotionByType(t *testing.T) {
	e, ok := EmotionByType("JOY")
	if !ok {
		t.Fatal("JOY not found in palette")
	}
	if e.HexCode != "#FFD700" {
		t.Errorf("JOY hex = %q, want #FFD700", e.HexCode)
	}
	if _, ok := EmotionByType("EUPHORIA"); ok {
		t.Error("unknown emotion should not resolve")
	}
	if got := EmotionLabel("SADNESS"); got != "Sadness" {
		t.Errorf("EmotionLabel = %q", got)
	}
	if got := EmotionLabel("WEIRD"); got != "WEIRD" {
		t.Errorf("EmotionLabel fallback = %q", got)
	}
}

func TestRecordDecodesCanonicalIDField(t *testing.T) {
	raw := `{"diaryId": 42, "recordDate": "2024-02-10", "content": "good day", "hexCode": "#ff9900", "emotionType": "JOY"}`
	var r Record
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.DiaryID != 42 {
		t.Errorf("DiaryID = %d, want 42", r.DiaryID)
	}
	if r.HexCode != "#ff9900" || r.Content != "good day" {
		t.Errorf("unexpected record: %+v", r)
	}
}

func TestPreview(t *testing.T) {
	r := Record{Content: "line one\nline two"}
	if got := r.Preview(80); got != "line one line two" {
		t.Errorf("Preview = %q", got)
	}
	long := Record{Content: "abcdefghijklmnopqrstuvwxyz"}
	if got := long.Preview(10); got != "abcdefg..." {
		t.Errorf("Preview = %q", got)
	}
}
