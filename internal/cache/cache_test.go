package cache

import (
	"errors"
	"testing"

	"github.com/filter-today/filterctl/internal/record"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestMonthMiss(t *testing.T) {
	s := setupStore(t)
	if _, _, err := s.Month(2024, 2); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected ErrMiss, got %v", err)
	}
}

func TestPutMonthRoundTrip(t *testing.T) {
	s := setupStore(t)
	tm := record.ToneMap{
		"2024-02-10": {HexCode: "#ff9900", Content: "good day", EmotionType: "JOY"},
	}
	if err := s.PutMonth(2024, 2, tm); err != nil {
		t.Fatalf("PutMonth: %v", err)
	}

	got, fetchedAt, err := s.Month(2024, 2)
	if err != nil {
		t.Fatalf("Month: %v", err)
	}
	if fetchedAt.IsZero() {
		t.Error("fetchedAt not recorded")
	}
	summary, ok := got["2024-02-10"]
	if !ok || summary.HexCode != "#ff9900" || summary.Content != "good day" {
		t.Errorf("cached tone map = %+v", got)
	}
}

func TestPutMonthReplaces(t *testing.T) {
	s := setupStore(t)
	if err := s.PutMonth(2024, 2, record.ToneMap{"2024-02-01": {HexCode: "#111111"}}); err != nil {
		t.Fatalf("PutMonth: %v", err)
	}
	if err := s.PutMonth(2024, 2, record.ToneMap{"2024-02-02": {HexCode: "#222222"}}); err != nil {
		t.Fatalf("PutMonth: %v", err)
	}

	got, _, err := s.Month(2024, 2)
	if err != nil {
		t.Fatalf("Month: %v", err)
	}
	if _, stale := got["2024-02-01"]; stale {
		t.Error("old payload should be replaced, not merged")
	}
	if _, ok := got["2024-02-02"]; !ok {
		t.Error("new payload missing")
	}
}

func TestMonthsAreIndependent(t *testing.T) {
	s := setupStore(t)
	if err := s.PutMonth(2024, 2, record.ToneMap{"2024-02-10": {HexCode: "#ff9900"}}); err != nil {
		t.Fatalf("PutMonth: %v", err)
	}
	if _, _, err := s.Month(2024, 3); !errors.Is(err, ErrMiss) {
		t.Errorf("expected miss for uncached month, got %v", err)
	}
}

func TestPurge(t *testing.T) {
	s := setupStore(t)
	if err := s.PutMonth(2024, 2, record.ToneMap{"2024-02-10": {HexCode: "#ff9900"}}); err != nil {
		t.Fatalf("PutMonth: %v", err)
	}
	if err := s.Purge(); err != nil {
		t.Fatalf("Purge: %v", err)
	}
	if _, _, err := s.Month(2024, 2); !errors.Is(err, ErrMiss) {
		t.Errorf("expected miss after purge, got %v", err)
	}
}
