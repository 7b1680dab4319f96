// Package session holds the transient edit state for one diary date: which
// day is selected, whether an existing record is loaded, and how a save
// resolves its emotion color. It owns the create/edit/delete flow; the
// backing calls are injected as small capability interfaces so the CLI, the
// dashboard, and tests can each supply their own.
package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/filter-today/filterctl/internal/record"
)

// Mode selects how the emotion color is chosen on save.
type Mode int

const (
	// ModeManual takes the color directly from user input.
	ModeManual Mode = iota
	// ModeAssisted asks the backend analyzer for a color/label suggestion
	// and persists only after the user confirms it.
	ModeAssisted
)

func (m Mode) String() string {
	if m == ModeAssisted {
		return "assisted"
	}
	return "manual"
}

// ValidationError blocks an action locally; no network call is made.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Outcome reports how a save or delete resolved.
type Outcome int

const (
	OutcomeDeclined Outcome = iota // user declined a confirmation, nothing sent
	OutcomeCreated
	OutcomeUpdated
	OutcomeDeleted
)

// RecordSource fetches the single authoritative record for a date.
// found is false when no record exists (absent and empty are equivalent).
type RecordSource interface {
	LookupRecord(ctx context.Context, dateKey string) (rec record.Record, found bool, err error)
}

// RecordSink persists record mutations.
type RecordSink interface {
	CreateRecord(ctx context.Context, draft record.Draft) error
	UpdateRecord(ctx context.Context, id int64, draft record.Draft) error
	DeleteRecord(ctx context.Context, id int64) error
}

// Analyzer suggests an emotion color and label for content.
type Analyzer interface {
	Analyze(ctx context.Context, content string) (record.Suggestion, error)
}

// Confirmer gates the irreversible steps of the flow.
type Confirmer interface {
	ConfirmSuggestion(s record.Suggestion) (bool, error)
	ConfirmDelete(dateKey string) (bool, error)
}

// Session is the edit state machine. It starts with no selection; every
// Select replaces the selection and loaded record wholesale. The presence of
// a loaded record ID is the sole discriminator between update and create.
type Session struct {
	source     RecordSource
	sink       RecordSink
	analyzer   Analyzer
	confirm    Confirmer
	defaultHex string

	selectedDate string
	recordID     int64
	hasRecord    bool
	mode         Mode

	// Form fields, bound to the UI.
	Content     string
	HexCode     string
	EmotionType string
}

// New creates an empty session. defaultHex seeds the color field in create
// mode; an empty value falls back to the stock default.
func New(source RecordSource, sink RecordSink, analyzer Analyzer, confirm Confirmer, defaultHex string) *Session {
	if record.ValidateHexCode(defaultHex) != nil {
		defaultHex = record.DefaultHexCode
	}
	return &Session{
		source:     source,
		sink:       sink,
		analyzer:   analyzer,
		confirm:    confirm,
		defaultHex: defaultHex,
		HexCode:    defaultHex,
	}
}

// SelectedDate returns the date key currently targeted, or "" when none.
func (s *Session) SelectedDate() string { return s.selectedDate }

// EditMode reports whether an existing record is loaded (update on save,
// delete available).
func (s *Session) EditMode() bool { return s.hasRecord }

// RecordID returns the loaded record's ID; zero in create mode.
func (s *Session) RecordID() int64 { return s.recordID }

// Mode returns the current entry mode.
func (s *Session) Mode() Mode { return s.mode }

// SetMode switches between manual and assisted entry. Switching is
// idempotent, touches no network, and never clears the selection or form.
func (s *Session) SetMode(m Mode) { s.mode = m }

// Select targets a date: the authoritative record for that day is fetched
// and the form is repopulated from it, or reset to defaults when the day has
// no record. A fetch failure leaves the session unchanged.
func (s *Session) Select(ctx context.Context, dateKey string) error {
	if _, err := record.ParseDateKey(dateKey); err != nil {
		return err
	}

	rec, found, err := s.source.LookupRecord(ctx, dateKey)
	if err != nil {
		return fmt.Errorf("loading record for %s: %w", dateKey, err)
	}

	s.selectedDate = dateKey
	if found {
		s.recordID = rec.DiaryID
		s.hasRecord = true
		s.Content = rec.Content
		s.HexCode = rec.HexCode
		s.EmotionType = rec.EmotionType
	} else {
		s.recordID = 0
		s.hasRecord = false
		s.Content = ""
		s.HexCode = s.defaultHex
		s.EmotionType = ""
	}
	return nil
}

// Validate checks the preconditions for a save without touching the network.
func (s *Session) Validate() error {
	if s.selectedDate == "" {
		return &ValidationError{Reason: "no date selected"}
	}
	if err := record.ValidateContent(s.Content); err != nil {
		return &ValidationError{Reason: err.Error()}
	}
	if s.mode == ModeManual {
		if err := record.ValidateHexCode(s.HexCode); err != nil {
			return &ValidationError{Reason: err.Error()}
		}
	}
	return nil
}

// NeedsAnalysis reports whether a save must run the analyzer first.
func (s *Session) NeedsAnalysis() bool { return s.mode == ModeAssisted }

// ApplySuggestion adopts a confirmed analyzer suggestion into the form.
func (s *Session) ApplySuggestion(sug record.Suggestion) {
	s.HexCode = sug.HexCode
	s.EmotionType = sug.EmotionType
}

// Persist issues the create or update call for the current form. It does not
// validate or analyze; callers go through Save unless they drive the steps
// themselves (the dashboard does, to keep confirmations non-blocking).
func (s *Session) Persist(ctx context.Context) (Outcome, error) {
	draft := record.Draft{
		RecordDate: s.selectedDate,
		Content:    strings.TrimSpace(s.Content),
		HexCode:    s.HexCode,
	}
	if s.hasRecord {
		if err := s.sink.UpdateRecord(ctx, s.recordID, draft); err != nil {
			return OutcomeDeclined, err
		}
		return OutcomeUpdated, nil
	}
	if err := s.sink.CreateRecord(ctx, draft); err != nil {
		return OutcomeDeclined, err
	}
	return OutcomeCreated, nil
}

// Save runs the full flow: validation, then in assisted mode analysis plus
// confirmation, then persist. Declining the suggestion aborts with
// OutcomeDeclined and an unchanged session. A failed persist also leaves the
// session untouched; no retry is attempted.
func (s *Session) Save(ctx context.Context) (Outcome, error) {
	if err := s.Validate(); err != nil {
		return OutcomeDeclined, err
	}

	if s.NeedsAnalysis() {
		sug, err := s.analyzer.Analyze(ctx, strings.TrimSpace(s.Content))
		if err != nil {
			return OutcomeDeclined, fmt.Errorf("analyzing content: %w", err)
		}
		ok, err := s.confirm.ConfirmSuggestion(sug)
		if err != nil {
			return OutcomeDeclined, err
		}
		if !ok {
			return OutcomeDeclined, nil
		}
		s.ApplySuggestion(sug)
	}

	return s.Persist(ctx)
}

// Delete removes the loaded record after confirmation. Without a loaded
// record it is a no-op. On success the session drops back to create mode for
// the same date with a reset form.
func (s *Session) Delete(ctx context.Context) (Outcome, error) {
	if !s.hasRecord {
		return OutcomeDeclined, nil
	}
	ok, err := s.confirm.ConfirmDelete(s.selectedDate)
	if err != nil {
		return OutcomeDeclined, err
	}
	if !ok {
		return OutcomeDeclined, nil
	}
	return s.Remove(ctx)
}

// Remove issues the delete call without confirmation; the dashboard
// confirms through its own overlay before calling this.
func (s *Session) Remove(ctx context.Context) (Outcome, error) {
	if !s.hasRecord {
		return OutcomeDeclined, nil
	}
	if err := s.sink.DeleteRecord(ctx, s.recordID); err != nil {
		return OutcomeDeclined, err
	}
	s.recordID = 0
	s.hasRecord = false
	s.Content = ""
	s.HexCode = s.defaultHex
	s.EmotionType = ""
	return OutcomeDeleted, nil
}
