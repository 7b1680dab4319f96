package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/filter-today/filterctl/internal/record"
	"github.com/filter-today/filterctl/internal/state"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *state.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store, err := state.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	c, err := New(srv.URL, store)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, store
}

func TestLoginPersistsCookieAndFlag(t *testing.T) {
	c, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/member/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		http.SetCookie(w, &http.Cookie{Name: "JSESSIONID", Value: "s3cret", Path: "/"})
		w.WriteHeader(http.StatusOK)
	}))

	if err := c.Login(context.Background(), "a@b.c", "pw"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	st := store.Read()
	if !st.LoggedIn {
		t.Error("logged-in flag not set")
	}
	var found bool
	for _, ck := range st.Cookies {
		if ck.Name == "JSESSIONID" && ck.Value == "s3cret" {
			found = true
		}
	}
	if !found {
		t.Errorf("session cookie not persisted: %+v", st.Cookies)
	}
}

func TestLoginFailureSurfacesServerMessage(t *testing.T) {
	c, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "wrong password"}`))
	}))

	err := c.Login(context.Background(), "a@b.c", "nope")
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Code != http.StatusBadRequest || se.Message != "wrong password" {
		t.Errorf("StatusError = %+v", se)
	}
	if store.Read().LoggedIn {
		t.Error("failed login must not set the flag")
	}
}

func TestRequestsReplayStoredCookie(t *testing.T) {
	var gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ck, err := r.Cookie("JSESSIONID"); err == nil {
			gotCookie = ck.Value
		}
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	store, err := state.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := store.Write(state.State{
		LoggedIn: true,
		Cookies:  []state.Cookie{{Name: "JSESSIONID", Value: "restored", Path: "/", Expires: time.Now().Add(time.Hour)}},
	}); err != nil {
		t.Fatalf("seeding state: %v", err)
	}

	c, err := New(srv.URL, store)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.ToneMap(context.Background(), 2024, 2); err != nil {
		t.Fatalf("ToneMap: %v", err)
	}
	if gotCookie != "restored" {
		t.Errorf("cookie on request = %q, want restored", gotCookie)
	}
}

func TestAuthExpiredClearsFlag(t *testing.T) {
	c, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	if err := store.SetLoggedIn(true); err != nil {
		t.Fatalf("seeding flag: %v", err)
	}

	_, err := c.ToneMap(context.Background(), 2024, 2)
	if !errors.Is(err, ErrAuthExpired) {
		t.Fatalf("expected ErrAuthExpired, got %v", err)
	}
	if store.Read().LoggedIn {
		t.Error("401 must clear the logged-in flag")
	}
}

func TestForbiddenAlsoExpiresSession(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	_, err := c.Record(context.Background(), "2024-02-10")
	if !errors.Is(err, ErrAuthExpired) {
		t.Fatalf("expected ErrAuthExpired, got %v", err)
	}
}

func TestToneMapDecodes(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("month"); got != "02" {
			t.Errorf("month query = %q, want zero-padded 02", got)
		}
		w.Write([]byte(`{"2024-02-10": {"hexCode": "#ff9900", "content": "good day"}}`))
	}))

	tm, err := c.ToneMap(context.Background(), 2024, 2)
	if err != nil {
		t.Fatalf("ToneMap: %v", err)
	}
	s, ok := tm["2024-02-10"]
	if !ok || s.HexCode != "#ff9900" || s.Content != "good day" {
		t.Errorf("tone map = %+v", tm)
	}
}

func TestRecordNoContentMeansNoRecord(t *testing.T) {
	responses := []func(w http.ResponseWriter){
		func(w http.ResponseWriter) { w.WriteHeader(http.StatusNoContent) },
		func(w http.ResponseWriter) { w.WriteHeader(http.StatusOK) }, // empty body
		func(w http.ResponseWriter) { w.Write([]byte(`{"diaryId": 0, "content": ""}`)) },
	}
	i := 0
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		responses[i](w)
	}))

	for i = range responses {
		_, err := c.Record(context.Background(), "2024-02-10")
		if !errors.Is(err, ErrNoRecord) {
			t.Errorf("response %d: expected ErrNoRecord, got %v", i, err)
		}
	}
}

func TestRecordFound(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("recordDate"); got != "2024-02-10" {
			t.Errorf("recordDate = %q", got)
		}
		w.Write([]byte(`{"diaryId": 7, "recordDate": "2024-02-10", "content": "good day", "hexCode": "#ff9900", "emotionType": "JOY"}`))
	}))

	r, err := c.Record(context.Background(), "2024-02-10")
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if r.DiaryID != 7 || r.Content != "good day" || r.HexCode != "#ff9900" {
		t.Errorf("record = %+v", r)
	}
}

func TestCreateUpdateDeleteVerbsAndPaths(t *testing.T) {
	type call struct{ method, path string }
	var calls []call
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{r.Method, r.URL.Path})
		w.WriteHeader(http.StatusOK)
	}))

	ctx := context.Background()
	draft := record.Draft{RecordDate: "2024-02-10", Content: "good day", HexCode: "#ff9900"}
	if err := c.CreateRecord(ctx, draft); err != nil {
		t.Fatalf("CreateRecord: %v", err)
	}
	if err := c.UpdateRecord(ctx, 7, draft); err != nil {
		t.Fatalf("UpdateRecord: %v", err)
	}
	if err := c.DeleteRecord(ctx, 7); err != nil {
		t.Fatalf("DeleteRecord: %v", err)
	}

	want := []call{
		{http.MethodPost, "/api/diary"},
		{http.MethodPut, "/api/diary/7"},
		{http.MethodDelete, "/api/diary/7"},
	}
	if len(calls) != len(want) {
		t.Fatalf("calls = %+v", calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %+v, want %+v", i, calls[i], want[i])
		}
	}
}

func TestAnalyze(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/diary/analyze" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"hexCode": "#FFD700", "emotionType": "JOY"}`))
	}))

	s, err := c.Analyze(context.Background(), "I felt great")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if s.HexCode != "#FFD700" || s.EmotionType != "JOY" {
		t.Errorf("suggestion = %+v", s)
	}
}

func TestNicknamePlainText(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("moody\n"))
	}))
	nick, err := c.Nickname(context.Background())
	if err != nil {
		t.Fatalf("Nickname: %v", err)
	}
	if nick != "moody" {
		t.Errorf("nickname = %q", nick)
	}
}

func TestLogoutClearsStateEvenOnServerError(t *testing.T) {
	c, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	if err := store.SetLoggedIn(true); err != nil {
		t.Fatalf("seeding flag: %v", err)
	}
	if err := c.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if store.Read().LoggedIn {
		t.Error("logout must clear local state regardless of response")
	}
}

func TestRequestsCarryCorrelationID(t *testing.T) {
	var gotID string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`{}`))
	}))
	if _, err := c.ToneMap(context.Background(), 2024, 2); err != nil {
		t.Fatalf("ToneMap: %v", err)
	}
	if len(gotID) != 12 {
		t.Errorf("X-Request-Id = %q, want 12 chars", gotID)
	}
}
