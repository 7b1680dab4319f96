// Package state persists the client-side session state between invocations:
// the advisory logged-in flag and the backend's session cookies. The cookie
// is authoritative for authentication; the flag only decides which of the
// login/logout affordances to show before the first request completes.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const stateFileName = "session.json"

// Cookie is a serializable subset of http.Cookie, enough to replay the
// backend's session cookie on the next run.
type Cookie struct {
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Path    string    `json:"path,omitempty"`
	Domain  string    `json:"domain,omitempty"`
	Expires time.Time `json:"expires,omitempty"`
}

// State is the persisted client session.
type State struct {
	LoggedIn  bool      `json:"logged_in"`
	Cookies   []Cookie  `json:"cookies,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store reads and writes session state under a state directory.
type Store struct {
	dir string
}

// NewStore creates the state directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Dir returns the state directory.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path() string {
	return filepath.Join(s.dir, stateFileName)
}

// Read loads the persisted state. A missing or unparseable file yields the
// zero state (logged out, no cookies) rather than an error.
func (s *Store) Read() State {
	data, err := os.ReadFile(s.path())
	if err != nil {
		return State{}
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}
	}
	return st
}

// Write persists the state, stamping UpdatedAt.
func (s *Store) Write(st State) error {
	st.UpdatedAt = time.Now()
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(), data, 0600)
}

// SetLoggedIn flips the advisory flag without touching stored cookies.
func (s *Store) SetLoggedIn(loggedIn bool) error {
	st := s.Read()
	st.LoggedIn = loggedIn
	return s.Write(st)
}

// Clear removes the persisted state entirely (logout, expired session).
func (s *Store) Clear() error {
	if err := os.Remove(s.path()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
