// Package api is the HTTP client for the Filter.today backend. Every call
// attaches the persisted session cookie; 401/403 responses surface as
// ErrAuthExpired after clearing the local logged-in flag.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/filter-today/filterctl/internal/record"
	"github.com/filter-today/filterctl/internal/state"
)

const (
	requestIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	requestIDLength   = 12
)

// Client talks to the Filter.today REST backend.
type Client struct {
	base  *url.URL
	httpc *http.Client
	jar   http.CookieJar
	store *state.Store // nil disables cookie/flag persistence
}

// New builds a client for baseURL, preloading any session cookies persisted
// in the state store.
func New(baseURL string, store *state.Store) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base URL %q must include scheme and host", baseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	c := &Client{
		base:  base,
		httpc: &http.Client{Jar: jar, Timeout: 15 * time.Second},
		jar:   jar,
		store: store,
	}

	if store != nil {
		st := store.Read()
		cookies := make([]*http.Cookie, 0, len(st.Cookies))
		for _, sc := range st.Cookies {
			cookies = append(cookies, &http.Cookie{
				Name:    sc.Name,
				Value:   sc.Value,
				Path:    sc.Path,
				Domain:  sc.Domain,
				Expires: sc.Expires,
			})
		}
		if len(cookies) > 0 {
			jar.SetCookies(base, cookies)
		}
	}

	return c, nil
}

// newRequest builds a JSON request with an X-Request-Id correlation header.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if id, err := gonanoid.Generate(requestIDAlphabet, requestIDLength); err == nil {
		req.Header.Set("X-Request-Id", id)
	}
	return req, nil
}

// do executes a request. 401/403 clears the logged-in flag and returns
// ErrAuthExpired; any other status is left to the caller.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		resp.Body.Close()
		if c.store != nil {
			_ = c.store.SetLoggedIn(false)
		}
		return nil, ErrAuthExpired
	}
	return resp, nil
}

// statusError drains the body for a {"message": ...} payload and wraps the
// status into a StatusError.
func statusError(op string, resp *http.Response) error {
	defer resp.Body.Close()
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&payload)
	return &StatusError{Op: op, Code: resp.StatusCode, Message: payload.Message}
}

// persistCookies saves the jar's cookies for the base URL into the state store.
func (c *Client) persistCookies(loggedIn bool) {
	if c.store == nil {
		return
	}
	st := c.store.Read()
	st.LoggedIn = loggedIn
	st.Cookies = st.Cookies[:0]
	for _, ck := range c.jar.Cookies(c.base) {
		st.Cookies = append(st.Cookies, state.Cookie{
			Name:    ck.Name,
			Value:   ck.Value,
			Path:    ck.Path,
			Domain:  ck.Domain,
			Expires: ck.Expires,
		})
	}
	_ = c.store.Write(st)
}

// Login authenticates and persists the session cookie plus the logged-in flag.
func (c *Client) Login(ctx context.Context, email, password string) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/member/login", nil, map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError("login", resp)
	}
	io.Copy(io.Discard, resp.Body)
	c.persistCookies(true)
	return nil
}

// Signup registers a new member. No session is established.
func (c *Client) Signup(ctx context.Context, email, password, nickname string) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/member/signup", nil, map[string]string{
		"email":    email,
		"password": password,
		"nickname": nickname,
	})
	if err != nil {
		return err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError("signup", resp)
	}
	return nil
}

// Logout posts to the backend's logout endpoint. The local flag and cookies
// are cleared regardless of the outcome; the request itself is best-effort.
func (c *Client) Logout(ctx context.Context) error {
	defer func() {
		if c.store != nil {
			_ = c.store.Clear()
		}
	}()

	req, err := c.newRequest(ctx, http.MethodPost, "/logout", nil, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// RecoverPassword requests a password-reset mail for email.
func (c *Client) RecoverPassword(ctx context.Context, email string) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/member/find-password", nil, map[string]string{
		"email": email,
	})
	if err != nil {
		return err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError("find-password", resp)
	}
	return nil
}

func monthQuery(year, month int) url.Values {
	q := url.Values{}
	q.Set("year", strconv.Itoa(year))
	q.Set("month", fmt.Sprintf("%02d", month))
	return q
}

// ToneMap fetches the monthly tone map: dateKey -> record summary.
func (c *Client) ToneMap(ctx context.Context, year, month int) (record.ToneMap, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/analysis/tonemap", monthQuery(year, month), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, statusError("tonemap", resp)
	}
	var tm record.ToneMap
	if err := json.NewDecoder(resp.Body).Decode(&tm); err != nil {
		return nil, fmt.Errorf("tonemap: decoding response: %w", err)
	}
	if tm == nil {
		tm = record.ToneMap{}
	}
	return tm, nil
}

// Stats fetches the monthly emotion distribution.
func (c *Client) Stats(ctx context.Context, year, month int) ([]record.Stat, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/analysis/stats", monthQuery(year, month), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, statusError("stats", resp)
	}
	var stats []record.Stat
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, fmt.Errorf("stats: decoding response: %w", err)
	}
	return stats, nil
}

// Keywords fetches the monthly keyword cloud.
func (c *Client) Keywords(ctx context.Context, year, month int) ([]record.Keyword, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/diary/analysis/keywords", monthQuery(year, month), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, statusError("keywords", resp)
	}
	var kws []record.Keyword
	if err := json.NewDecoder(resp.Body).Decode(&kws); err != nil {
		return nil, fmt.Errorf("keywords: decoding response: %w", err)
	}
	return kws, nil
}

// Record fetches the single record for a date key. A 204, an empty body, or
// a body with no content all mean ErrNoRecord: the backend does not
// distinguish "absent" from "empty", and neither does the client.
func (c *Client) Record(ctx context.Context, dateKey string) (record.Record, error) {
	q := url.Values{}
	q.Set("recordDate", dateKey)
	req, err := c.newRequest(ctx, http.MethodGet, "/api/diary", q, nil)
	if err != nil {
		return record.Record{}, err
	}
	resp, err := c.do(req)
	if err != nil {
		return record.Record{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return record.Record{}, ErrNoRecord
	}
	if resp.StatusCode != http.StatusOK {
		return record.Record{}, statusError("record", resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return record.Record{}, fmt.Errorf("record: reading response: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return record.Record{}, ErrNoRecord
	}
	var r record.Record
	if err := json.Unmarshal(data, &r); err != nil {
		return record.Record{}, fmt.Errorf("record: decoding response: %w", err)
	}
	if r.Content == "" {
		return record.Record{}, ErrNoRecord
	}
	return r, nil
}

// LookupRecord wraps Record into the (record, found, error) shape the edit
// session consumes: ErrNoRecord becomes found=false rather than an error.
func (c *Client) LookupRecord(ctx context.Context, dateKey string) (record.Record, bool, error) {
	r, err := c.Record(ctx, dateKey)
	if errors.Is(err, ErrNoRecord) {
		return record.Record{}, false, nil
	}
	if err != nil {
		return record.Record{}, false, err
	}
	return r, true, nil
}

// CreateRecord persists a new record.
func (c *Client) CreateRecord(ctx context.Context, draft record.Draft) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/diary", nil, draft)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError("create record", resp)
	}
	return nil
}

// UpdateRecord replaces an existing record by ID.
func (c *Client) UpdateRecord(ctx context.Context, id int64, draft record.Draft) error {
	req, err := c.newRequest(ctx, http.MethodPut, fmt.Sprintf("/api/diary/%d", id), nil, draft)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError("update record", resp)
	}
	return nil
}

// DeleteRecord removes a record by ID.
func (c *Client) DeleteRecord(ctx context.Context, id int64) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/diary/%d", id), nil, nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError("delete record", resp)
	}
	return nil
}

// Analyze submits content for emotion analysis and returns the suggestion.
func (c *Client) Analyze(ctx context.Context, content string) (record.Suggestion, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/diary/analyze", nil, map[string]string{
		"content": content,
	})
	if err != nil {
		return record.Suggestion{}, err
	}
	resp, err := c.do(req)
	if err != nil {
		return record.Suggestion{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return record.Suggestion{}, statusError("analyze", resp)
	}
	var s record.Suggestion
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return record.Suggestion{}, fmt.Errorf("analyze: decoding response: %w", err)
	}
	return s, nil
}

// Nickname fetches the member's display name as plain text. The backend
// answers "Guest" for anonymous callers.
func (c *Client) Nickname(ctx context.Context) (string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/diary/nickname", nil, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", statusError("nickname", resp)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1024))
	if err != nil {
		return "", fmt.Errorf("nickname: reading response: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
