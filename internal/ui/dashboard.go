package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/filter-today/filterctl/internal/api"
	"github.com/filter-today/filterctl/internal/calendar"
	"github.com/filter-today/filterctl/internal/record"
	"github.com/filter-today/filterctl/internal/session"
)

type dashboardFocus int

const (
	focusCalendar dashboardFocus = iota
	focusContent
	focusColor
)

type dashboardOverlay int

const (
	overlayNone dashboardOverlay = iota
	overlaySuggestion
	overlayDelete
)

// Messages carry the month they were requested for, so a late response for a
// month the user has already navigated away from is discarded.
type monthLoadedMsg struct {
	year, month int
	toneMap     record.ToneMap
	stale       bool
	err         error
}

type statsLoadedMsg struct {
	year, month int
	stats       []record.Stat
	err         error
}

type keywordsLoadedMsg struct {
	year, month int
	keywords    []record.Keyword
	err         error
}

type recordSelectedMsg struct {
	dateKey string
	err     error
}

type suggestionMsg struct {
	suggestion record.Suggestion
	err        error
}

type saveDoneMsg struct {
	outcome session.Outcome
	err     error
}

type deleteDoneMsg struct {
	outcome session.Outcome
	dateKey string
	err     error
}

type nicknameMsg struct {
	name string
}

// Dashboard is the interactive month view: a tone-map calendar on the left,
// the edit form for the selected day on the right.
type Dashboard struct {
	client *api.Client
	cache  api.ToneMapCache
	sess   *session.Session
	theme  Theme

	year      int
	month     int
	toneMap   record.ToneMap
	stale     bool
	grid      calendar.Grid
	cursorDay int
	today     time.Time
	nickname  string
	stats     []record.Stat
	keywords  []record.Keyword

	focus   dashboardFocus
	overlay dashboardOverlay
	pending record.Suggestion

	content textarea.Model
	color   textinput.Model
	spin    spinner.Model

	loading   bool
	selecting bool
	saving    bool
	status    string
	errText   string

	width  int
	height int

	quitErr error
}

// NewDashboard builds the dashboard opened on the given month with today's
// date under the cursor when it falls inside that month.
func NewDashboard(client *api.Client, cache api.ToneMapCache, sess *session.Session, theme Theme, year, month int, today time.Time) Dashboard {
	ta := textarea.New()
	ta.Placeholder = "How was your day?"
	ta.CharLimit = 0
	ta.SetWidth(44)
	ta.SetHeight(10)

	ti := textinput.New()
	ti.Placeholder = record.DefaultHexCode
	ti.CharLimit = 7
	ti.SetValue(sess.HexCode)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.AccentStyle()

	grid := calendar.MonthGrid(year, month)
	cursor := 1
	if today.Year() == grid.Year && int(today.Month()) == grid.Month {
		cursor = today.Day()
	}

	return Dashboard{
		client:    client,
		cache:     cache,
		sess:      sess,
		theme:     theme,
		year:      grid.Year,
		month:     grid.Month,
		toneMap:   record.ToneMap{},
		grid:      grid,
		cursorDay: cursor,
		today:     today,
		content:   ta,
		color:     ti,
		spin:      sp,
		loading:   true,
	}
}

// Err returns the error that terminated the dashboard, if any.
func (m Dashboard) Err() error { return m.quitErr }

func (m Dashboard) Init() tea.Cmd {
	return tea.Batch(
		m.loadMonthCmd(m.year, m.month),
		m.loadStatsCmd(m.year, m.month),
		m.loadKeywordsCmd(m.year, m.month),
		m.nicknameCmd(),
		m.spin.Tick,
	)
}

func (m Dashboard) loadMonthCmd(year, month int) tea.Cmd {
	return func() tea.Msg {
		tm, stale, err := api.MonthToneMap(context.Background(), m.client, m.cache, year, month)
		return monthLoadedMsg{year: year, month: month, toneMap: tm, stale: stale, err: err}
	}
}

func (m Dashboard) loadStatsCmd(year, month int) tea.Cmd {
	return func() tea.Msg {
		stats, err := m.client.Stats(context.Background(), year, month)
		return statsLoadedMsg{year: year, month: month, stats: stats, err: err}
	}
}

func (m Dashboard) loadKeywordsCmd(year, month int) tea.Cmd {
	return func() tea.Msg {
		kws, err := m.client.Keywords(context.Background(), year, month)
		return keywordsLoadedMsg{year: year, month: month, keywords: kws, err: err}
	}
}

func (m Dashboard) nicknameCmd() tea.Cmd {
	return func() tea.Msg {
		name, err := m.client.Nickname(context.Background())
		if err != nil {
			return nicknameMsg{name: "Guest"}
		}
		return nicknameMsg{name: name}
	}
}

func (m Dashboard) selectCmd(dateKey string) tea.Cmd {
	return func() tea.Msg {
		err := m.sess.Select(context.Background(), dateKey)
		return recordSelectedMsg{dateKey: dateKey, err: err}
	}
}

func (m Dashboard) analyzeCmd() tea.Cmd {
	content := strings.TrimSpace(m.sess.Content)
	return func() tea.Msg {
		sug, err := m.client.Analyze(context.Background(), content)
		return suggestionMsg{suggestion: sug, err: err}
	}
}

func (m Dashboard) persistCmd() tea.Cmd {
	return func() tea.Msg {
		outcome, err := m.sess.Persist(context.Background())
		return saveDoneMsg{outcome: outcome, err: err}
	}
}

func (m Dashboard) removeCmd(dateKey string) tea.Cmd {
	return func() tea.Msg {
		outcome, err := m.sess.Remove(context.Background())
		return deleteDoneMsg{outcome: outcome, dateKey: dateKey, err: err}
	}
}

func (m Dashboard) cursorKey() string {
	return record.DateKey(time.Date(m.grid.Year, time.Month(m.grid.Month), m.cursorDay, 0, 0, 0, 0, time.Local))
}

func (m *Dashboard) setMonth(year, month int) tea.Cmd {
	for month < 1 {
		month += 12
		year--
	}
	for month > 12 {
		month -= 12
		year++
	}
	m.grid = calendar.MonthGrid(year, month)
	m.year = m.grid.Year
	m.month = m.grid.Month
	if m.cursorDay > m.grid.DayCount {
		m.cursorDay = m.grid.DayCount
	}
	m.toneMap = record.ToneMap{}
	m.stale = false
	m.stats = nil
	m.keywords = nil
	m.loading = true
	return tea.Batch(
		m.loadMonthCmd(m.year, m.month),
		m.loadStatsCmd(m.year, m.month),
		m.loadKeywordsCmd(m.year, m.month),
	)
}

func (m *Dashboard) syncForm() {
	m.content.SetValue(m.sess.Content)
	m.color.SetValue(m.sess.HexCode)
}

func (m Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := msg.Width/2 - 6
		if w < 30 {
			w = 30
		}
		m.content.SetWidth(w)
		return m, nil

	case monthLoadedMsg:
		if msg.year != m.year || msg.month != m.month {
			// response for a month we already left
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.quitErr = msg.err
			return m, tea.Quit
		}
		m.toneMap = msg.toneMap
		m.stale = msg.stale
		return m, nil

	case statsLoadedMsg:
		if msg.year != m.year || msg.month != m.month || msg.err != nil {
			return m, nil
		}
		m.stats = msg.stats
		return m, nil

	case keywordsLoadedMsg:
		if msg.year != m.year || msg.month != m.month || msg.err != nil {
			return m, nil
		}
		m.keywords = msg.keywords
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case nicknameMsg:
		m.nickname = msg.name
		return m, nil

	case recordSelectedMsg:
		m.selecting = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			if isAuthErr(msg.err) {
				m.quitErr = msg.err
				return m, tea.Quit
			}
			return m, nil
		}
		m.errText = ""
		m.syncForm()
		m.focus = focusContent
		m.content.Focus()
		m.color.Blur()
		return m, textarea.Blink

	case suggestionMsg:
		m.saving = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			if isAuthErr(msg.err) {
				m.quitErr = msg.err
				return m, tea.Quit
			}
			return m, nil
		}
		m.pending = msg.suggestion
		m.overlay = overlaySuggestion
		return m, nil

	case saveDoneMsg:
		m.saving = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			if isAuthErr(msg.err) {
				m.quitErr = msg.err
				return m, tea.Quit
			}
			return m, nil
		}
		m.errText = ""
		m.status = fmt.Sprintf("Saved %s", m.sess.SelectedDate())
		// paint the new tone in place, then reload the record to pick up
		// the server-assigned ID on a create
		m.toneMap[m.sess.SelectedDate()] = record.Summary{
			HexCode:     m.sess.HexCode,
			Content:     strings.TrimSpace(m.sess.Content),
			EmotionType: m.sess.EmotionType,
		}
		m.selecting = true
		return m, tea.Batch(
			m.selectCmd(m.sess.SelectedDate()),
			m.loadStatsCmd(m.year, m.month),
			m.loadKeywordsCmd(m.year, m.month),
		)

	case deleteDoneMsg:
		m.saving = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			if isAuthErr(msg.err) {
				m.quitErr = msg.err
				return m, tea.Quit
			}
			return m, nil
		}
		if msg.outcome == session.OutcomeDeleted {
			delete(m.toneMap, msg.dateKey)
			m.status = fmt.Sprintf("Deleted %s", msg.dateKey)
			m.syncForm()
			return m, tea.Batch(
				m.loadStatsCmd(m.year, m.month),
				m.loadKeywordsCmd(m.year, m.month),
			)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Dashboard) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != overlayNone {
		return m.handleOverlayKey(msg)
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+s":
		return m.startSave()
	case "ctrl+t":
		if m.sess.Mode() == session.ModeManual {
			m.sess.SetMode(session.ModeAssisted)
		} else {
			m.sess.SetMode(session.ModeManual)
		}
		m.status = fmt.Sprintf("Entry mode: %s", m.sess.Mode())
		return m, nil
	}

	switch m.focus {
	case focusCalendar:
		return m.handleCalendarKey(msg)
	case focusContent:
		return m.handleContentKey(msg)
	case focusColor:
		return m.handleColorKey(msg)
	}
	return m, nil
}

func (m Dashboard) handleCalendarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "left", "h":
		if m.cursorDay > 1 {
			m.cursorDay--
		}
		return m, nil
	case "right", "l":
		if m.cursorDay < m.grid.DayCount {
			m.cursorDay++
		}
		return m, nil
	case "up", "k":
		if m.cursorDay > 7 {
			m.cursorDay -= 7
		}
		return m, nil
	case "down", "j":
		if m.cursorDay+7 <= m.grid.DayCount {
			m.cursorDay += 7
		}
		return m, nil
	case "pgup", "[":
		return m, m.setMonth(m.year, m.month-1)
	case "pgdown", "]":
		return m, m.setMonth(m.year, m.month+1)
	case "t":
		return m, m.setMonth(m.today.Year(), int(m.today.Month()))
	case "enter":
		if m.selecting {
			return m, nil
		}
		key := m.cursorKey()
		day := time.Date(m.grid.Year, time.Month(m.grid.Month), m.cursorDay, 0, 0, 0, 0, time.Local)
		todayMidnight := time.Date(m.today.Year(), m.today.Month(), m.today.Day(), 0, 0, 0, 0, time.Local)
		if day.After(todayMidnight) {
			m.status = fmt.Sprintf("%s is in the future", key)
			return m, nil
		}
		m.selecting = true
		m.status = ""
		return m, m.selectCmd(key)
	case "d":
		if m.sess.EditMode() && m.sess.SelectedDate() != "" {
			m.overlay = overlayDelete
		}
		return m, nil
	}
	return m, nil
}

func (m Dashboard) handleContentKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.content.Blur()
		m.focus = focusCalendar
		m.sess.Content = m.content.Value()
		return m, nil
	case "tab":
		m.content.Blur()
		m.sess.Content = m.content.Value()
		m.focus = focusColor
		m.color.Focus()
		return m, textinput.Blink
	}
	var cmd tea.Cmd
	m.content, cmd = m.content.Update(msg)
	m.sess.Content = m.content.Value()
	return m, cmd
}

func (m Dashboard) handleColorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.color.Blur()
		m.sess.HexCode = m.color.Value()
		m.focus = focusCalendar
		return m, nil
	case "tab":
		m.color.Blur()
		m.sess.HexCode = m.color.Value()
		m.focus = focusContent
		m.content.Focus()
		return m, textarea.Blink
	}
	var cmd tea.Cmd
	m.color, cmd = m.color.Update(msg)
	m.sess.HexCode = m.color.Value()
	return m, cmd
}

func (m Dashboard) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.overlay {
	case overlaySuggestion:
		switch strings.ToLower(msg.String()) {
		case "y", "enter":
			m.overlay = overlayNone
			m.sess.ApplySuggestion(m.pending)
			m.color.SetValue(m.sess.HexCode)
			m.saving = true
			return m, m.persistCmd()
		case "n", "esc", "ctrl+c":
			m.overlay = overlayNone
			m.status = "Suggestion declined, record not saved"
			return m, nil
		}
	case overlayDelete:
		switch strings.ToLower(msg.String()) {
		case "y":
			m.overlay = overlayNone
			m.saving = true
			return m, m.removeCmd(m.sess.SelectedDate())
		case "n", "esc", "enter", "ctrl+c":
			m.overlay = overlayNone
			return m, nil
		}
	}
	return m, nil
}

func (m Dashboard) startSave() (tea.Model, tea.Cmd) {
	if m.saving {
		// one request at a time
		return m, nil
	}
	m.sess.Content = m.content.Value()
	m.sess.HexCode = m.color.Value()
	if err := m.sess.Validate(); err != nil {
		m.errText = err.Error()
		return m, nil
	}
	m.errText = ""
	m.saving = true
	if m.sess.NeedsAnalysis() {
		return m, m.analyzeCmd()
	}
	return m, m.persistCmd()
}

func isAuthErr(err error) bool {
	return errors.Is(err, api.ErrAuthExpired)
}

func (m Dashboard) View() string {
	left := m.viewCalendarPane()
	right := m.viewFormPane()

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.BorderStyle().Padding(0, 1).Render(left),
		" ",
		m.theme.BorderStyle().Padding(0, 1).Render(right),
	)

	var b strings.Builder
	header := "Filter.today"
	if m.nickname != "" {
		header = fmt.Sprintf("Filter.today — %s", m.nickname)
	}
	b.WriteString(m.theme.HeaderStyle().Render(header))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m Dashboard) viewCalendarPane() string {
	var b strings.Builder
	if m.loading {
		b.WriteString(m.spin.View())
		b.WriteString(" ")
		b.WriteString(m.theme.MutedStyle().Render("Loading month..."))
		b.WriteString("\n")
	}
	cells := calendar.BuildCells(m.grid, m.toneMap, m.cursorKey(), m.today)
	b.WriteString(RenderCalendar(m.grid, cells, m.theme, m.stale))
	b.WriteString("\n")
	b.WriteString(RenderEmotionLegend())
	if len(m.stats) > 0 {
		b.WriteString("\n\n")
		b.WriteString(m.theme.HeaderStyle().Render("This month"))
		b.WriteString("\n")
		b.WriteString(RenderStatsChart(m.stats, m.theme))
	}
	if len(m.keywords) > 0 {
		b.WriteString("\n\n")
		b.WriteString(m.theme.HeaderStyle().Render("Keywords"))
		b.WriteString("\n")
		b.WriteString(RenderKeywordCloud(m.keywords, 36, m.theme))
	}
	return b.String()
}

func (m Dashboard) viewFormPane() string {
	var b strings.Builder

	if m.sess.SelectedDate() == "" {
		b.WriteString(m.theme.MutedStyle().Render("Select a day to write."))
		b.WriteString("\n\n")
		b.WriteString(m.theme.HelpStyle().Render("enter: open day  [/]: month  t: today"))
		return b.String()
	}

	action := "New record"
	if m.sess.EditMode() {
		action = "Editing"
	}
	b.WriteString(m.theme.AccentStyle().Render(fmt.Sprintf("%s — %s", action, m.sess.SelectedDate())))
	b.WriteString("\n")
	b.WriteString(m.theme.MutedStyle().Render(fmt.Sprintf("mode: %s", m.sess.Mode())))
	b.WriteString("\n\n")
	b.WriteString(m.content.View())
	b.WriteString("\n\n")

	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(m.sess.HexCode)).Render("■")
	b.WriteString(fmt.Sprintf("Tone %s %s", swatch, m.color.View()))

	switch m.overlay {
	case overlaySuggestion:
		b.WriteString("\n\n")
		label := record.EmotionLabel(m.pending.EmotionType)
		sw := lipgloss.NewStyle().Foreground(lipgloss.Color(m.pending.HexCode)).Render("■")
		b.WriteString(m.theme.AccentStyle().Render(
			fmt.Sprintf("Suggested: %s %s (%s) — accept? [y/N]", sw, label, m.pending.HexCode)))
	case overlayDelete:
		b.WriteString("\n\n")
		b.WriteString(m.theme.DangerStyle().Render(
			fmt.Sprintf("Delete record for %s? [y/N]", m.sess.SelectedDate())))
	}

	return b.String()
}

func (m Dashboard) viewFooter() string {
	var b strings.Builder
	if m.errText != "" {
		b.WriteString(m.theme.DangerStyle().Render(m.errText))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(m.theme.AccentStyle().Render(m.status))
		b.WriteString("\n")
	}

	if m.saving {
		b.WriteString(m.spin.View())
		b.WriteString(" ")
		b.WriteString(m.theme.HelpStyle().Render("saving..."))
		return b.String()
	}
	b.WriteString(m.theme.HelpStyle().Render("enter: open  ctrl+s: save  ctrl+t: mode  d: delete  [/]: month  q: quit"))
	return b.String()
}

// RunDashboard runs the dashboard as a full-screen program.
func RunDashboard(m Dashboard) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if d, ok := final.(Dashboard); ok && d.Err() != nil {
		return d.Err()
	}
	return nil
}
