package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/rased/internal/i18n"
	"github.com/sadopc/rased/internal/review"
)

// reviewModel drives the moderation list. All board mutations happen in
// update, on the event loop.
type reviewModel struct {
	board  *review.Board
	lang   i18n.Lang
	width  int
	height int

	cursor    int // row on the current page
	searching bool
	search    textinput.Model
	notes     textarea.Model
}

func newReviewModel(b *review.Board, lang i18n.Lang) reviewModel {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.CharLimit = 120

	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.SetHeight(4)

	m := reviewModel{board: b, search: ti, notes: ta}
	m.setLang(lang)
	return m
}

func (m *reviewModel) setSize(w, h int) {
	m.width = w
	m.height = h
	m.search.Width = max(10, w-12)
	m.notes.SetWidth(max(20, w-10))
}

func (m *reviewModel) setLang(lang i18n.Lang) {
	m.lang = lang
	m.search.Placeholder = i18n.T(lang, "review.search")
	m.notes.Placeholder = i18n.T(lang, "review.notesHint")
}

// capturing reports whether keys belong to a text field.
func (m reviewModel) capturing() bool {
	_, open := m.board.OpenID()
	return m.searching || open
}

func (m reviewModel) update(msg tea.Msg) (reviewModel, tea.Cmd) {
	if _, open := m.board.OpenID(); open {
		return m.updateDetail(msg)
	}
	if m.searching {
		return m.updateSearch(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	rows := m.board.Rows()
	switch {
	case key.Matches(keyMsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.Left):
		m.board.Prev()
		m.cursor = 0
	case key.Matches(keyMsg, keys.Right):
		m.board.Next()
		m.cursor = 0
	case key.Matches(keyMsg, keys.Search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(keyMsg, keys.Approve):
		if r, ok := m.current(); ok {
			m.board.SetStatus(r.ID, review.StatusApproved)
		}
	case key.Matches(keyMsg, keys.Reject):
		if r, ok := m.current(); ok {
			m.board.SetStatus(r.ID, review.StatusRejected)
		}
	case key.Matches(keyMsg, keys.Enter):
		if r, ok := m.current(); ok {
			m.board.OpenReview(r.ID)
			m.notes.SetValue(r.Notes)
			return m, m.notes.Focus()
		}
	}
	m.clampCursor()
	return m, nil
}

func (m reviewModel) updateSearch(msg tea.Msg) (reviewModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.Enter):
			m.searching = false
			m.search.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.Back):
			m.searching = false
			m.search.Blur()
			m.search.SetValue("")
			m.board.Search("")
			m.cursor = 0
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.board.Query() {
		m.board.Search(m.search.Value())
		m.cursor = 0
	}
	return m, cmd
}

func (m reviewModel) updateDetail(msg tea.Msg) (reviewModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.ApproveClose):
			m.board.ApproveOpen()
			m.notes.Blur()
			m.clampCursor()
			return m, nil
		case key.Matches(keyMsg, keys.RejectClose):
			m.board.RejectOpen()
			m.notes.Blur()
			m.clampCursor()
			return m, nil
		case key.Matches(keyMsg, keys.Back):
			m.board.CloseReview()
			m.notes.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.notes, cmd = m.notes.Update(msg)
	if id, ok := m.board.OpenID(); ok {
		m.board.EditNotes(id, m.notes.Value())
	}
	return m, cmd
}

func (m reviewModel) current() (review.Report, bool) {
	rows := m.board.Rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return review.Report{}, false
	}
	return rows[m.cursor].Report, true
}

func (m *reviewModel) clampCursor() {
	m.cursor = clamp(m.cursor, 0, max(0, len(m.board.Rows())-1))
}

type column struct {
	key   string
	width int
}

func (m reviewModel) columns(w int) []column {
	// Fixed columns first; company and project share the rest.
	period, submitted, status := 10, 17, 14
	rest := max(20, w-period-submitted-status-8)
	cols := []column{
		{"col.company", rest * 2 / 5},
		{"col.project", rest - rest*2/5},
		{"col.period", period},
		{"col.submitted", submitted},
		{"col.status", status},
	}
	return cols
}

func (m reviewModel) view() string {
	w := m.width - 4

	title := titleStyle.Render(i18n.T(m.lang, "review.title")) + "  " +
		accentStyle.Render(i18n.T(m.lang, "review.badge"))
	desc := subtitleStyle.Render(i18n.T(m.lang, "review.description"))

	parts := []string{title, desc, "", m.search.View(), "", m.renderTable(w - 6), "", m.renderPager()}
	if _, open := m.board.OpenID(); !open {
		parts = append(parts, "", mutedStyle.Render(i18n.T(m.lang, "review.hint")))
	}

	list := panelStyle.Width(w).Render(lipgloss.JoinVertical(align(m.lang), parts...))
	if detail := m.renderDetail(w); detail != "" {
		return lipgloss.JoinVertical(lipgloss.Left, list, detail)
	}
	return list
}

func (m reviewModel) renderTable(w int) string {
	cols := m.columns(w)
	rows := m.board.Rows()
	if len(rows) == 0 {
		return mutedStyle.Render(i18n.T(m.lang, "review.empty"))
	}

	render := func(cells []string) string {
		if i18n.Dir(m.lang) == "rtl" {
			for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
				cells[i], cells[j] = cells[j], cells[i]
			}
		}
		return strings.Join(cells, " ")
	}

	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = cell(i18n.T(m.lang, c.key), c.width, m.lang)
	}
	lines := []string{"  " + tableHeaderStyle.Render(render(header))}

	for i, row := range rows {
		r := row.Report
		cells := []string{
			cell(r.CompanyName(m.lang), cols[0].width, m.lang),
			cell(r.ProjectName(m.lang), cols[1].width, m.lang),
			cell(r.Period, cols[2].width, m.lang),
			cell(r.SubmittedAt, cols[3].width, m.lang),
			statusStyle(string(r.Status)).Render(cell(r.Status.Label(m.lang), cols[4].width, m.lang)),
		}

		cursor := "  "
		style := normalItemStyle
		switch {
		case row.Open:
			cursor = "● "
			style = openRowStyle
		case i == m.cursor:
			cursor = "> "
			style = selectedItemStyle
		}
		lines = append(lines, style.Render(cursor)+render(cells))
	}
	return strings.Join(lines, "\n")
}

func (m reviewModel) renderPager() string {
	start, end, total := m.board.Range()
	showing := mutedStyle.Render(i18n.Tf(m.lang, "review.showing", start, end, total))

	prev := mutedStyle.Render(i18n.T(m.lang, "review.prev"))
	if m.board.HasPrev() {
		prev = highlightStyle.Render("← " + i18n.T(m.lang, "review.prev"))
	}
	next := mutedStyle.Render(i18n.T(m.lang, "review.next"))
	if m.board.HasNext() {
		next = highlightStyle.Render(i18n.T(m.lang, "review.next") + " →")
	}
	page := mutedStyle.Render(i18n.Tf(m.lang, "review.page", m.board.CurrentPage(), m.board.TotalPages()))

	return fmt.Sprintf("%s    %s  %s  %s", showing, prev, page, next)
}

func (m reviewModel) renderDetail(w int) string {
	r, ok := m.board.Selected()
	if !ok {
		return ""
	}

	field := func(key, value string) string {
		label := lipgloss.NewStyle().Width(16).Render(i18n.T(m.lang, key))
		return fmt.Sprintf("  %s %s", mutedStyle.Render(label), value)
	}

	content := lipgloss.JoinVertical(align(m.lang),
		titleStyle.Render(i18n.T(m.lang, "review.details")),
		subtitleStyle.Render(i18n.T(m.lang, "review.detailsHint")),
		"",
		field("col.company", r.CompanyName(m.lang)),
		field("col.project", r.ProjectName(m.lang)),
		field("col.period", r.Period),
		field("col.submitted", r.SubmittedAt),
		field("col.status", statusStyle(string(r.Status)).Render(r.Status.Label(m.lang))),
		"",
		mutedStyle.Render(i18n.T(m.lang, "col.notes")),
		m.notes.View(),
		"",
		mutedStyle.Render(i18n.T(m.lang, "review.detailKeys")),
	)
	return activePanelStyle.Width(w).Render(content)
}
