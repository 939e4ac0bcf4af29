package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/sadopc/rased/internal/contractor"
	"github.com/sadopc/rased/internal/i18n"
	"github.com/sadopc/rased/internal/project"
	"github.com/sadopc/rased/internal/review"
	"github.com/sadopc/rased/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestDeps(t *testing.T) Deps {
	t.Helper()
	s := newTestStore(t)
	return Deps{
		Store:       s,
		Lang:        i18n.NewContext(i18n.EN),
		Board:       review.NewSeededBoard(review.DefaultPageSize),
		Projects:    project.NewSeededCatalog(review.DefaultPageSize),
		Contractors: contractor.Open(s, zap.NewNop()),
		Roller:      contractor.NewRoller(1),
		Log:         zap.NewNop(),
		ExportDir:   t.TempDir(),
	}
}

// newTestApp returns a sized App.
func newTestApp(t *testing.T) App {
	t.Helper()
	app := NewApp(newTestDeps(t))
	t.Cleanup(app.Close)
	m, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m.(App)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends each key and returns the resulting App and the last command.
func press(t *testing.T, a App, msgs ...tea.Msg) (App, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var m tea.Model
		m, cmd = a.Update(msg)
		a = m.(App)
	}
	return a, cmd
}

func status(t *testing.T, b *review.Board, id string) review.Report {
	t.Helper()
	r, ok := b.Store().Get(id)
	if !ok {
		t.Fatalf("report %s not found", id)
	}
	return r
}

// ============================================================
// App
// ============================================================

func TestNewApp(t *testing.T) {
	app := NewApp(newTestDeps(t))
	defer app.Close()

	if app.activeView != viewDashboard {
		t.Fatal("default view should be dashboard")
	}
	if app.showHelp {
		t.Fatal("help should be hidden by default")
	}
	if app.exportPicking {
		t.Fatal("export picker should be hidden by default")
	}
	if app.isFormActive() {
		t.Fatal("no forms should be active initially")
	}
}

func TestAppLoadingState(t *testing.T) {
	app := NewApp(newTestDeps(t))
	defer app.Close()

	if output := app.View(); output != "Loading..." {
		t.Fatalf("expected 'Loading...', got %q", output)
	}
}

func TestAppViewStates(t *testing.T) {
	app := newTestApp(t)

	for _, v := range []viewState{viewDashboard, viewReview, viewProjects, viewContractor, viewSettings} {
		app.activeView = v
		if output := app.View(); output == "" {
			t.Fatalf("view %d rendered empty", v)
		}
	}
}

func TestAppTabKeys(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		key  string
		want viewState
	}{
		{"2", viewReview},
		{"3", viewProjects},
		{"4", viewContractor},
		{"5", viewSettings},
		{"1", viewDashboard},
	}
	for _, tt := range tests {
		app, _ = press(t, app, runes(tt.key))
		if app.activeView != tt.want {
			t.Fatalf("after %q active view = %d, want %d", tt.key, app.activeView, tt.want)
		}
	}

	app, _ = press(t, app, tea.KeyMsg{Type: tea.KeyTab})
	if app.activeView != viewReview {
		t.Fatalf("tab should move to review, got %d", app.activeView)
	}
}

func TestAppRenderHeaderContainsAllTabs(t *testing.T) {
	app := newTestApp(t)

	header := app.renderHeader()
	for _, name := range viewNames(i18n.EN) {
		if !strings.Contains(header, name) {
			t.Fatalf("header missing tab %q", name)
		}
	}
}

func TestAppStatusMessage(t *testing.T) {
	app := newTestApp(t)
	app, _ = press(t, app, statusMsg{text: "test status"})

	if !strings.Contains(app.renderFooter(), "test status") {
		t.Fatal("footer should contain status message")
	}
}

func TestAppFooterShowsPending(t *testing.T) {
	app := newTestApp(t)
	if !strings.Contains(app.renderFooter(), "6 Pending") {
		t.Fatalf("footer should show pending count, got %q", app.renderFooter())
	}
}

// ============================================================
// Language
// ============================================================

func TestLanguageToggle(t *testing.T) {
	app := newTestApp(t)

	app, _ = press(t, app, runes("L"))
	if app.deps.Lang.Lang() != i18n.AR {
		t.Fatalf("context language = %q, want ar", app.deps.Lang.Lang())
	}

	msg := waitForLang(app.langCh)()
	if _, ok := msg.(langChangedMsg); !ok {
		t.Fatalf("expected langChangedMsg, got %T", msg)
	}

	app, _ = press(t, app, msg)
	if app.lang != i18n.AR || app.review.lang != i18n.AR || app.dashboard.lang != i18n.AR {
		t.Fatal("language not applied to all views")
	}
	for _, name := range viewNames(i18n.AR) {
		if !strings.Contains(app.renderHeader(), name) {
			t.Fatalf("header missing Arabic tab %q", name)
		}
	}
}

func TestSettingsApplySetsContext(t *testing.T) {
	app := newTestApp(t)

	cmd := app.settings.apply(i18n.AR)
	if cmd == nil {
		t.Fatal("apply should return a command")
	}
	if app.deps.Lang.Lang() != i18n.AR {
		t.Fatalf("context language = %q, want ar", app.deps.Lang.Lang())
	}
}

// ============================================================
// Review
// ============================================================

func TestReviewInlineActions(t *testing.T) {
	app := newTestApp(t)
	board := app.deps.Board

	app, _ = press(t, app, runes("2"), runes("a"))
	if got := status(t, board, "r-1001").Status; got != review.StatusApproved {
		t.Fatalf("r-1001 status = %q, want approved", got)
	}

	app, _ = press(t, app, runes("j"), runes("r"))
	if got := status(t, board, "r-1002").Status; got != review.StatusRejected {
		t.Fatalf("r-1002 status = %q, want rejected", got)
	}
	if _, open := board.OpenID(); open {
		t.Fatal("inline actions must not open a review")
	}
}

func TestReviewPaging(t *testing.T) {
	app := newTestApp(t)
	board := app.deps.Board

	app, _ = press(t, app, runes("2"), runes("j"), runes("l"))
	if board.CurrentPage() != 2 {
		t.Fatalf("page = %d, want 2", board.CurrentPage())
	}
	if app.review.cursor != 0 {
		t.Fatal("cursor should reset on page change")
	}

	app, _ = press(t, app, runes("l"), runes("l"))
	if board.CurrentPage() != 3 {
		t.Fatalf("page = %d, want 3 (saturated)", board.CurrentPage())
	}

	press(t, app, runes("h"))
	if board.CurrentPage() != 2 {
		t.Fatalf("page = %d, want 2", board.CurrentPage())
	}
}

func TestReviewSearch(t *testing.T) {
	app := newTestApp(t)
	board := app.deps.Board

	app, _ = press(t, app, runes("2"), runes("l"), runes("/"))
	if !app.isFormActive() {
		t.Fatal("search should capture keys")
	}

	app, _ = press(t, app, runes("q"), runes("u"), runes("b"), runes("a"))
	if board.Query() != "quba" {
		t.Fatalf("query = %q, want quba", board.Query())
	}
	if n := len(board.Filtered()); n != 1 {
		t.Fatalf("filtered = %d, want 1", n)
	}
	if board.CurrentPage() != 1 {
		t.Fatal("changed query should reset to page 1")
	}
	if app.activeView != viewReview {
		t.Fatal("typing q in search must not quit or switch views")
	}

	app, _ = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	if app.isFormActive() || board.Query() != "quba" {
		t.Fatal("enter should leave search and keep the query")
	}

	app, _ = press(t, app, runes("/"), tea.KeyMsg{Type: tea.KeyEsc})
	if board.Query() != "" || len(board.Filtered()) != 14 {
		t.Fatal("esc should clear the search")
	}
	if !strings.Contains(app.View(), "Showing 1–5 of 14") {
		t.Fatal("view should show the full range again")
	}
}

func TestReviewDetailApproveAndClose(t *testing.T) {
	app := newTestApp(t)
	board := app.deps.Board

	app, _ = press(t, app, runes("2"), tea.KeyMsg{Type: tea.KeyEnter})
	if id, open := board.OpenID(); !open || id != "r-1001" {
		t.Fatalf("open = %q %v, want r-1001", id, open)
	}
	if !strings.Contains(app.View(), "Report Details") {
		t.Fatal("detail panel should render")
	}

	app, _ = press(t, app, runes("o"), runes("k"))
	if got := status(t, board, "r-1001").Notes; got != "ok" {
		t.Fatalf("notes = %q, want ok", got)
	}

	press(t, app, tea.KeyMsg{Type: tea.KeyCtrlA})
	r := status(t, board, "r-1001")
	if r.Status != review.StatusApproved || r.Notes != "ok" {
		t.Fatalf("got %+v, want approved with notes", r)
	}
	if _, open := board.OpenID(); open {
		t.Fatal("review should close")
	}
}

func TestReviewDetailEscKeepsNotes(t *testing.T) {
	app := newTestApp(t)
	board := app.deps.Board

	app, _ = press(t, app, runes("2"), tea.KeyMsg{Type: tea.KeyEnter}, runes("x"), tea.KeyMsg{Type: tea.KeyEsc})

	r := status(t, board, "r-1001")
	if r.Notes != "x" || r.Status != review.StatusPending {
		t.Fatalf("got %+v, want pending with notes x", r)
	}
	if app.isFormActive() {
		t.Fatal("closing the review should release keys")
	}
}

func TestReviewRejectCloseFromDetail(t *testing.T) {
	app := newTestApp(t)
	board := app.deps.Board

	press(t, app, runes("2"), runes("j"), tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyCtrlR})

	if got := status(t, board, "r-1002").Status; got != review.StatusRejected {
		t.Fatalf("r-1002 status = %q, want rejected", got)
	}
}

// ============================================================
// Projects
// ============================================================

func TestProjectsListAndPaging(t *testing.T) {
	app := newTestApp(t)
	catalog := app.deps.Projects

	app, _ = press(t, app, runes("3"))
	if app.activeView != viewProjects {
		t.Fatalf("3 should open projects, got %d", app.activeView)
	}
	out := app.View()
	if !strings.Contains(out, "PRJ-001") || !strings.Contains(out, "Showing 1–5 of 6") {
		t.Fatal("projects view should list the first page")
	}

	app, _ = press(t, app, runes("l"))
	if catalog.CurrentPage() != 2 || !strings.Contains(app.View(), "PRJ-006") {
		t.Fatal("right should move to page 2")
	}
}

func TestProjectsSearchStatusAndType(t *testing.T) {
	app := newTestApp(t)
	catalog := app.deps.Projects

	app, _ = press(t, app, runes("3"), runes("s"))
	if got := catalog.Criteria().Status; got != project.StatusPlanning {
		t.Fatalf("status = %q, want Planning", got)
	}
	if n := len(catalog.Filtered()); n != 2 {
		t.Fatalf("planning projects = %d, want 2", n)
	}

	app, _ = press(t, app, runes("t"), runes("t"))
	if got := catalog.Criteria().Type; got != project.TypeCommercial {
		t.Fatalf("type = %q, want Commercial", got)
	}
	filtered := catalog.Filtered()
	if len(filtered) != 1 || filtered[0].ID != "PRJ-002" {
		t.Fatalf("planning and commercial = %v, want PRJ-002", filtered)
	}

	app, _ = press(t, app, runes("/"))
	if !app.isFormActive() {
		t.Fatal("search should capture keys")
	}
	app, _ = press(t, app, runes("u"), runes("n"), runes("i"), tea.KeyMsg{Type: tea.KeyEnter})
	if n := len(catalog.Filtered()); n != 0 {
		t.Fatalf("campus is completed, filtered = %d, want 0", n)
	}
	if !strings.Contains(app.View(), "No projects match the filters") {
		t.Fatal("empty result should render the empty message")
	}

	app, _ = press(t, app, runes("x"))
	if catalog.Criteria() != (project.Criteria{}) || len(catalog.Filtered()) != 6 {
		t.Fatal("x should reset every filter")
	}
	if app.projects.search.Value() != "" {
		t.Fatal("x should clear the search box")
	}
}

func TestProjectsSearchMatchesLocation(t *testing.T) {
	app := newTestApp(t)
	catalog := app.deps.Projects

	app, _ = press(t, app, runes("3"), runes("/"), runes("q"), runes("u"), runes("b"), runes("a"))
	if app.activeView != viewProjects {
		t.Fatal("typing q in search must not quit or switch views")
	}
	filtered := catalog.Filtered()
	if len(filtered) != 1 || filtered[0].ID != "PRJ-002" {
		t.Fatalf("quba = %v, want PRJ-002", filtered)
	}

	_, _ = press(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	if catalog.Criteria().Query != "" {
		t.Fatal("esc should clear the search")
	}
}

func TestProjectsDetails(t *testing.T) {
	app := newTestApp(t)

	app, _ = press(t, app, runes("3"), runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	if !app.projects.showDetails {
		t.Fatal("enter should open the details panel")
	}
	out := app.View()
	if !strings.Contains(out, "Project Overview") || !strings.Contains(out, "CON-2024-015") {
		t.Fatal("details should show the selected project's contract")
	}

	app, _ = press(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.projects.showDetails {
		t.Fatal("esc should close the details panel")
	}
	if app.activeView != viewProjects {
		t.Fatal("closing details should stay on projects")
	}
}

func TestProjectsExportUsesFilteredRows(t *testing.T) {
	app := newTestApp(t)

	app, _ = press(t, app, runes("3"), runes("t"), runes("t"), runes("e"))
	app, cmd := press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	if app.exportPicking || cmd == nil {
		t.Fatal("enter should close the picker and export")
	}

	done, ok := cmd().(exportDoneMsg)
	if !ok {
		t.Fatal("expected exportDoneMsg")
	}
	if !strings.HasPrefix(filepath.Base(done.path), "rased-projects-") {
		t.Fatalf("unexpected export path %q", done.path)
	}
	data, err := os.ReadFile(done.path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), "PRJ-002") || !strings.Contains(string(data), "PRJ-005") ||
		strings.Contains(string(data), "PRJ-001") {
		t.Fatalf("export should hold only commercial projects:\n%s", data)
	}
}

// ============================================================
// Dashboard
// ============================================================

func TestDashboardCounts(t *testing.T) {
	app := newTestApp(t)

	app, _ = press(t, app, app.dashboard.loadData()())

	if app.dashboard.total != 14 {
		t.Fatalf("total = %d, want 14", app.dashboard.total)
	}
	if app.dashboard.counts[review.StatusPending] != 6 {
		t.Fatalf("pending = %d, want 6", app.dashboard.counts[review.StatusPending])
	}
	if got := app.dashboard.approvalRate(); got < 35.7 || got > 35.8 {
		t.Fatalf("approval rate = %v, want ~35.71", got)
	}
	if app.dashboard.summary.Count != 10 {
		t.Fatalf("contractor count = %d, want 10", app.dashboard.summary.Count)
	}
	if app.dashboard.projStat.Total != 6 || app.dashboard.projStat.Active != 5 {
		t.Fatalf("project stats = %+v, want 6 total and 5 active", app.dashboard.projStat)
	}
	if !strings.Contains(app.View(), "Approval Rate") {
		t.Fatal("dashboard should render KPI cards")
	}
}

// ============================================================
// Contractor
// ============================================================

func TestContractorList(t *testing.T) {
	app := newTestApp(t)
	app, _ = press(t, app, runes("4"), app.contractor.refresh()())

	if len(app.contractor.reports) != 10 {
		t.Fatalf("reports = %d, want 10", len(app.contractor.reports))
	}
	if !strings.Contains(app.View(), "Heritage Walkway") {
		t.Fatal("contractor view should list mock reports")
	}
}

func TestContractorDeleteMockRefused(t *testing.T) {
	app := newTestApp(t)
	app, _ = press(t, app, runes("4"), app.contractor.refresh()())

	_, cmd := press(t, app, runes("d"))
	if cmd == nil {
		t.Fatal("expected a status command")
	}
	msg, ok := cmd().(statusMsg)
	if !ok || !msg.isError {
		t.Fatalf("expected error status, got %#v", msg)
	}
	if len(app.deps.Contractors.All()) != 10 {
		t.Fatal("mock reports must not be deleted")
	}
}

func TestContractorNewFormCapturesKeys(t *testing.T) {
	app := newTestApp(t)
	app, _ = press(t, app, runes("4"), runes("n"))

	if !app.isFormActive() {
		t.Fatal("new report form should be active")
	}
	if app.contractor.formType != "new" || !strings.Contains(app.View(), "Create New Report") {
		t.Fatal("form should render")
	}

	app, _ = press(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.isFormActive() {
		t.Fatal("esc should cancel the form")
	}
}

func TestParseProgress(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"40", 40, false},
		{" 12.5% ", 12.5, false},
		{"100", 100, false},
		{"101", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := parseProgress(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("parseProgress(%q) = %v, %v", tt.in, got, err)
		}
	}
}

// ============================================================
// Export
// ============================================================

func TestExportPicker(t *testing.T) {
	app := newTestApp(t)

	app, _ = press(t, app, runes("e"))
	if !app.exportPicking {
		t.Fatal("e should open the export picker")
	}

	app, cmd := press(t, app, runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	if app.exportPicking || cmd == nil {
		t.Fatal("enter should close the picker and export")
	}

	done, ok := cmd().(exportDoneMsg)
	if !ok {
		t.Fatal("expected exportDoneMsg")
	}
	if filepath.Dir(done.path) != app.deps.ExportDir || filepath.Ext(done.path) != ".json" {
		t.Fatalf("unexpected export path %q", done.path)
	}
	if _, err := os.Stat(done.path); err != nil {
		t.Fatalf("export file missing: %v", err)
	}
}

// ============================================================
// Helpers, keys and styles
// ============================================================

func TestCell(t *testing.T) {
	if got := lipgloss.Width(cell("abcdefgh", 5, i18n.EN)); got != 5 {
		t.Fatalf("cell width = %d, want 5", got)
	}
	if got := cell("abcdefgh", 5, i18n.EN); !strings.Contains(got, "…") {
		t.Fatalf("long cell should be truncated, got %q", got)
	}
	if got := cell("ab", 5, i18n.EN); got != "ab   " {
		t.Fatalf("ltr cell = %q, want left aligned", got)
	}
	if got := cell("ab", 5, i18n.AR); got != "   ab" {
		t.Fatalf("rtl cell = %q, want right aligned", got)
	}
}

func TestFormatSettingValue(t *testing.T) {
	if got := formatSettingValue(store.KeyLanguage, "ar"); got != "العربية" {
		t.Fatalf("language = %q", got)
	}
	long := strings.Repeat("x", 60)
	if got := []rune(formatSettingValue("contractor-reports-user", long)); len(got) != 40 {
		t.Fatalf("long value should be shortened to 40 runes, got %d", len(got))
	}
}

func TestKeyMapShortHelp(t *testing.T) {
	if len(keys.ShortHelp()) == 0 {
		t.Fatal("short help should have bindings")
	}
}

func TestKeyMapFullHelp(t *testing.T) {
	groups := keys.FullHelp()
	if len(groups) == 0 {
		t.Fatal("full help should have groups")
	}
	for i, g := range groups {
		if len(g) == 0 {
			t.Fatalf("full help group %d is empty", i)
		}
	}
}

func TestStylesRender(t *testing.T) {
	styles := []struct {
		name string
		fn   func() string
	}{
		{"activeTab", func() string { return activeTabStyle.Render("test") }},
		{"inactiveTab", func() string { return inactiveTabStyle.Render("test") }},
		{"panel", func() string { return panelStyle.Render("test") }},
		{"activePanel", func() string { return activePanelStyle.Render("test") }},
		{"title", func() string { return titleStyle.Render("test") }},
		{"subtitle", func() string { return subtitleStyle.Render("test") }},
		{"accent", func() string { return accentStyle.Render("test") }},
		{"success", func() string { return successStyle.Render("test") }},
		{"warning", func() string { return warningStyle.Render("test") }},
		{"error", func() string { return errorStyle.Render("test") }},
		{"muted", func() string { return mutedStyle.Render("test") }},
		{"highlight", func() string { return highlightStyle.Render("test") }},
		{"header", func() string { return headerStyle.Render("test") }},
		{"footer", func() string { return footerStyle.Render("test") }},
		{"tableHeader", func() string { return tableHeaderStyle.Render("test") }},
		{"openRow", func() string { return openRowStyle.Render("test") }},
		{"card", func() string { return cardStyle.Render("test") }},
		{"cardValue", func() string { return cardValueStyle.Render("test") }},
		{"selectedItem", func() string { return selectedItemStyle.Render("test") }},
		{"normalItem", func() string { return normalItemStyle.Render("test") }},
	}

	for _, s := range styles {
		if s.fn() == "" {
			t.Fatalf("style %q rendered empty", s.name)
		}
	}
}
