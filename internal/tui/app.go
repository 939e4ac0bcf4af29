// Package tui is the interactive terminal front end.
package tui

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/sadopc/rased/internal/contractor"
	"github.com/sadopc/rased/internal/export"
	"github.com/sadopc/rased/internal/i18n"
	"github.com/sadopc/rased/internal/project"
	"github.com/sadopc/rased/internal/review"
	"github.com/sadopc/rased/internal/store"
)

// Deps are the services the App drives.
type Deps struct {
	Store       *store.Store
	Lang        *i18n.Context
	Board       *review.Board
	Projects    *project.Catalog
	Contractors *contractor.Repository
	Roller      contractor.Roller
	Log         *zap.Logger
	ExportDir   string
}

// App is the root Bubble Tea model.
type App struct {
	deps   Deps
	lang   i18n.Lang
	width  int
	height int

	// langCh carries change notifications from the language context.
	langCh  chan struct{}
	unwatch func()

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	dashboard  dashboardModel
	review     reviewModel
	projects   projectsModel
	contractor contractorModel
	settings   settingsModel

	help   help.Model
	status string
}

func NewApp(d Deps) App {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Projects == nil {
		d.Projects = project.NewSeededCatalog(d.Board.PageSize())
	}
	h := help.New()
	h.ShowAll = false

	lang := d.Lang.Lang()
	ch := make(chan struct{}, 1)
	unwatch := d.Lang.Subscribe(func(i18n.Lang) {
		select {
		case ch <- struct{}{}:
		default:
		}
	})

	return App{
		deps:       d,
		lang:       lang,
		langCh:     ch,
		unwatch:    unwatch,
		activeView: viewDashboard,
		dashboard:  newDashboardModel(d.Board, d.Projects, d.Contractors, lang),
		review:     newReviewModel(d.Board, lang),
		projects:   newProjectsModel(d.Projects, lang),
		contractor: newContractorModel(d.Contractors, d.Roller, lang),
		settings:   newSettingsModel(d.Store, d.Lang),
		help:       h,
	}
}

// Close stops listening for language changes.
func (a App) Close() {
	if a.unwatch != nil {
		a.unwatch()
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.dashboard.Init(),
		a.contractor.refresh(),
		a.settings.refresh(),
		waitForLang(a.langCh),
	)
}

func waitForLang(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return langChangedMsg{}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.dashboard.setSize(a.width, contentHeight)
		a.review.setSize(a.width, contentHeight)
		a.projects.setSize(a.width, contentHeight)
		a.contractor.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (e.g. form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Language):
			a.deps.Lang.Set(i18n.Toggle(a.deps.Lang.Lang()))
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewDashboard
			return a, a.dashboard.loadData()
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewReview
			return a, nil
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewProjects
			return a, nil
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewContractor
			return a, a.contractor.refresh()
		case key.Matches(msg, keys.Tab5):
			a.activeView = viewSettings
			return a, a.settings.refresh()
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % viewState(len(viewKeys))
			return a, a.refreshCurrentView()
		}

	case langChangedMsg:
		a.applyLang(a.deps.Lang.Lang())
		return a, tea.Batch(a.settings.refresh(), waitForLang(a.langCh))

	case statusMsg:
		a.status = msg.text
		if msg.isError {
			a.deps.Log.Warn("tui", zap.String("status", msg.text))
		}
		return a, nil

	case exportDoneMsg:
		a.status = i18n.Tf(a.lang, "export.done", msg.path)
		a.exportPicking = false
		return a, nil

	case dashboardDataMsg:
		a.dashboard, _ = a.dashboard.update(msg)
		return a, nil

	case contractorDataMsg:
		a.contractor, _ = a.contractor.update(msg)
		return a, a.dashboard.loadData()

	case settingsDataMsg:
		a.settings, _ = a.settings.update(msg)
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a *App) applyLang(lang i18n.Lang) {
	a.lang = lang
	a.dashboard.setLang(lang)
	a.review.setLang(lang)
	a.projects.setLang(lang)
	a.contractor.setLang(lang)
	a.settings.setLang(lang)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewDashboard:
		a.dashboard, cmd = a.dashboard.update(msg)
	case viewReview:
		a.review, cmd = a.review.update(msg)
	case viewProjects:
		a.projects, cmd = a.projects.update(msg)
	case viewContractor:
		a.contractor, cmd = a.contractor.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewReview:
		return a.review.capturing()
	case viewProjects:
		return a.projects.searching
	case viewContractor:
		return a.contractor.formActive
	case viewSettings:
		return a.settings.formActive
	}
	return false
}

func (a App) refreshCurrentView() tea.Cmd {
	switch a.activeView {
	case viewDashboard:
		return a.dashboard.loadData()
	case viewContractor:
		return a.contractor.refresh()
	case viewSettings:
		return a.settings.refresh()
	}
	return nil
}

func (a App) View() string {
	if a.width == 0 {
		return i18n.T(a.lang, "app.loading")
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewDashboard:
		content = a.dashboard.view()
	case viewReview:
		content = a.review.view()
	case viewProjects:
		content = a.projects.view()
	case viewContractor:
		content = a.contractor.view()
	case viewSettings:
		content = a.settings.view()
	}

	contentHeight := a.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames(a.lang) {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	if i18n.Dir(a.lang) == "rtl" {
		for i, j := 0, len(tabs)-1; i < j; i, j = i+1, j-1 {
			tabs[i], tabs[j] = tabs[j], tabs[i]
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("rased")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	if i18n.Dir(a.lang) == "rtl" {
		return headerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Bottom, tabRow, spacer, title))
	}
	return headerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow))
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		status = mutedStyle.Render(" " + a.status)
	}

	pending := warningStyle.Render(fmt.Sprintf(" ● %d %s", a.deps.Board.Pending(), i18n.T(a.lang, "status.pending")))

	left := footerStyle.Render(helpView)
	right := pending + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render(i18n.T(a.lang, "export.title"))
	formats := []string{"CSV", "JSON"}
	rows := []string{title, ""}
	for i, f := range formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "", mutedStyle.Render("  "+i18n.T(a.lang, "export.hint")))

	return activePanelStyle.Width(a.width - 4).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < 1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		format := export.FormatCSV
		if a.exportCursor == 1 {
			format = export.FormatJSON
		}
		return a, a.doExport(format)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

// doExport writes the list behind the active view: contractor reports, the
// filtered projects, or the filtered review list otherwise. Rows are copied
// here, on the event loop.
func (a App) doExport(format export.Format) tea.Cmd {
	lang := a.lang
	dateStr := time.Now().Format("2006-01-02")

	var (
		name  string
		write func(path string) error
	)
	switch a.activeView {
	case viewContractor:
		repo := a.deps.Contractors
		name = "rased-contractor-" + dateStr
		write = func(path string) error {
			if format == export.FormatJSON {
				return export.ContractorToJSON(repo.All(), lang, path)
			}
			return export.ContractorToCSV(repo.All(), lang, path)
		}
	case viewProjects:
		projects := a.deps.Projects.Filtered()
		name = "rased-projects-" + dateStr
		write = func(path string) error {
			if format == export.FormatJSON {
				return export.ProjectsToJSON(projects, lang, path)
			}
			return export.ProjectsToCSV(projects, lang, path)
		}
	default:
		reports := a.deps.Board.Filtered()
		name = "rased-reviews-" + dateStr
		write = func(path string) error {
			if format == export.FormatJSON {
				return export.ReportsToJSON(reports, lang, path)
			}
			return export.ReportsToCSV(reports, lang, path)
		}
	}

	path := filepath.Join(a.deps.ExportDir, name+"."+string(format))
	return func() tea.Msg {
		if err := write(path); err != nil {
			return statusMsg{text: i18n.Tf(lang, "export.error", err), isError: true}
		}
		return exportDoneMsg{path: path}
	}
}
