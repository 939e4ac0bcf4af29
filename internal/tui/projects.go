package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/rased/internal/i18n"
	"github.com/sadopc/rased/internal/project"
)

type projectsModel struct {
	catalog *project.Catalog
	lang    i18n.Lang
	width   int
	height  int

	cursor      int // row on the current page
	searching   bool
	search      textinput.Model
	showDetails bool
	bar         progress.Model
}

func newProjectsModel(c *project.Catalog, lang i18n.Lang) projectsModel {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.CharLimit = 80

	p := projectsModel{
		catalog: c,
		search:  ti,
		bar:     progress.New(progress.WithSolidFill(string(colorSecondary)), progress.WithWidth(10), progress.WithoutPercentage()),
	}
	p.setLang(lang)
	return p
}

func (p *projectsModel) setSize(w, h int) {
	p.width = w
	p.height = h
	p.search.Width = max(10, w-12)
}

func (p *projectsModel) setLang(lang i18n.Lang) {
	p.lang = lang
	p.search.Placeholder = i18n.T(lang, "project.search")
}

func (p projectsModel) update(msg tea.Msg) (projectsModel, tea.Cmd) {
	if p.searching {
		return p.updateSearch(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	if p.showDetails {
		if key.Matches(keyMsg, keys.Back) || key.Matches(keyMsg, keys.Enter) {
			p.showDetails = false
		}
		return p, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if p.cursor < len(p.catalog.Page())-1 {
			p.cursor++
		}
	case key.Matches(keyMsg, keys.Left):
		p.catalog.Prev()
		p.cursor = 0
	case key.Matches(keyMsg, keys.Right):
		p.catalog.Next()
		p.cursor = 0
	case key.Matches(keyMsg, keys.Search):
		p.searching = true
		return p, p.search.Focus()
	case key.Matches(keyMsg, keys.StatusFilter):
		p.catalog.CycleStatus()
		p.cursor = 0
	case key.Matches(keyMsg, keys.TypeFilter):
		p.catalog.CycleType()
		p.cursor = 0
	case key.Matches(keyMsg, keys.ResetFilters):
		p.search.SetValue("")
		p.catalog.Search("")
		p.catalog.FilterStatus("")
		p.catalog.FilterType("")
		p.cursor = 0
	case key.Matches(keyMsg, keys.Enter):
		if _, ok := p.current(); ok {
			p.showDetails = true
		}
	}
	return p, nil
}

func (p projectsModel) updateSearch(msg tea.Msg) (projectsModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.Enter):
			p.searching = false
			p.search.Blur()
			return p, nil
		case key.Matches(keyMsg, keys.Back):
			p.searching = false
			p.search.Blur()
			p.search.SetValue("")
			p.catalog.Search("")
			p.cursor = 0
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.search, cmd = p.search.Update(msg)
	if p.search.Value() != p.catalog.Criteria().Query {
		p.catalog.Search(p.search.Value())
		p.cursor = 0
	}
	return p, cmd
}

func (p projectsModel) current() (project.Project, bool) {
	page := p.catalog.Page()
	if p.cursor < 0 || p.cursor >= len(page) {
		return project.Project{}, false
	}
	return page[p.cursor], true
}

func (p projectsModel) view() string {
	w := p.width - 4

	c := p.catalog.Criteria()
	_, _, total := p.catalog.Range()
	filters := mutedStyle.Render(i18n.Tf(p.lang, "project.filters", c.Status.Label(p.lang), c.Type.Label(p.lang))) +
		"    " + highlightStyle.Render(i18n.Tf(p.lang, "project.count", total))

	parts := []string{
		titleStyle.Render(i18n.T(p.lang, "project.title")),
		subtitleStyle.Render(i18n.T(p.lang, "project.description")),
		"",
		p.search.View(),
		filters,
		"",
		p.renderTable(w - 6),
		"",
		p.renderPager(),
		"",
		mutedStyle.Render(i18n.T(p.lang, "project.hint")),
	}

	list := panelStyle.Width(w).Render(lipgloss.JoinVertical(align(p.lang), parts...))
	if p.showDetails {
		return lipgloss.JoinVertical(lipgloss.Left, list, p.renderDetails(w))
	}
	return list
}

func (p projectsModel) renderTable(w int) string {
	page := p.catalog.Page()
	if len(page) == 0 {
		return mutedStyle.Render(i18n.T(p.lang, "project.empty"))
	}

	id, typ, status, prog, prio := 8, 15, 12, 16, 8
	name := max(16, w-id-typ-status-prog-prio-8)
	widths := []int{id, name, typ, status, prog, prio}

	render := func(cells []string) string {
		if i18n.Dir(p.lang) == "rtl" {
			for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
				cells[i], cells[j] = cells[j], cells[i]
			}
		}
		return strings.Join(cells, " ")
	}

	header := []string{}
	for i, k := range []string{"col.id", "col.project", "col.type", "col.status", "col.progress", "col.priority"} {
		header = append(header, cell(i18n.T(p.lang, k), widths[i], p.lang))
	}
	lines := []string{"  " + tableHeaderStyle.Render(render(header))}

	for i, pr := range page {
		bar := p.bar.ViewAs(float64(pr.Progress) / 100)
		cells := []string{
			cell(pr.ID, id, p.lang),
			cell(pr.DisplayName(p.lang), name, p.lang),
			cell(pr.Type.Label(p.lang), typ, p.lang),
			projectStatusStyle(pr.Status).Render(cell(pr.Status.Label(p.lang), status, p.lang)),
			cell(fmt.Sprintf("%s %3d%%", bar, pr.Progress), prog, p.lang),
			cell(pr.Priority.Label(p.lang), prio, p.lang),
		}

		cursor := "  "
		style := normalItemStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		lines = append(lines, style.Render(cursor)+render(cells))
	}
	return strings.Join(lines, "\n")
}

func (p projectsModel) renderPager() string {
	start, end, total := p.catalog.Range()
	showing := mutedStyle.Render(i18n.Tf(p.lang, "review.showing", start, end, total))
	page := mutedStyle.Render(i18n.Tf(p.lang, "review.page", p.catalog.CurrentPage(), p.catalog.TotalPages()))
	return showing + "    " + page
}

func (p projectsModel) renderDetails(w int) string {
	pr, ok := p.current()
	if !ok {
		return ""
	}

	field := func(key, value string) string {
		label := lipgloss.NewStyle().Width(16).Render(i18n.T(p.lang, key))
		return fmt.Sprintf("  %s %s", mutedStyle.Render(label), value)
	}

	content := lipgloss.JoinVertical(align(p.lang),
		titleStyle.Render(i18n.T(p.lang, "project.details"))+"  "+accentStyle.Render(pr.ID),
		"",
		field("col.project", pr.DisplayName(p.lang)),
		field("col.location", pr.LocationName(p.lang)),
		field("col.type", pr.Type.Label(p.lang)),
		field("col.status", projectStatusStyle(pr.Status).Render(pr.Status.Label(p.lang))),
		field("col.progress", fmt.Sprintf("%s %d%%", p.bar.ViewAs(float64(pr.Progress)/100), pr.Progress)),
		field("col.timeline", pr.StartDate+" → "+pr.EndDate),
		field("col.budget", pr.Budget),
		field("col.team", fmt.Sprintf("%d", pr.TeamSize)),
		field("col.contractor", pr.ContractorName(p.lang)),
		field("col.contract", pr.ContractName),
		field("col.priority", pr.Priority.Label(p.lang)),
	)
	return activePanelStyle.Width(w).Render(content)
}

func projectStatusStyle(s project.Status) lipgloss.Style {
	switch s {
	case project.StatusCompleted:
		return successStyle
	case project.StatusReview:
		return accentStyle
	case project.StatusPlanning:
		return mutedStyle
	default:
		return warningStyle
	}
}
