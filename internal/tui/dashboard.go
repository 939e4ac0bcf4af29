package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/rased/internal/contractor"
	"github.com/sadopc/rased/internal/i18n"
	"github.com/sadopc/rased/internal/project"
	"github.com/sadopc/rased/internal/review"
)

type dashboardModel struct {
	board       *review.Board
	projects    *project.Catalog
	contractors *contractor.Repository
	lang        i18n.Lang
	width       int
	height      int

	counts   map[review.Status]int
	total    int
	summary  contractor.Summary
	projStat project.Stats

	chart barchart.Model
}

func newDashboardModel(b *review.Board, p *project.Catalog, c *contractor.Repository, lang i18n.Lang) dashboardModel {
	return dashboardModel{
		board:       b,
		projects:    p,
		contractors: c,
		lang:        lang,
		chart:       barchart.New(40, 10),
	}
}

func (d dashboardModel) Init() tea.Cmd {
	return d.loadData()
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
	d.buildChart()
}

func (d *dashboardModel) setLang(lang i18n.Lang) {
	d.lang = lang
	d.buildChart()
}

type dashboardDataMsg struct {
	summary contractor.Summary
}

// loadData summarizes contractor reports off the event loop. Review and
// project counts are read in update because the board and catalog are not
// safe for concurrent use.
func (d dashboardModel) loadData() tea.Cmd {
	return func() tea.Msg {
		return dashboardDataMsg{summary: contractor.Summarize(d.contractors.All())}
	}
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		d.summary = msg.summary
		d.projStat = project.Summarize(d.projects.All())
		d.countReviews()
		return d, nil
	}
	return d, nil
}

func (d *dashboardModel) countReviews() {
	d.counts = d.board.Store().CountByStatus()
	d.total = d.board.Store().Len()
	d.buildChart()
}

// approvalRate is the share of all reports that are approved, in percent.
func (d dashboardModel) approvalRate() float64 {
	if d.total == 0 {
		return 0
	}
	return float64(d.counts[review.StatusApproved]) * 100 / float64(d.total)
}

func (d *dashboardModel) buildChart() {
	chartWidth := d.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 8
	if d.height > 30 {
		chartHeight = 12
	}

	d.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, s := range review.Statuses {
		bars = append(bars, barchart.BarData{
			Label: s.Label(d.lang),
			Values: []barchart.BarValue{{
				Name:  s.Label(d.lang),
				Value: float64(d.counts[s]),
				Style: statusStyle(string(s)),
			}},
		})
	}

	d.chart.PushAll(bars)
	d.chart.Draw()
}

func (d dashboardModel) view() string {
	if d.width < 20 {
		return i18n.T(d.lang, "app.tooSmall")
	}

	w := d.width - 4
	return lipgloss.JoinVertical(lipgloss.Left,
		d.renderCards(w),
		d.renderChartPanel(w),
		d.renderProjectPanel(w),
		d.renderContractorPanel(w),
	)
}

func (d dashboardModel) renderCards(w int) string {
	card := func(key, value string) string {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			mutedStyle.Render(i18n.T(d.lang, key)),
			cardValueStyle.Render(value),
		))
	}

	cards := []string{
		card("dashboard.total", fmt.Sprintf("%d", d.total)),
		card("status.pending", fmt.Sprintf("%d", d.counts[review.StatusPending])),
		card("status.approved", fmt.Sprintf("%d", d.counts[review.StatusApproved])),
		card("status.rejected", fmt.Sprintf("%d", d.counts[review.StatusRejected])),
		card("dashboard.rate", fmt.Sprintf("%.0f%%", d.approvalRate())),
	}
	if i18n.Dir(d.lang) == "rtl" {
		for i, j := 0, len(cards)-1; i < j; i, j = i+1, j-1 {
			cards[i], cards[j] = cards[j], cards[i]
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	return lipgloss.NewStyle().Width(w).Align(align(d.lang)).Render(row)
}

func (d dashboardModel) renderChartPanel(w int) string {
	title := titleStyle.Render(i18n.T(d.lang, "dashboard.byStatus"))
	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(align(d.lang), title, "", d.chart.View()),
	)
}

func (d dashboardModel) renderContractorPanel(w int) string {
	title := titleStyle.Render(i18n.T(d.lang, "dashboard.submitted"))
	rows := []string{
		title,
		fmt.Sprintf("  %-28s %s", i18n.T(d.lang, "dashboard.total"), highlightStyle.Render(fmt.Sprintf("%d", d.summary.Count))),
		fmt.Sprintf("  %-28s %s", i18n.T(d.lang, "status.pending"), highlightStyle.Render(fmt.Sprintf("%d", d.summary.Pending))),
		fmt.Sprintf("  %-28s %s", i18n.T(d.lang, "dashboard.avgProg"), highlightStyle.Render(fmt.Sprintf("%.1f%%", d.summary.MeanProgress))),
		fmt.Sprintf("  %-28s %s", i18n.T(d.lang, "dashboard.median"), highlightStyle.Render(fmt.Sprintf("%.1f%%", d.summary.MedianProgress))),
	}
	return panelStyle.Width(w).Align(align(d.lang)).Render(strings.Join(rows, "\n"))
}

func (d dashboardModel) renderProjectPanel(w int) string {
	title := titleStyle.Render(i18n.T(d.lang, "dashboard.projects"))
	line := func(key, value string) string {
		return fmt.Sprintf("  %-28s %s", i18n.T(d.lang, key), highlightStyle.Render(value))
	}

	rows := []string{
		title,
		line("dashboard.active", fmt.Sprintf("%d / %d", d.projStat.Active, d.projStat.Total)),
		line("dashboard.completion", fmt.Sprintf("%.1f%%", d.projStat.CompletionRate)),
		line("dashboard.team", fmt.Sprintf("%d", d.projStat.TeamMembers)),
		line("dashboard.atRisk", fmt.Sprintf("%d", d.projStat.AtRisk)),
	}
	var byStatus []string
	for _, st := range project.Statuses {
		byStatus = append(byStatus, fmt.Sprintf("%s %d", st.Label(d.lang), d.projStat.ByStatus[st]))
	}
	rows = append(rows, "  "+mutedStyle.Render(strings.Join(byStatus, " · ")))

	return panelStyle.Width(w).Align(align(d.lang)).Render(strings.Join(rows, "\n"))
}
