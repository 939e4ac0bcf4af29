package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/rased/internal/contractor"
	"github.com/sadopc/rased/internal/i18n"
)

type contractorModel struct {
	repo   *contractor.Repository
	roller contractor.Roller
	lang   i18n.Lang
	width  int
	height int

	reports []contractor.Report
	cursor  int
	bar     progress.Model

	formActive bool
	form       *huh.Form
	formType   string // "new", "clear"

	// Form field pointers (survive value copies)
	formProject  *string
	formPeriod   *string
	formProgress *string
	formSummary  *string
	formConfirm  *bool
}

func newContractorModel(repo *contractor.Repository, roller contractor.Roller, lang i18n.Lang) contractorModel {
	project, period, prog, summary, confirm := "", "", "", "", false
	return contractorModel{
		repo:         repo,
		roller:       roller,
		lang:         lang,
		bar:          progress.New(progress.WithSolidFill(string(colorSecondary)), progress.WithWidth(12), progress.WithoutPercentage()),
		formProject:  &project,
		formPeriod:   &period,
		formProgress: &prog,
		formSummary:  &summary,
		formConfirm:  &confirm,
	}
}

func (c *contractorModel) setSize(w, h int) {
	c.width = w
	c.height = h
}

func (c *contractorModel) setLang(lang i18n.Lang) {
	c.lang = lang
}

func (c contractorModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return contractorDataMsg{reports: c.repo.All()}
	}
}

// do runs op off the event loop, then reloads the list.
func (c contractorModel) do(op func() statusMsg) tea.Cmd {
	return tea.Sequence(func() tea.Msg { return op() }, c.refresh())
}

func (c contractorModel) update(msg tea.Msg) (contractorModel, tea.Cmd) {
	if c.formActive && c.form != nil {
		return c.updateForm(msg)
	}

	switch msg := msg.(type) {
	case contractorDataMsg:
		c.reports = msg.reports
		c.cursor = clamp(c.cursor, 0, max(0, len(c.reports)-1))
		return c, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if c.cursor > 0 {
				c.cursor--
			}
		case key.Matches(msg, keys.Down):
			if c.cursor < len(c.reports)-1 {
				c.cursor++
			}
		case key.Matches(msg, keys.New):
			return c.showNewForm()
		case key.Matches(msg, keys.Clear):
			return c.showClearForm()
		case key.Matches(msg, keys.Delete):
			return c.deleteCurrent()
		case key.Matches(msg, keys.Refresh):
			lang, repo, roller := c.lang, c.repo, c.roller
			return c, c.do(func() statusMsg {
				n := repo.RefreshStatuses(roller)
				return statusMsg{text: i18n.Tf(lang, "contractor.refreshed", n)}
			})
		}
	}
	return c, nil
}

func (c contractorModel) deleteCurrent() (contractorModel, tea.Cmd) {
	if c.cursor >= len(c.reports) {
		return c, nil
	}
	rep := c.reports[c.cursor]
	lang := c.lang
	if rep.IsMock {
		return c, func() tea.Msg {
			return statusMsg{text: i18n.T(lang, "contractor.mockLocked"), isError: true}
		}
	}
	repo := c.repo
	return c, c.do(func() statusMsg {
		repo.Delete(rep.ID)
		return statusMsg{text: i18n.T(lang, "contractor.deleted")}
	})
}

func (c contractorModel) showNewForm() (contractorModel, tea.Cmd) {
	months := contractor.MonthOptions(time.Now())
	*c.formProject = ""
	*c.formPeriod = months[0]
	*c.formProgress = ""
	*c.formSummary = ""
	c.formType = "new"

	periodOptions := make([]huh.Option[string], len(months))
	for i, m := range months {
		periodOptions[i] = huh.NewOption(m, m)
	}

	lang := c.lang
	required := func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(i18n.T(lang, "contractor.required"))
		}
		return nil
	}

	c.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title(i18n.T(lang, "contractor.project")).Value(c.formProject).Validate(required),
			huh.NewSelect[string]().Title(i18n.T(lang, "contractor.period")).Options(periodOptions...).Value(c.formPeriod),
			huh.NewInput().Title(i18n.T(lang, "contractor.progress")).Value(c.formProgress).Validate(func(s string) error {
				if _, err := parseProgress(s); err != nil {
					return errors.New(i18n.T(lang, "contractor.badProgress"))
				}
				return nil
			}),
			huh.NewText().Title(i18n.T(lang, "contractor.summary")).Value(c.formSummary),
		).Title(i18n.T(lang, "contractor.new")).Description(i18n.T(lang, "contractor.newHint")),
	).WithShowHelp(true).WithShowErrors(true)

	c.formActive = true
	return c, c.form.Init()
}

func (c contractorModel) showClearForm() (contractorModel, tea.Cmd) {
	*c.formConfirm = false
	c.formType = "clear"

	c.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(i18n.T(c.lang, "contractor.confirm")).
				Affirmative(i18n.T(c.lang, "action.clear")).
				Negative(i18n.T(c.lang, "action.cancel")).
				Value(c.formConfirm),
		),
	).WithShowHelp(true)

	c.formActive = true
	return c, c.form.Init()
}

func (c contractorModel) updateForm(msg tea.Msg) (contractorModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			c.formActive = false
			c.form = nil
			return c, nil
		}
	}

	form, cmd := c.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		c.form = f
	}

	if c.form.State == huh.StateCompleted {
		c.formActive = false
		return c, c.submitForm()
	}
	if c.form.State == huh.StateAborted {
		c.formActive = false
		c.form = nil
		return c, nil
	}
	return c, cmd
}

// submitForm applies the completed form. Field values are copied before the
// command runs.
func (c contractorModel) submitForm() tea.Cmd {
	repo, lang := c.repo, c.lang
	switch c.formType {
	case "new":
		prog, _ := parseProgress(*c.formProgress)
		d := contractor.Draft{
			ProjectName: *c.formProject,
			Period:      *c.formPeriod,
			Progress:    prog,
			Summary:     *c.formSummary,
		}
		return c.do(func() statusMsg {
			if _, err := repo.Create(d); err != nil {
				return statusMsg{text: err.Error(), isError: true}
			}
			return statusMsg{text: i18n.T(lang, "contractor.created")}
		})
	case "clear":
		if !*c.formConfirm {
			return nil
		}
		return c.do(func() statusMsg {
			repo.Reset()
			return statusMsg{text: i18n.T(lang, "contractor.cleared")}
		})
	}
	return nil
}

func parseProgress(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%")), 64)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 100 {
		return 0, fmt.Errorf("progress %v out of range", v)
	}
	return v, nil
}

func (c contractorModel) view() string {
	w := c.width - 4

	if c.formActive && c.form != nil {
		title := titleStyle.Render(i18n.T(c.lang, "contractor.new"))
		if c.formType == "clear" {
			title = titleStyle.Render(i18n.T(c.lang, "action.clear"))
		}
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", c.form.View())
		return panelStyle.Width(w).Render(content)
	}

	title := titleStyle.Render(i18n.T(c.lang, "contractor.title"))
	desc := subtitleStyle.Render(i18n.T(c.lang, "contractor.description"))
	hint := mutedStyle.Render(i18n.T(c.lang, "contractor.hint"))

	if len(c.reports) == 0 {
		content := lipgloss.JoinVertical(align(c.lang), title, desc, "", mutedStyle.Render(i18n.T(c.lang, "contractor.empty")), "", hint)
		return panelStyle.Width(w).Render(content)
	}

	rest := max(16, w-6-10-17-12-12-4)
	cols := []column{
		{"col.project", rest},
		{"col.period", 10},
		{"col.progress", 17},
		{"col.status", 12},
		{"col.created", 12},
	}

	header := make([]string, len(cols))
	for i, col := range cols {
		header[i] = cell(i18n.T(c.lang, col.key), col.width, c.lang)
	}

	rows := []string{title, desc, "", "  " + tableHeaderStyle.Render(strings.Join(header, " "))}

	// Keep the list within the panel; the cursor stays visible.
	visible := max(3, c.height-12)
	first := 0
	if c.cursor >= visible {
		first = c.cursor - visible + 1
	}
	last := min(len(c.reports), first+visible)

	for i := first; i < last; i++ {
		rep := c.reports[i]
		name := rep.ProjectName
		if rep.IsMock {
			name += " (" + i18n.T(c.lang, "contractor.mock") + ")"
		}
		cells := []string{
			cell(name, cols[0].width, c.lang),
			cell(rep.Period, cols[1].width, c.lang),
			c.bar.ViewAs(float64(rep.ProgressPercent)/100) + fmt.Sprintf(" %d%%", rep.ProgressPercent),
			statusStyle(string(rep.Status)).Render(cell(rep.Status.Label(c.lang), cols[3].width, c.lang)),
			cell(rep.CreatedAt.Local().Format("2006-01-02"), cols[4].width, c.lang),
		}

		cursor := "  "
		style := normalItemStyle
		if i == c.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor)+strings.Join(cells, " "))
	}

	rows = append(rows, "", hint)
	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
