package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/rased/internal/i18n"
	"github.com/sadopc/rased/internal/store"
)

var languageNames = map[i18n.Lang]string{
	i18n.EN: "English",
	i18n.AR: "العربية",
}

type settingsModel struct {
	store   *store.Store
	langCtx *i18n.Context
	lang    i18n.Lang
	width   int
	height  int

	settings   []store.Setting
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	formLang *string
}

func newSettingsModel(s *store.Store, ctx *i18n.Context) settingsModel {
	l := string(ctx.Lang())
	return settingsModel{
		store:    s,
		langCtx:  ctx,
		lang:     ctx.Lang(),
		formLang: &l,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s *settingsModel) setLang(lang i18n.Lang) {
	s.lang = lang
}

type settingsDataMsg struct {
	settings []store.Setting
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		settings, _ := s.store.GetAllSettings()
		return settingsDataMsg{settings: settings}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.settings = msg.settings
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	*s.formLang = string(s.langCtx.Lang())

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title(i18n.T(s.lang, "settings.language")).
				Options(
					huh.NewOption(languageNames[i18n.EN], string(i18n.EN)),
					huh.NewOption(languageNames[i18n.AR], string(i18n.AR)),
				).Value(s.formLang),
		).Title(i18n.T(s.lang, "settings.title")),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		return s, s.apply(i18n.Lang(*s.formLang))
	}

	return s, cmd
}

// apply switches the UI language. Subscribers persist it and redraw.
func (s settingsModel) apply(lang i18n.Lang) tea.Cmd {
	s.langCtx.Set(lang)
	lang = s.langCtx.Lang()
	return tea.Batch(
		s.refresh(),
		func() tea.Msg {
			return statusMsg{text: i18n.Tf(lang, "settings.saved", languageNames[lang])}
		},
	)
}

func (s settingsModel) view() string {
	w := s.width - 4
	title := titleStyle.Render(i18n.T(s.lang, "settings.title"))

	if s.formActive && s.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
		)
	}

	row := func(label, value string) string {
		l := lipgloss.NewStyle().Width(24).Render(label)
		return fmt.Sprintf("  %s %s", l, highlightStyle.Render(value))
	}

	rows := []string{
		title,
		"",
		row(i18n.T(s.lang, "settings.language"), languageNames[s.lang]),
		row(i18n.T(s.lang, "settings.direction"), i18n.Dir(s.lang)),
		"",
		subtitleStyle.Render(i18n.T(s.lang, "settings.stored")),
	}
	for _, setting := range s.settings {
		rows = append(rows, row(setting.Key, formatSettingValue(setting.Key, setting.Value)))
	}
	rows = append(rows, "", mutedStyle.Render(i18n.T(s.lang, "settings.hint")))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(align(s.lang), rows...))
}

// formatSettingValue shortens stored values for display.
func formatSettingValue(k, v string) string {
	if k == store.KeyLanguage {
		if name, ok := languageNames[i18n.Lang(v)]; ok {
			return name
		}
	}
	if r := []rune(v); len(r) > 40 {
		return string(r[:39]) + "…"
	}
	return v
}
