package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/rased/internal/contractor"
	"github.com/sadopc/rased/internal/i18n"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewReview
	viewProjects
	viewContractor
	viewSettings
)

var viewKeys = []string{"tab.dashboard", "tab.review", "tab.projects", "tab.contractor", "tab.settings"}

func viewNames(lang i18n.Lang) []string {
	names := make([]string, len(viewKeys))
	for i, k := range viewKeys {
		names[i] = i18n.T(lang, k)
	}
	return names
}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

// langChangedMsg is sent after the language context changes.
type langChangedMsg struct{}

type exportDoneMsg struct {
	path string
}

type contractorDataMsg struct {
	reports []contractor.Report
}

// --- Helpers ---

// align returns the horizontal alignment for text cells in lang.
func align(lang i18n.Lang) lipgloss.Position {
	if i18n.Dir(lang) == "rtl" {
		return lipgloss.Right
	}
	return lipgloss.Left
}

// cell renders s into a fixed-width column, truncating with an ellipsis.
func cell(s string, width int, lang i18n.Lang) string {
	if width < 1 {
		return ""
	}
	r := []rune(s)
	if lipgloss.Width(s) > width && len(r) > 1 {
		for lipgloss.Width(string(r))+1 > width && len(r) > 0 {
			r = r[:len(r)-1]
		}
		s = string(r) + "…"
	}
	return lipgloss.NewStyle().Width(width).MaxWidth(width).Align(align(lang)).Render(s)
}

func statusStyle(status string) lipgloss.Style {
	switch status {
	case "approved", "Approved":
		return successStyle
	case "rejected", "Rejected":
		return errorStyle
	default:
		return warningStyle
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
