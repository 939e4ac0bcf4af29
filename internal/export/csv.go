package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/sadopc/rased/internal/contractor"
	"github.com/sadopc/rased/internal/i18n"
	"github.com/sadopc/rased/internal/project"
	"github.com/sadopc/rased/internal/review"
)

// WriteReportsCSV writes review reports with headers and names in lang.
func WriteReportsCSV(w io.Writer, reports []review.Report, lang i18n.Lang) error {
	cw := csv.NewWriter(w)

	header := localize(lang, "col.id", "col.company", "col.project", "col.period", "col.submitted", "col.status", "col.notes")
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range reports {
		row := []string{
			r.ID,
			r.CompanyName(lang),
			r.ProjectName(lang),
			r.Period,
			r.SubmittedAt,
			r.Status.Label(lang),
			r.Notes,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReportsToCSV writes review reports to path.
func ReportsToCSV(reports []review.Report, lang i18n.Lang, path string) error {
	return toFile(path, func(w io.Writer) error {
		return WriteReportsCSV(w, reports, lang)
	})
}

// WriteContractorCSV writes contractor reports with headers in lang.
func WriteContractorCSV(w io.Writer, reports []contractor.Report, lang i18n.Lang) error {
	cw := csv.NewWriter(w)

	header := localize(lang, "col.id", "col.project", "col.period", "col.progress", "col.status", "col.summary", "col.created")
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range reports {
		row := []string{
			r.ID,
			r.ProjectName,
			r.Period,
			fmt.Sprintf("%d", r.ProgressPercent),
			r.Status.Label(lang),
			r.Summary,
			r.CreatedAt.Local().Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ContractorToCSV writes contractor reports to path.
func ContractorToCSV(reports []contractor.Report, lang i18n.Lang, path string) error {
	return toFile(path, func(w io.Writer) error {
		return WriteContractorCSV(w, reports, lang)
	})
}

// WriteProjectsCSV writes projects with headers and names in lang.
func WriteProjectsCSV(w io.Writer, projects []project.Project, lang i18n.Lang) error {
	cw := csv.NewWriter(w)

	header := localize(lang, "col.id", "col.project", "col.location", "col.type", "col.status", "col.progress",
		"col.timeline", "col.budget", "col.team", "col.contractor", "col.contract", "col.priority")
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, p := range projects {
		row := []string{
			p.ID,
			p.DisplayName(lang),
			p.LocationName(lang),
			p.Type.Label(lang),
			p.Status.Label(lang),
			fmt.Sprintf("%d", p.Progress),
			p.StartDate + " - " + p.EndDate,
			p.Budget,
			fmt.Sprintf("%d", p.TeamSize),
			p.ContractorName(lang),
			p.ContractName,
			p.Priority.Label(lang),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ProjectsToCSV writes projects to path.
func ProjectsToCSV(projects []project.Project, lang i18n.Lang, path string) error {
	return toFile(path, func(w io.Writer) error {
		return WriteProjectsCSV(w, projects, lang)
	})
}

func localize(lang i18n.Lang, keys ...string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = i18n.T(lang, k)
	}
	return out
}
