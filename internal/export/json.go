package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/sadopc/rased/internal/contractor"
	"github.com/sadopc/rased/internal/i18n"
	"github.com/sadopc/rased/internal/project"
	"github.com/sadopc/rased/internal/review"
)

type jsonExport[T any] struct {
	ExportedAt string `json:"exported_at"`
	Language   string `json:"language"`
	Count      int    `json:"count"`
	Reports    []T    `json:"reports"`
}

type jsonReport struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Project     string `json:"project"`
	Period      string `json:"period"`
	SubmittedAt string `json:"submitted_at"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
	Notes       string `json:"notes,omitempty"`
}

type jsonContractorReport struct {
	ID          string `json:"id"`
	Project     string `json:"project"`
	Period      string `json:"period"`
	Progress    int    `json:"progress_percent"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
	Summary     string `json:"summary,omitempty"`
	CreatedAt   string `json:"created_at"`
	Mock        bool   `json:"mock,omitempty"`
}

type jsonProject struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Location     string `json:"location"`
	Type         string `json:"type"`
	Status       string `json:"status"`
	StatusLabel  string `json:"status_label"`
	Progress     int    `json:"progress_percent"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Budget       string `json:"budget"`
	TeamSize     int    `json:"team_size"`
	Contractor   string `json:"contractor"`
	ContractName string `json:"contract_name"`
	Priority     string `json:"priority"`
}

// WriteReportsJSON writes review reports as an indented JSON document.
func WriteReportsJSON(w io.Writer, reports []review.Report, lang i18n.Lang) error {
	export := jsonExport[jsonReport]{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Language:   string(lang),
		Count:      len(reports),
	}

	for _, r := range reports {
		export.Reports = append(export.Reports, jsonReport{
			ID:          r.ID,
			Company:     r.CompanyName(lang),
			Project:     r.ProjectName(lang),
			Period:      r.Period,
			SubmittedAt: r.SubmittedAt,
			Status:      string(r.Status),
			StatusLabel: r.Status.Label(lang),
			Notes:       r.Notes,
		})
	}
	return writeJSON(w, export)
}

// ReportsToJSON writes review reports to path.
func ReportsToJSON(reports []review.Report, lang i18n.Lang, path string) error {
	return toFile(path, func(w io.Writer) error {
		return WriteReportsJSON(w, reports, lang)
	})
}

// WriteContractorJSON writes contractor reports as an indented JSON document.
func WriteContractorJSON(w io.Writer, reports []contractor.Report, lang i18n.Lang) error {
	export := jsonExport[jsonContractorReport]{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Language:   string(lang),
		Count:      len(reports),
	}

	for _, r := range reports {
		export.Reports = append(export.Reports, jsonContractorReport{
			ID:          r.ID,
			Project:     r.ProjectName,
			Period:      r.Period,
			Progress:    r.ProgressPercent,
			Status:      string(r.Status),
			StatusLabel: r.Status.Label(lang),
			Summary:     r.Summary,
			CreatedAt:   r.CreatedAt.Local().Format(time.RFC3339),
			Mock:        r.IsMock,
		})
	}
	return writeJSON(w, export)
}

// ContractorToJSON writes contractor reports to path.
func ContractorToJSON(reports []contractor.Report, lang i18n.Lang, path string) error {
	return toFile(path, func(w io.Writer) error {
		return WriteContractorJSON(w, reports, lang)
	})
}

// WriteProjectsJSON writes projects as an indented JSON document. Projects
// go under the same "reports" key as the other exports.
func WriteProjectsJSON(w io.Writer, projects []project.Project, lang i18n.Lang) error {
	export := jsonExport[jsonProject]{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Language:   string(lang),
		Count:      len(projects),
	}

	for _, p := range projects {
		export.Reports = append(export.Reports, jsonProject{
			ID:           p.ID,
			Name:         p.DisplayName(lang),
			Location:     p.LocationName(lang),
			Type:         string(p.Type),
			Status:       string(p.Status),
			StatusLabel:  p.Status.Label(lang),
			Progress:     p.Progress,
			StartDate:    p.StartDate,
			EndDate:      p.EndDate,
			Budget:       p.Budget,
			TeamSize:     p.TeamSize,
			Contractor:   p.ContractorName(lang),
			ContractName: p.ContractName,
			Priority:     string(p.Priority),
		})
	}
	return writeJSON(w, export)
}

// ProjectsToJSON writes projects to path.
func ProjectsToJSON(projects []project.Project, lang i18n.Lang, path string) error {
	return toFile(path, func(w io.Writer) error {
		return WriteProjectsJSON(w, projects, lang)
	})
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
