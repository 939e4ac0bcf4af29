// Package contractor manages the progress reports contractors submit,
// persisted as JSON in the local key-value store.
package contractor

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sadopc/rased/internal/i18n"
)

// Status is the municipality's decision on a contractor report.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Label returns the localized display name of s.
func (s Status) Label(lang i18n.Lang) string {
	return i18n.T(lang, "status."+strings.ToLower(string(s)))
}

var (
	ErrMissingField  = errors.New("missing required field")
	ErrInvalidPeriod = errors.New("invalid reporting period")
)

// Report is one contractor progress update. JSON names match the stored
// format.
type Report struct {
	ID              string    `json:"id"`
	ProjectName     string    `json:"projectName"`
	Period          string    `json:"period"`
	ProgressPercent int       `json:"progressPercent"`
	Summary         string    `json:"summary"`
	CreatedAt       time.Time `json:"createdAt"`
	Status          Status    `json:"status"`
	IsMock          bool      `json:"isMock,omitempty"`
}

// Draft is the input for a new report.
type Draft struct {
	ProjectName string
	Period      string // YYYY-MM
	Progress    float64
	Summary     string
}

const periodLayout = "2006-01"

func (d Draft) validate() error {
	if strings.TrimSpace(d.ProjectName) == "" {
		return fmt.Errorf("%w: project name", ErrMissingField)
	}
	if strings.TrimSpace(d.Period) == "" {
		return fmt.Errorf("%w: period", ErrMissingField)
	}
	if _, err := time.Parse(periodLayout, strings.TrimSpace(d.Period)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidPeriod, d.Period)
	}
	return nil
}

// ClampProgress rounds p to a whole percent within [0, 100].
func ClampProgress(p float64) int {
	if math.IsNaN(p) {
		return 0
	}
	return int(math.Round(math.Max(0, math.Min(100, p))))
}

// MonthOptions returns the twelve reporting periods ending at now's month,
// newest first.
func MonthOptions(now time.Time) []string {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	out := make([]string, 12)
	for i := range out {
		out[i] = first.AddDate(0, -i, 0).Format(periodLayout)
	}
	return out
}

// mockReports are the built-in rows shown next to user reports. They are
// never persisted or deleted.
func mockReports(now time.Time) []Report {
	day := 24 * time.Hour
	rows := []struct {
		id, project, summary string
		progress             int
		status               Status
	}{
		{"mock-1723330000001", "Central Station", "Poured slabs for zones A and B. Minor delay due to rebar delivery.", 62, StatusApproved},
		{"mock-1723330000002", "Quba Road", "Asphalt base course completed for Segment 2. Drainage works ongoing.", 48, StatusPending},
		{"mock-1723330000003", "Al-Nabawi Plaza", "Granite procurement approved; foundation works 80% done.", 35, StatusRejected},
		{"mock-1723330000004", "Metro Line 2", "TBM maintenance completed; resumed boring 50m/day average.", 54, StatusPending},
		{"mock-1723330000005", "Ring Road Expansion", "Utility relocations in progress; traffic diversions implemented.", 29, StatusPending},
		{"mock-1723330000006", "Water Treatment Plant", "Mechanical installation 60% complete; electrical rooms handed over.", 71, StatusApproved},
		{"mock-1723330000007", "Airport Access Tunnel", "Excavation paused pending geotech review; ventilation order placed.", 41, StatusRejected},
		{"mock-1723330000008", "University Housing", "Block C topped out; facade mockup approved by client.", 58, StatusApproved},
		{"mock-1723330000009", "Sports Complex", "Steel procurement delayed; design coordination meeting held.", 22, StatusPending},
		{"mock-1723330000010", "Heritage Walkway", "Stone paving 40% complete; lighting shop drawings submitted.", 66, StatusApproved},
	}

	out := make([]Report, len(rows))
	for i, r := range rows {
		out[i] = Report{
			ID:              r.id,
			ProjectName:     r.project,
			Period:          "2025-07",
			ProgressPercent: r.progress,
			Summary:         r.summary,
			CreatedAt:       now.Add(-time.Duration(len(rows)-i) * day),
			Status:          r.status,
			IsMock:          true,
		}
	}
	return out
}
