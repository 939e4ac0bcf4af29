// Package review is the report moderation workflow: an in-memory report
// store, free-text filtering, fixed-size pagination and a single-report
// review session, composed behind Board.
package review

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sadopc/rased/internal/i18n"
)

// Status is the moderation state of a report.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusPending, StatusApproved, StatusRejected}

var (
	ErrDuplicateID   = errors.New("duplicate report id")
	ErrInvalidStatus = errors.New("invalid status")
	ErrEmptyID       = errors.New("empty report id")
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Label returns the localized display name of s.
func (s Status) Label(lang i18n.Lang) string {
	return i18n.T(lang, "status."+string(s))
}

// ParseStatus accepts a status name in any case.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

// Report is a company progress submission under moderation.
type Report struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	CompanyAr   string `json:"company_ar"`
	Project     string `json:"project"`
	ProjectAr   string `json:"project_ar"`
	Period      string `json:"period"`
	SubmittedAt string `json:"submitted_at"`
	Status      Status `json:"status"`
	Notes       string `json:"notes,omitempty"`
}

// CompanyName returns the company name in lang.
func (r Report) CompanyName(lang i18n.Lang) string {
	return i18n.Project(r.Company, r.CompanyAr, lang)
}

// ProjectName returns the project name in lang.
func (r Report) ProjectName(lang i18n.Lang) string {
	return i18n.Project(r.Project, r.ProjectAr, lang)
}

// searchFields are the values a query is matched against.
func (r Report) searchFields() []string {
	return []string{r.Company, r.CompanyAr, r.Project, r.ProjectAr, r.Period, string(r.Status)}
}
