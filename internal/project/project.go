// Package project is the city project catalogue: a fixed set of projects
// searched by name, id or location and narrowed by status and type.
package project

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sadopc/rased/internal/i18n"
)

// Status is the delivery stage of a project.
type Status string

const (
	StatusPlanning   Status = "Planning"
	StatusInProgress Status = "In Progress"
	StatusReview     Status = "Review"
	StatusCompleted  Status = "Completed"
)

// Statuses lists every status in filter order.
var Statuses = []Status{StatusPlanning, StatusInProgress, StatusReview, StatusCompleted}

// Type is the project category.
type Type string

const (
	TypeResidential    Type = "Residential"
	TypeCommercial     Type = "Commercial"
	TypeIndustrial     Type = "Industrial"
	TypeInfrastructure Type = "Infrastructure"
	TypeEnvironmental  Type = "Environmental"
)

// Types lists every type in filter order.
var Types = []Type{TypeResidential, TypeCommercial, TypeIndustrial, TypeInfrastructure, TypeEnvironmental}

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

var (
	ErrInvalidStatus = errors.New("invalid project status")
	ErrInvalidType   = errors.New("invalid project type")
)

// catalogKey turns "In Progress" into "inprogress".
func catalogKey(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", ""))
}

// Label returns the localized name of s. The empty status reads as "All".
func (s Status) Label(lang i18n.Lang) string {
	if s == "" {
		return i18n.T(lang, "project.allStatuses")
	}
	return i18n.T(lang, "project.status."+catalogKey(string(s)))
}

// Label returns the localized name of t. The empty type reads as "All".
func (t Type) Label(lang i18n.Lang) string {
	if t == "" {
		return i18n.T(lang, "project.allTypes")
	}
	return i18n.T(lang, "project.type."+catalogKey(string(t)))
}

func (p Priority) Label(lang i18n.Lang) string {
	return i18n.T(lang, "project.priority."+catalogKey(string(p)))
}

// ParseStatus matches a status by name in any case, with or without the
// space. "" and "all" mean no status filter.
func ParseStatus(s string) (Status, error) {
	k := catalogKey(strings.TrimSpace(s))
	if k == "" || k == "all" {
		return "", nil
	}
	for _, st := range Statuses {
		if catalogKey(string(st)) == k {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// ParseType matches a type by name in any case. "" and "all" mean no type
// filter.
func ParseType(s string) (Type, error) {
	k := catalogKey(strings.TrimSpace(s))
	if k == "" || k == "all" {
		return "", nil
	}
	for _, t := range Types {
		if catalogKey(string(t)) == k {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
}

// Project is one entry of the catalogue.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	NameAr       string   `json:"name_ar"`
	Type         Type     `json:"type"`
	Status       Status   `json:"status"`
	Progress     int      `json:"progress"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Budget       string   `json:"budget"`
	TeamSize     int      `json:"team_size"`
	Location     string   `json:"location"`
	LocationAr   string   `json:"location_ar"`
	Priority     Priority `json:"priority"`
	Contractor   string   `json:"contractor"`
	ContractorAr string   `json:"contractor_ar"`
	ContractName string   `json:"contract_name"`
}

func (p Project) DisplayName(lang i18n.Lang) string {
	return i18n.Project(p.Name, p.NameAr, lang)
}

func (p Project) LocationName(lang i18n.Lang) string {
	return i18n.Project(p.Location, p.LocationAr, lang)
}

func (p Project) ContractorName(lang i18n.Lang) string {
	return i18n.Project(p.Contractor, p.ContractorAr, lang)
}

// searchFields are the values a query is matched against.
func (p Project) searchFields() []string {
	return []string{p.ID, p.Name, p.NameAr, p.Location, p.LocationAr}
}
