package project

import (
	"strings"

	"golang.org/x/text/cases"
)

// Criteria narrows the catalogue. Zero fields match everything.
type Criteria struct {
	Query  string
	Status Status
	Type   Type
}

// Filter returns the projects matching all of c, in their original order.
// The query is trimmed and case-folded and matched against the id, name and
// location in either language.
func Filter(projects []Project, c Criteria) []Project {
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(c.Query))

	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if c.Status != "" && p.Status != c.Status {
			continue
		}
		if c.Type != "" && p.Type != c.Type {
			continue
		}
		if q != "" && !matches(fold, p, q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matches(fold cases.Caser, p Project, foldedQuery string) bool {
	for _, field := range p.searchFields() {
		if strings.Contains(fold.String(field), foldedQuery) {
			return true
		}
	}
	return false
}
