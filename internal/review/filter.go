package review

import (
	"strings"

	"golang.org/x/text/cases"
)

// Filter returns the reports matching query, in their original order. The
// query is trimmed and case-folded; an empty query matches everything. A
// report matches when the query is a substring of its company or project
// name in either language, its period, or its status.
func Filter(reports []Report, query string) []Report {
	q := strings.TrimSpace(query)
	if q == "" {
		out := make([]Report, len(reports))
		copy(out, reports)
		return out
	}

	fold := cases.Fold()
	q = fold.String(q)

	out := make([]Report, 0, len(reports))
	for _, r := range reports {
		if matches(fold, r, q) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether r would be kept by Filter for query.
func Matches(r Report, query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}
	fold := cases.Fold()
	return matches(fold, r, fold.String(q))
}

func matches(fold cases.Caser, r Report, foldedQuery string) bool {
	for _, field := range r.searchFields() {
		if strings.Contains(fold.String(field), foldedQuery) {
			return true
		}
	}
	return false
}
