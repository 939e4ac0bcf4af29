package project

import "github.com/montanaflynn/stats"

// Stats are the project KPIs shown on the dashboard.
type Stats struct {
	Total          int
	Active         int     // not completed
	CompletionRate float64 // mean progress, percent
	TeamMembers    int
	AtRisk         int // high priority and not completed
	ByStatus       map[Status]int
}

func Summarize(projects []Project) Stats {
	s := Stats{Total: len(projects), ByStatus: make(map[Status]int, len(Statuses))}
	progress := make(stats.Float64Data, 0, len(projects))
	for _, p := range projects {
		s.ByStatus[p.Status]++
		s.TeamMembers += p.TeamSize
		progress = append(progress, float64(p.Progress))
		if p.Status == StatusCompleted {
			continue
		}
		s.Active++
		if p.Priority == PriorityHigh {
			s.AtRisk++
		}
	}
	if len(progress) > 0 {
		s.CompletionRate, _ = stats.Mean(progress)
	}
	return s
}
