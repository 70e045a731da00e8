package client

import (
	"strings"

	"github.com/hasthiya-it/tracker-backend/internal/projects"
)

// FilterAll matches every status.
const FilterAll = "All"

// ApplyFilter derives the visible subset of list: keep a project when the
// status filter is "All" or matches exactly, and the search text is empty
// or a case-insensitive substring of the name or description. The input
// is never mutated and source order is preserved.
func ApplyFilter(list []projects.Project, searchText, statusFilter string) []projects.Project {
	query := strings.ToLower(strings.TrimSpace(searchText))

	out := make([]projects.Project, 0, len(list))
	for _, p := range list {
		if statusFilter != FilterAll && string(p.Status) != statusFilter {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesQuery(p projects.Project, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) {
		return true
	}
	return p.Description != nil && strings.Contains(strings.ToLower(*p.Description), query)
}
