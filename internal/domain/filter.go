package domain

import "strings"

// Filter returns the entries whose content contains query, ignoring case.
// An empty query matches everything. The input slice is never modified.
func Filter(entries []Entry, query string) []Entry {
	q := strings.ToLower(query)
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Content), q) {
			out = append(out, e)
		}
	}
	return out
}
