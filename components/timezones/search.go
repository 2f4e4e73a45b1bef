package timezones

import "strings"

// Search filters the curated catalog. Matching is case-insensitive; zones
// whose name starts with the query rank before zones that merely contain
// it, and each group keeps catalog order. A non-positive limit means no cap.
// An empty query returns the capped catalog, which lets pickers show the
// full list before the user types.
func Search(query string, limit int) []string {
	return SearchIn(Choices(), query, limit)
}

// SearchIn is Search over an explicit zone list, for callers that restricted
// the members with WithZones or LoadZones.
func SearchIn(zones []string, query string, limit int) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		if limit > 0 && len(zones) > limit {
			zones = zones[:limit]
		}
		out := make([]string, len(zones))
		copy(out, zones)
		return out
	}

	var prefix, contains []string
	for _, zone := range zones {
		lower := strings.ToLower(zone)
		switch {
		case strings.HasPrefix(lower, query):
			prefix = append(prefix, zone)
		case strings.Contains(lower, query):
			contains = append(contains, zone)
		}
	}

	matches := append(prefix, contains...)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
