package mcptools

import (
	"sort"

	"github.com/filter-today/filterctl/internal/record"
)

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func sortedDates(tm record.ToneMap) []string {
	keys := make([]string, 0, len(tm))
	for k := range tm {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
