package llm

import (
	"fmt"
	"sort"
	"strings"
)

// FormatResults renders result rows as plain text for the narration prompt.
// At most limit rows are rendered; keys are sorted so the prompt is stable.
func FormatResults(rows []map[string]interface{}, limit int) string {
	if len(rows) == 0 {
		return "The query returned no rows."
	}

	shown := rows
	truncated := 0
	if limit > 0 && len(rows) > limit {
		shown = rows[:limit]
		truncated = len(rows) - limit
	}

	var result strings.Builder
	for i, row := range shown {
		result.WriteString(fmt.Sprintf("Row %d:\n", i+1))

		keys := make([]string, 0, len(row))
		for key := range row {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			result.WriteString(fmt.Sprintf("  %s: %v\n", key, row[key]))
		}
	}
	if truncated > 0 {
		result.WriteString(fmt.Sprintf("... and %d more rows not shown\n", truncated))
	}

	return result.String()
}

// truncateString shortens a string for log output.
func truncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength] + "..."
}
