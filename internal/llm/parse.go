package llm

import (
	"fmt"
	"regexp"
	"strings"
)

var sqlFenceBlockRe = regexp.MustCompile("(?is)```sql\\s*(.*?)```")

var sqlKeywords = []string{"SELECT", "FROM", "WHERE", "ORDER BY", "GROUP BY"}

// ParseResponse extracts the SQL query and the explanation from a model
// response. Three methods, tried in order: the SQL:/EXPLANATION: labels the
// prompt asks for, a fenced ```sql block, and finally a line-wise scan for
// SQL keywords. Models drift from the requested format often enough that all
// three see real use.
func ParseResponse(response string) (string, string, error) {
	if strings.Contains(response, "SQL:") && strings.Contains(response, "EXPLANATION:") {
		parts := strings.SplitN(response, "EXPLANATION:", 2)
		sqlPart := strings.Replace(parts[0], "SQL:", "", 1)
		return strings.TrimSpace(sqlPart), strings.TrimSpace(parts[1]), nil
	}

	if m := sqlFenceBlockRe.FindStringSubmatch(response); m != nil {
		sqlQuery := strings.TrimSpace(m[1])
		explanation := strings.Replace(response, m[0], "", 1)
		explanation = strings.ReplaceAll(explanation, "```", "")
		return sqlQuery, strings.TrimSpace(explanation), nil
	}

	var sqlLines, explanationLines []string
	for _, line := range strings.Split(response, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		upper := strings.ToUpper(trimmed)
		if containsAnyKeyword(upper) {
			sqlLines = append(sqlLines, trimmed)
		} else if !strings.Contains(upper, "SQL:") && !strings.Contains(trimmed, "```") {
			explanationLines = append(explanationLines, trimmed)
		}
	}

	sqlQuery := strings.Join(sqlLines, "\n")
	if sqlQuery == "" {
		return "", "", fmt.Errorf("no SQL query found in the response")
	}
	explanation := strings.Join(explanationLines, "\n")
	if explanation == "" {
		explanation = "Query executed successfully"
	}
	return sqlQuery, explanation, nil
}

func containsAnyKeyword(upperLine string) bool {
	for _, kw := range sqlKeywords {
		if strings.Contains(upperLine, kw) {
			return true
		}
	}
	return false
}
