package sanitize

import (
	"regexp"
	"strings"
)

var (
	groupByRe    = regexp.MustCompile(`(?i)\bGROUP\s+BY\s+`)
	groupTailRe  = regexp.MustCompile(`(?i)\b(HAVING|ORDER\s+BY|OFFSET)\b`)
	selectListRe = regexp.MustCompile(`(?i)\bSELECT\b(?:\s+(?:DISTINCT|TOP\s+\d+))*\s+(.+?)\s+\bFROM\b`)
	aggFuncRe    = regexp.MustCompile(`(?i)\b(COUNT|SUM|AVG|MIN|MAX)\s*\(`)
	aliasRe      = regexp.MustCompile(`(?i)\s+AS\s+`)
)

// repairGroupBy appends to an existing GROUP BY clause any select-list column
// that is neither aggregated nor already grouped. The model tends to add a
// column to the projection and forget to group by it, which SQL Server
// rejects outright. A query without a GROUP BY clause is left untouched.
func (s *Sanitizer) repairGroupBy(sql string) string {
	loc := groupByRe.FindStringIndex(sql)
	if loc == nil {
		return sql
	}

	rest := sql[loc[1]:]
	end := len(rest)
	if tail := groupTailRe.FindStringIndex(rest); tail != nil {
		end = tail[0]
	}
	groupList := strings.TrimSpace(rest[:end])

	m := selectListRe.FindStringSubmatch(sql)
	if m == nil {
		return sql
	}

	grouped := splitColumns(groupList)
	var missing []string
	for _, item := range splitColumns(m[1]) {
		expr := stripAlias(item)
		if expr == "" || expr == "*" || aggFuncRe.MatchString(expr) {
			continue
		}
		if !containsExpr(grouped, expr) && !containsExpr(missing, expr) {
			missing = append(missing, expr)
		}
	}
	if len(missing) == 0 {
		return sql
	}

	newList := groupList + ", " + strings.Join(missing, ", ")
	out := sql[:loc[1]] + newList
	if tail := strings.TrimSpace(rest[end:]); tail != "" {
		out += " " + tail
	}
	return out
}

// splitColumns splits a select or group list on top-level commas, leaving
// function arguments intact.
func splitColumns(list string) []string {
	var (
		parts []string
		depth int
		start int
	)
	for i, r := range list {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(list[start:i]))
				start = i + 1
			}
		}
	}
	if last := strings.TrimSpace(list[start:]); last != "" {
		parts = append(parts, last)
	}
	return parts
}

// stripAlias drops an "expr AS alias" suffix, keeping the expression.
func stripAlias(item string) string {
	if loc := aliasRe.FindStringIndex(item); loc != nil {
		item = item[:loc[0]]
	}
	return strings.TrimSpace(item)
}

func containsExpr(list []string, expr string) bool {
	for _, candidate := range list {
		if strings.EqualFold(strings.TrimSpace(candidate), expr) {
			return true
		}
	}
	return false
}
