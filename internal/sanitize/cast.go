package sanitize

import (
	"regexp"
	"strings"
)

// castRule rewrites references to one numeric-text column. Aggregates get a
// plain CAST; comparisons and ORDER BY use TRY_CAST so rows holding
// unparseable text come back NULL instead of failing the whole query.
type castRule struct {
	agg     *regexp.Regexp
	aggRepl string
	cmp     *regexp.Regexp
	cmpRepl string
}

func newCastRule(col string) castRule {
	c := regexp.QuoteMeta(col)
	return castRule{
		agg:     regexp.MustCompile(`(?i)\b(SUM|AVG|MIN|MAX)\s*\(\s*` + c + `\s*\)`),
		aggRepl: "${1}(CAST(" + col + " AS FLOAT))",
		cmp:     regexp.MustCompile(`(?i)\b` + c + `\s*(=|<>|!=|>=|<=|>|<)\s*(\d+(?:\.\d+)?)`),
		cmpRepl: "TRY_CAST(" + col + " AS FLOAT) ${1} ${2}",
	}
}

var (
	orderByRe   = regexp.MustCompile(`(?i)\bORDER\s+BY\s+`)
	orderStopRe = regexp.MustCompile(`(?i)\bOFFSET\b`)
	orderDirRe  = regexp.MustCompile(`(?i)\s+(ASC|DESC)$`)
)

// injectCasts applies every cast rule to the query. Aggregate rewrites run
// first so the comparison rule never sees an already-wrapped column.
func (s *Sanitizer) injectCasts(sql string) string {
	for _, r := range s.castRules {
		sql = r.agg.ReplaceAllString(sql, r.aggRepl)
	}
	for _, r := range s.castRules {
		sql = r.cmp.ReplaceAllString(sql, r.cmpRepl)
	}
	return s.castOrderBy(sql)
}

// castOrderBy wraps numeric-text columns at every position in the ORDER BY
// list, so a sort like "ORDER BY MAT_TYPE, STOCK_MAIN" stays numeric on the
// second key too.
func (s *Sanitizer) castOrderBy(sql string) string {
	loc := orderByRe.FindStringIndex(sql)
	if loc == nil {
		return sql
	}

	rest := sql[loc[1]:]
	end := len(rest)
	if stop := orderStopRe.FindStringIndex(rest); stop != nil {
		end = stop[0]
	}

	items := splitColumns(rest[:end])
	changed := false
	for i, item := range items {
		expr, dir := item, ""
		if m := orderDirRe.FindStringIndex(item); m != nil {
			expr, dir = strings.TrimSpace(item[:m[0]]), item[m[0]:]
		}
		if col, ok := s.numericCols[strings.ToUpper(expr)]; ok {
			items[i] = "TRY_CAST(" + col + " AS FLOAT)" + dir
			changed = true
		}
	}
	if !changed {
		return sql
	}

	out := sql[:loc[1]] + strings.Join(items, ", ")
	if tail := strings.TrimSpace(rest[end:]); tail != "" {
		out += " " + tail
	}
	return out
}
