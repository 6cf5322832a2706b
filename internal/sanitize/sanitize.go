// Package sanitize repairs model-generated SQL for SQL Server before it is
// allowed anywhere near the database. It is a chain of string rewrites, not a
// parser: markdown residue is stripped, MySQL/Postgres idioms are mapped to
// their T-SQL equivalents, and the text-typed numeric columns of the JOBORDER
// table get CAST expressions injected where the query treats them as numbers.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	fenceOpenRe  = regexp.MustCompile("(?i)```sql\\s*")
	fenceRe      = regexp.MustCompile("```\\s*")
	leadingSQLRe = regexp.MustCompile(`(?i)^\s*sql\b\s*`)
	backtickRe   = regexp.MustCompile("`([^`]+)`")

	limitRe  = regexp.MustCompile(`(?i)\s*\bLIMIT\s+(?:(\d+)\s*,\s*)?(\d+)\b`)
	selectRe = regexp.MustCompile(`(?i)\bSELECT\b`)
	wsRe     = regexp.MustCompile(`\s+`)
)

// functionRewrites maps MySQL/Postgres functions the model likes to emit onto
// their SQL Server equivalents.
var functionRewrites = []struct {
	pattern *regexp.Regexp
	repl    string
}{
	{regexp.MustCompile(`(?i)\bDATETIME\(\)`), "GETDATE()"},
	{regexp.MustCompile(`(?i)\bNOW\(\)`), "GETDATE()"},
	{regexp.MustCompile(`(?i)\bCURDATE\(\)`), "CAST(GETDATE() AS DATE)"},
	{regexp.MustCompile(`(?i)\bLENGTH\(`), "LEN("},
	{regexp.MustCompile(`(?i)\bSUBSTR\(`), "SUBSTRING("},
}

// Sanitizer holds the per-column cast rules compiled from the schema's
// numeric-text column set.
type Sanitizer struct {
	castRules   []castRule
	numericCols map[string]string
}

// New compiles rewrite rules for the given numeric-but-stored-as-text columns.
func New(numericTextColumns []string) *Sanitizer {
	s := &Sanitizer{numericCols: make(map[string]string, len(numericTextColumns))}
	for _, col := range numericTextColumns {
		s.castRules = append(s.castRules, newCastRule(col))
		s.numericCols[strings.ToUpper(col)] = col
	}
	return s
}

// Clean runs the full rewrite chain over one SQL string. Empty input passes
// through empty; Clean never fails, it only rewrites.
func (s *Sanitizer) Clean(sql string) string {
	if strings.TrimSpace(sql) == "" {
		return ""
	}

	sql = fenceOpenRe.ReplaceAllString(sql, "")
	sql = fenceRe.ReplaceAllString(sql, "")
	sql = leadingSQLRe.ReplaceAllString(sql, "")

	sql = backtickRe.ReplaceAllString(sql, "$1")
	sql = strings.ReplaceAll(sql, "`", "")

	for _, fr := range functionRewrites {
		sql = fr.pattern.ReplaceAllString(sql, fr.repl)
	}

	sql = rewriteLimit(sql)

	sql = strings.TrimSpace(sql)
	sql = strings.TrimSuffix(sql, ";")
	sql = wsRe.ReplaceAllString(sql, " ")
	sql = strings.TrimSpace(sql)

	sql = s.injectCasts(sql)
	sql = s.repairGroupBy(sql)

	return strings.TrimSpace(sql)
}

// rewriteLimit converts LIMIT n (and the MySQL LIMIT offset, n form) into a
// TOP clause on the first SELECT. The offset is dropped, matching the
// behavior the database consumers already rely on.
func rewriteLimit(sql string) string {
	m := limitRe.FindStringSubmatch(sql)
	if m == nil {
		return sql
	}
	limit := m[2]

	sql = limitRe.ReplaceAllString(sql, "")

	if loc := selectRe.FindStringIndex(sql); loc != nil {
		sql = sql[:loc[0]] + "SELECT TOP " + limit + sql[loc[1]:]
	}
	return sql
}
