package sanitize

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrEmptyQuery  = errors.New("empty query")
	ErrNotSelect   = errors.New("query must start with SELECT")
	ErrMissingFrom = errors.New("invalid query structure: missing FROM clause")
)

// Keyword match is on word boundaries so column names like CREATED_AT do not
// trip the CREATE entry. EXECUTE is listed before EXEC so the full word wins.
var disallowedRe = regexp.MustCompile(`(?i)\b(INSERT|UPDATE|DELETE|DROP|ALTER|TRUNCATE|CREATE|GRANT|REVOKE|EXECUTE|EXEC|UNION)\b`)

var disallowedMarkers = []string{"--", "/*", "*/"}

// CheckQuery is the denylist guard between the sanitizer and the database.
// It rejects anything that is not a plain SELECT over the schema.
func CheckQuery(query string) error {
	q := strings.TrimSpace(query)
	if q == "" {
		return ErrEmptyQuery
	}

	if kw := disallowedRe.FindString(q); kw != "" {
		return fmt.Errorf("disallowed keyword found: %s", strings.ToUpper(kw))
	}
	for _, marker := range disallowedMarkers {
		if strings.Contains(q, marker) {
			return fmt.Errorf("disallowed sequence found: %s", marker)
		}
	}

	lower := strings.ToLower(q)
	if !strings.HasPrefix(lower, "select") {
		return ErrNotSelect
	}
	if !strings.Contains(lower, "from") {
		return ErrMissingFrom
	}
	return nil
}
