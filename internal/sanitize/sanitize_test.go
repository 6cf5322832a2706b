package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testColumns = []string{"PRD_QTY", "STOCK_MAIN", "STOCK_NG", "PD01"}

func TestClean_MarkdownResidue(t *testing.T) {
	s := New(testColumns)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "sql fence",
			input: "```sql\nSELECT * FROM JOBORDER WHERE MAT_TYPE = 'Local'\n```",
			want:  "SELECT * FROM JOBORDER WHERE MAT_TYPE = 'Local'",
		},
		{
			name:  "bare fence",
			input: "```\nSELECT * FROM JOBORDER\n```",
			want:  "SELECT * FROM JOBORDER",
		},
		{
			name:  "stray sql token",
			input: "sql SELECT * FROM JOBORDER",
			want:  "SELECT * FROM JOBORDER",
		},
		{
			name:  "backticked columns",
			input: "SELECT `PART_NO`, `PART_NAME` FROM JOBORDER",
			want:  "SELECT PART_NO, PART_NAME FROM JOBORDER",
		},
		{
			name:  "unbalanced backtick",
			input: "SELECT PART_NO` FROM JOBORDER",
			want:  "SELECT PART_NO FROM JOBORDER",
		},
		{
			name:  "empty input",
			input: "   \n",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Clean(tt.input))
		})
	}
}

func TestClean_FunctionRewrites(t *testing.T) {
	s := New(testColumns)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "now",
			input: "SELECT * FROM JOBORDER WHERE CREATED_AT >= NOW()",
			want:  "SELECT * FROM JOBORDER WHERE CREATED_AT >= GETDATE()",
		},
		{
			name:  "datetime",
			input: "SELECT DATETIME() FROM JOBORDER",
			want:  "SELECT GETDATE() FROM JOBORDER",
		},
		{
			name:  "curdate",
			input: "SELECT * FROM JOBORDER WHERE CREATED_AT = CURDATE()",
			want:  "SELECT * FROM JOBORDER WHERE CREATED_AT = CAST(GETDATE() AS DATE)",
		},
		{
			name:  "length and substr",
			input: "SELECT * FROM JOBORDER WHERE LENGTH(PART_NO) > 5 AND SUBSTR(PART_NAME, 1, 3) = 'Top'",
			want:  "SELECT * FROM JOBORDER WHERE LEN(PART_NO) > 5 AND SUBSTRING(PART_NAME, 1, 3) = 'Top'",
		},
		{
			name:  "lowercase mysql functions",
			input: "select * from JOBORDER where CREATED_AT >= now()",
			want:  "select * from JOBORDER where CREATED_AT >= GETDATE()",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Clean(tt.input))
		})
	}
}

func TestClean_LimitToTop(t *testing.T) {
	s := New(testColumns)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain limit",
			input: "SELECT PART_NO, PART_NAME FROM JOBORDER LIMIT 10",
			want:  "SELECT TOP 10 PART_NO, PART_NAME FROM JOBORDER",
		},
		{
			name:  "limit with offset drops offset",
			input: "SELECT * FROM JOBORDER LIMIT 5, 20",
			want:  "SELECT TOP 20 * FROM JOBORDER",
		},
		{
			name:  "lowercase limit",
			input: "select * from JOBORDER limit 3",
			want:  "SELECT TOP 3 * from JOBORDER",
		},
		{
			name:  "limit after order by",
			input: "SELECT * FROM JOBORDER ORDER BY PART_NO LIMIT 10",
			want:  "SELECT TOP 10 * FROM JOBORDER ORDER BY PART_NO",
		},
		{
			name:  "existing top untouched",
			input: "SELECT TOP 10 * FROM JOBORDER",
			want:  "SELECT TOP 10 * FROM JOBORDER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Clean(tt.input))
		})
	}
}

func TestClean_WhitespaceAndSemicolon(t *testing.T) {
	s := New(testColumns)

	assert.Equal(t,
		"SELECT PART_NO FROM JOBORDER WHERE MAT_TYPE = 'Local'",
		s.Clean("SELECT  PART_NO\n  FROM JOBORDER\n  WHERE MAT_TYPE = 'Local';"),
	)
}
