package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean_CastInjection(t *testing.T) {
	s := New(testColumns)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "sum aggregate",
			input: "SELECT MAT_GROUP, SUM(STOCK_MAIN) FROM JOBORDER GROUP BY MAT_GROUP",
			want:  "SELECT MAT_GROUP, SUM(CAST(STOCK_MAIN AS FLOAT)) FROM JOBORDER GROUP BY MAT_GROUP",
		},
		{
			name:  "avg aggregate lowercase",
			input: "SELECT avg(prd_qty) FROM JOBORDER",
			want:  "SELECT avg(CAST(PRD_QTY AS FLOAT)) FROM JOBORDER",
		},
		{
			name:  "numeric comparison",
			input: "SELECT PART_NO, PART_NAME, STOCK_MAIN FROM JOBORDER WHERE STOCK_MAIN < 100",
			want:  "SELECT PART_NO, PART_NAME, STOCK_MAIN FROM JOBORDER WHERE TRY_CAST(STOCK_MAIN AS FLOAT) < 100",
		},
		{
			name:  "decimal comparison",
			input: "SELECT * FROM JOBORDER WHERE PRD_QTY >= 12.5",
			want:  "SELECT * FROM JOBORDER WHERE TRY_CAST(PRD_QTY AS FLOAT) >= 12.5",
		},
		{
			name:  "order by numeric column",
			input: "SELECT PART_NO, STOCK_MAIN FROM JOBORDER ORDER BY STOCK_MAIN DESC",
			want:  "SELECT PART_NO, STOCK_MAIN FROM JOBORDER ORDER BY TRY_CAST(STOCK_MAIN AS FLOAT) DESC",
		},
		{
			name:  "order by numeric column in second position",
			input: "SELECT MAT_TYPE, STOCK_MAIN FROM JOBORDER ORDER BY MAT_TYPE, STOCK_MAIN DESC",
			want:  "SELECT MAT_TYPE, STOCK_MAIN FROM JOBORDER ORDER BY MAT_TYPE, TRY_CAST(STOCK_MAIN AS FLOAT) DESC",
		},
		{
			name:  "order by two numeric columns",
			input: "SELECT PART_NO FROM JOBORDER ORDER BY prd_qty, STOCK_NG ASC",
			want:  "SELECT PART_NO FROM JOBORDER ORDER BY TRY_CAST(PRD_QTY AS FLOAT), TRY_CAST(STOCK_NG AS FLOAT) ASC",
		},
		{
			name:  "aggregate and comparison together",
			input: "SELECT MAT_TYPE, SUM(STOCK_NG) FROM JOBORDER WHERE STOCK_NG > 0 GROUP BY MAT_TYPE",
			want:  "SELECT MAT_TYPE, SUM(CAST(STOCK_NG AS FLOAT)) FROM JOBORDER WHERE TRY_CAST(STOCK_NG AS FLOAT) > 0 GROUP BY MAT_TYPE",
		},
		{
			name:  "text column untouched",
			input: "SELECT * FROM JOBORDER WHERE LEN(PART_NO) > 5",
			want:  "SELECT * FROM JOBORDER WHERE LEN(PART_NO) > 5",
		},
		{
			name:  "string comparison untouched",
			input: "SELECT * FROM JOBORDER WHERE STOCK_MAIN = 'n/a'",
			want:  "SELECT * FROM JOBORDER WHERE STOCK_MAIN = 'n/a'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Clean(tt.input))
		})
	}
}
