package database

import (
	"context"
	"fmt"

	"joborder-agent/internal/models"
)

const schemaQuery = `
	SELECT
		COLUMN_NAME,
		DATA_TYPE,
		IS_NULLABLE,
		ISNULL(COLUMN_DEFAULT, ''),
		ISNULL(CHARACTER_MAXIMUM_LENGTH, 0)
	FROM INFORMATION_SCHEMA.COLUMNS
	WHERE TABLE_NAME = @p1
	ORDER BY ORDINAL_POSITION`

// ExecuteQuery runs one ad hoc SELECT and returns the rows as maps keyed by
// column name. Byte slices are converted to strings so the JSON response
// stays readable.
func (c *Client) ExecuteQuery(ctx context.Context, query string) ([]map[string]interface{}, error) {
	ctx, cancel := c.queryContext(ctx)
	defer cancel()

	rows, err := c.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error executing SQL query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("error reading result columns: %w", err)
	}

	results := make([]map[string]interface{}, 0)
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}

		row := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return results, nil
}

// TableSchema returns the live JOBORDER column list from
// INFORMATION_SCHEMA.COLUMNS.
func (c *Client) TableSchema(ctx context.Context) ([]models.ColumnInfo, error) {
	ctx, cancel := c.queryContext(ctx)
	defer cancel()

	rows, err := c.DB.QueryContext(ctx, schemaQuery, TableName)
	if err != nil {
		return nil, fmt.Errorf("error querying table schema: %w", err)
	}
	defer rows.Close()

	var columns []models.ColumnInfo
	for rows.Next() {
		var (
			col      models.ColumnInfo
			nullable string
		)
		if err := rows.Scan(&col.Name, &col.Type, &nullable, &col.Default, &col.MaxLength); err != nil {
			return nil, fmt.Errorf("error scanning schema row: %w", err)
		}
		col.Nullable = nullable == "YES"
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schema rows: %w", err)
	}

	return columns, nil
}
