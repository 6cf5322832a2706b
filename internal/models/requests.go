package models

import "time"

// QueryRequest is the body of POST /query.
// Narrate asks the model for a second pass that phrases the result
// set conversationally; it is off by default.
type QueryRequest struct {
	Question string `json:"question" binding:"required"`
	Narrate  bool   `json:"narrate,omitempty"`
}

// QueryResponse carries the generated SQL alongside the rows it produced.
type QueryResponse struct {
	Question    string                   `json:"question"`
	SQLQuery    string                   `json:"sql_query"`
	Explanation string                   `json:"explanation"`
	Results     []map[string]interface{} `json:"results"`
	Answer      string                   `json:"answer,omitempty"`
	Timestamp   time.Time                `json:"timestamp"`
}

// HealthResponse reports per-dependency status for GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Ollama    string    `json:"ollama"`
	Timestamp time.Time `json:"timestamp"`
}

// ColumnInfo describes one column from INFORMATION_SCHEMA.COLUMNS.
type ColumnInfo struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Nullable  bool   `json:"nullable"`
	Default   string `json:"default,omitempty"`
	MaxLength int64  `json:"max_length,omitempty"`
}

// SchemaResponse is the body of GET /schema.
type SchemaResponse struct {
	TableName string       `json:"table_name"`
	Columns   []ColumnInfo `json:"columns"`
}
