package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"joborder-agent/internal/database"
	"joborder-agent/internal/models"
	"joborder-agent/internal/sanitize"
)

type fakeModel struct {
	sql         string
	explanation string
	generateErr error

	answer     string
	narrateErr error

	narrateCalled bool
}

func (f *fakeModel) GenerateSQL(ctx context.Context, question, schema string) (string, string, error) {
	return f.sql, f.explanation, f.generateErr
}

func (f *fakeModel) Narrate(ctx context.Context, question, sqlQuery string, rows []map[string]interface{}) (string, error) {
	f.narrateCalled = true
	return f.answer, f.narrateErr
}

type fakeExecutor struct {
	rows   []map[string]interface{}
	err    error
	gotSQL string
	called bool
}

func (f *fakeExecutor) ExecuteQuery(ctx context.Context, query string) ([]map[string]interface{}, error) {
	f.called = true
	f.gotSQL = query
	return f.rows, f.err
}

func newService(t *testing.T, model *fakeModel, db *fakeExecutor) *Service {
	return New(model, db, sanitize.New(database.NumericTextColumns), zaptest.NewLogger(t))
}

func TestProcessQuestion_CleansBeforeExecuting(t *testing.T) {
	model := &fakeModel{
		sql:         "```sql\nSELECT PART_NO, STOCK_MAIN FROM JOBORDER WHERE STOCK_MAIN < 10 LIMIT 5\n```",
		explanation: "Parts running low on stock.",
	}
	db := &fakeExecutor{rows: []map[string]interface{}{{"PART_NO": "A-100", "STOCK_MAIN": "3"}}}
	svc := newService(t, model, db)

	resp, err := svc.ProcessQuestion(context.Background(), models.QueryRequest{Question: "which parts are low?"})
	require.NoError(t, err)

	want := "SELECT TOP 5 PART_NO, STOCK_MAIN FROM JOBORDER WHERE TRY_CAST(STOCK_MAIN AS FLOAT) < 10"
	assert.Equal(t, want, db.gotSQL)
	assert.Equal(t, want, resp.SQLQuery)
	assert.Equal(t, "which parts are low?", resp.Question)
	assert.Equal(t, "Parts running low on stock.", resp.Explanation)
	assert.Equal(t, db.rows, resp.Results)
	assert.Empty(t, resp.Answer)
	assert.False(t, resp.Timestamp.IsZero())
	assert.False(t, model.narrateCalled)
}

func TestProcessQuestion_RejectedQuery(t *testing.T) {
	model := &fakeModel{sql: "DROP TABLE JOBORDER"}
	db := &fakeExecutor{}
	svc := newService(t, model, db)

	_, err := svc.ProcessQuestion(context.Background(), models.QueryRequest{Question: "drop it"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRejectedQuery)
	assert.False(t, db.called)
}

func TestProcessQuestion_GenerationError(t *testing.T) {
	model := &fakeModel{generateErr: errors.New("model unreachable")}
	db := &fakeExecutor{}
	svc := newService(t, model, db)

	_, err := svc.ProcessQuestion(context.Background(), models.QueryRequest{Question: "anything"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRejectedQuery)
	assert.Contains(t, err.Error(), "sql generation failed")
	assert.False(t, db.called)
}

func TestProcessQuestion_ExecutionError(t *testing.T) {
	model := &fakeModel{sql: "SELECT * FROM JOBORDER"}
	db := &fakeExecutor{err: errors.New("connection reset")}
	svc := newService(t, model, db)

	_, err := svc.ProcessQuestion(context.Background(), models.QueryRequest{Question: "show everything"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRejectedQuery)
	assert.Contains(t, err.Error(), "sql execution failed")
}

func TestProcessQuestion_Narrate(t *testing.T) {
	model := &fakeModel{sql: "SELECT COUNT(*) FROM JOBORDER", answer: "There are 42 job orders."}
	db := &fakeExecutor{rows: []map[string]interface{}{{"": int64(42)}}}
	svc := newService(t, model, db)

	resp, err := svc.ProcessQuestion(context.Background(), models.QueryRequest{Question: "how many?", Narrate: true})
	require.NoError(t, err)
	assert.True(t, model.narrateCalled)
	assert.Equal(t, "There are 42 job orders.", resp.Answer)
}

func TestProcessQuestion_NarrateFailureDegrades(t *testing.T) {
	model := &fakeModel{sql: "SELECT COUNT(*) FROM JOBORDER", narrateErr: errors.New("model timeout")}
	db := &fakeExecutor{rows: []map[string]interface{}{{"": int64(42)}}}
	svc := newService(t, model, db)

	resp, err := svc.ProcessQuestion(context.Background(), models.QueryRequest{Question: "how many?", Narrate: true})
	require.NoError(t, err)
	assert.True(t, model.narrateCalled)
	assert.Empty(t, resp.Answer)
	assert.Equal(t, db.rows, resp.Results)
}
