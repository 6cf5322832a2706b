// Package agent wires the request pipeline: ask the model for SQL, repair
// it, guard it, run it, and optionally ask the model again to narrate the
// rows. No state survives a request.
package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"joborder-agent/internal/database"
	"joborder-agent/internal/metrics"
	"joborder-agent/internal/models"
	"joborder-agent/internal/sanitize"
)

// ErrRejectedQuery marks SQL turned away by the guard; the API layer maps it
// to a 400 instead of a 500.
var ErrRejectedQuery = errors.New("generated query rejected")

// SQLGenerator is the model side of the pipeline.
type SQLGenerator interface {
	GenerateSQL(ctx context.Context, question, schema string) (string, string, error)
	Narrate(ctx context.Context, question, sqlQuery string, rows []map[string]interface{}) (string, error)
}

// QueryExecutor is the database side of the pipeline.
type QueryExecutor interface {
	ExecuteQuery(ctx context.Context, query string) ([]map[string]interface{}, error)
}

type Service struct {
	model     SQLGenerator
	db        QueryExecutor
	sanitizer *sanitize.Sanitizer
	logger    *zap.Logger
}

func New(model SQLGenerator, db QueryExecutor, sanitizer *sanitize.Sanitizer, log *zap.Logger) *Service {
	return &Service{
		model:     model,
		db:        db,
		sanitizer: sanitizer,
		logger:    log.With(zap.String("component", "agent")),
	}
}

// ProcessQuestion runs one question through the full pipeline. The model and
// database calls are sequential, one attempt each; their own timeouts apply.
func (s *Service) ProcessQuestion(ctx context.Context, req models.QueryRequest) (*models.QueryResponse, error) {
	log := s.logger.With(zap.String("question", req.Question))

	start := time.Now()
	rawSQL, explanation, err := s.model.GenerateSQL(ctx, req.Question, database.PromptSchema)
	metrics.ObserveStage("generate", start)
	if err != nil {
		return nil, fmt.Errorf("sql generation failed: %w", err)
	}
	log.Debug("raw sql from model", zap.String("sql", rawSQL))

	cleaned := s.sanitizer.Clean(rawSQL)
	log.Info("sanitized sql", zap.String("sql", cleaned))

	if err := sanitize.CheckQuery(cleaned); err != nil {
		metrics.RejectedQueries.Inc()
		log.Warn("query rejected", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrRejectedQuery, err)
	}

	start = time.Now()
	results, err := s.db.ExecuteQuery(ctx, cleaned)
	metrics.ObserveStage("execute", start)
	if err != nil {
		return nil, fmt.Errorf("sql execution failed: %w", err)
	}

	response := &models.QueryResponse{
		Question:    req.Question,
		SQLQuery:    cleaned,
		Explanation: explanation,
		Results:     results,
		Timestamp:   time.Now().UTC(),
	}

	if req.Narrate {
		start = time.Now()
		answer, err := s.model.Narrate(ctx, req.Question, cleaned, results)
		metrics.ObserveStage("narrate", start)
		if err != nil {
			// The SQL and rows are already in hand; ship them without the
			// conversational answer rather than failing the request.
			log.Warn("narration failed", zap.Error(err))
		} else {
			response.Answer = answer
		}
	}

	log.Info("question processed", zap.Int("rows", len(results)))
	return response, nil
}
