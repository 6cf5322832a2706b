package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"joborder-agent/internal/agent"
	"joborder-agent/internal/config"
	"joborder-agent/internal/database"
	"joborder-agent/internal/models"
)

// QueryService is the pipeline behind POST /query.
type QueryService interface {
	ProcessQuestion(ctx context.Context, req models.QueryRequest) (*models.QueryResponse, error)
}

// SchemaStore is the database surface the handlers need.
type SchemaStore interface {
	Ping(ctx context.Context) error
	TableSchema(ctx context.Context) ([]models.ColumnInfo, error)
}

// ModelHealth reports model service reachability for /health.
type ModelHealth interface {
	Healthy(ctx context.Context) bool
}

type Handler struct {
	service QueryService
	db      SchemaStore
	model   ModelHealth
	app     config.AppConfig
	logger  *zap.Logger
}

func NewHandler(service QueryService, db SchemaStore, model ModelHealth, app config.AppConfig, log *zap.Logger) *Handler {
	return &Handler{
		service: service,
		db:      db,
		model:   model,
		app:     app,
		logger:  log.With(zap.String("component", "api")),
	}
}

func (h *Handler) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": h.app.Name, "version": h.app.Version})
}

func (h *Handler) handleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "ok"
	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("database health check failed", zap.Error(err))
		dbStatus = "error"
	}

	ollamaStatus := "ok"
	if !h.model.Healthy(c.Request.Context()) {
		ollamaStatus = "error"
	}

	overall := "ok"
	if dbStatus != "ok" || ollamaStatus != "ok" {
		overall = "error"
	}

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    overall,
		Database:  dbStatus,
		Ollama:    ollamaStatus,
		Timestamp: time.Now().UTC(),
	})
}

func (h *Handler) handleSchema(c *gin.Context) {
	columns, err := h.db.TableSchema(c.Request.Context())
	if err != nil {
		h.logger.Error("schema lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.SchemaResponse{
		TableName: database.TableName,
		Columns:   columns,
	})
}

func (h *Handler) handleQuery(c *gin.Context) {
	var req models.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.service.ProcessQuestion(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, agent.ErrRejectedQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("query processing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}
