package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"

	"joborder-agent/internal/config"
)

// Client talks to the locally hosted Ollama instance. Generation and
// narration go through langchaingo; the health probe hits the native
// /api/tags endpoint, which langchaingo does not expose.
type Client struct {
	llm           *ollama.LLM
	baseURL       string
	timeout       time.Duration
	healthTimeout time.Duration
	narrateRows   int
	httpClient    *http.Client
	logger        *zap.Logger
}

func New(cfg config.OllamaConfig, log *zap.Logger) (*Client, error) {
	model, err := ollama.New(
		ollama.WithServerURL(cfg.URL),
		ollama.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating ollama client: %w", err)
	}

	return &Client{
		llm:           model,
		baseURL:       strings.TrimSuffix(cfg.URL, "/"),
		timeout:       config.GetDuration(cfg.Timeout),
		healthTimeout: config.GetDuration(cfg.HealthTimeout),
		narrateRows:   cfg.NarrateRows,
		httpClient:    &http.Client{},
		logger:        log.With(zap.String("component", "ollama"), zap.String("model", cfg.Model)),
	}, nil
}

// GenerateSQL asks the model to translate a question into SQL and returns
// the raw query text and the model's explanation.
func (c *Client) GenerateSQL(ctx context.Context, question, schema string) (string, string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	prompt := BuildSQLPrompt(question, schema)
	response, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt, llms.WithTemperature(0.1))
	if err != nil {
		return "", "", fmt.Errorf("error querying ollama: %w", err)
	}
	c.logger.Debug("model response", zap.String("response", truncateString(response, 2000)))

	return ParseResponse(response)
}

// Narrate asks the model a second time to phrase the result rows as a
// conversational answer to the original question.
func (c *Client) Narrate(ctx context.Context, question, sqlQuery string, rows []map[string]interface{}) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	prompt := BuildNarratePrompt(question, sqlQuery, FormatResults(rows, c.narrateRows))
	answer, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt, llms.WithTemperature(0.7))
	if err != nil {
		return "", fmt.Errorf("error querying ollama: %w", err)
	}

	return strings.TrimSpace(answer), nil
}

// Healthy reports whether the Ollama service answers /api/tags.
func (c *Client) Healthy(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("ollama health check failed", zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
