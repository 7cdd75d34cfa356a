// Package azureai is the Azure OpenAI chat completions client.
package azureai

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Snouball98/my-first-chatbot/internal/common/errors"
	"github.com/Snouball98/my-first-chatbot/internal/common/metrics"
	"github.com/Snouball98/my-first-chatbot/internal/common/validation"
	"github.com/Snouball98/my-first-chatbot/internal/models"
)

// Logger interface definition
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config holds the connection settings for one deployment.
type Config struct {
	APIKey     string
	Endpoint   string
	Deployment string
	APIVersion string
	Timeout    time.Duration
}

// Client calls the chat completions endpoint of one Azure OpenAI
// deployment. Each Complete call is exactly one remote invocation: no
// retries, no streaming.
type Client struct {
	config     Config
	endpoint   string
	httpClient *http.Client
	logger     Logger
}

// New validates the connection settings and builds a client. Callers that
// get an error back must treat the model as unavailable rather than abort.
func New(config Config, log Logger) (*Client, error) {
	if config.APIKey == "" {
		return nil, errors.NewConfigMissingError("azure.api_key")
	}
	if config.Endpoint == "" {
		return nil, errors.NewConfigMissingError("azure.endpoint")
	}
	if !validation.ValidateURL(config.Endpoint) {
		return nil, errors.NewConfigInvalidError(fmt.Sprintf("azure.endpoint %q is not a valid URL", config.Endpoint))
	}
	if config.Deployment == "" {
		return nil, errors.NewConfigMissingError("azure.deployment")
	}
	if config.APIVersion == "" {
		return nil, errors.NewConfigMissingError("azure.api_version")
	}
	if config.Timeout <= 0 {
		config.Timeout = 60 * time.Second
	}

	return &Client{
		config:   config,
		endpoint: strings.TrimSuffix(config.Endpoint, "/"),
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: log,
	}, nil
}

// Deployment returns the deployment name the client talks to.
func (c *Client) Deployment() string {
	return c.config.Deployment
}

type chatCompletionRequest struct {
	Messages    []models.Turn `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []choice `json:"choices"`
	Usage   *Usage   `json:"usage,omitempty"`
}

type choice struct {
	Index        int          `json:"index"`
	Message      *models.Turn `json:"message,omitempty"`
	FinishReason string       `json:"finish_reason,omitempty"`
}

// Usage represents token usage information.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error *APIError `json:"error"`
}

// APIError represents the error details.
type APIError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
}

// Completion is one successful chat completion outcome. Content may be
// empty when the model returns an empty message; that is not an error.
type Completion struct {
	Content string
	Model   string
	Usage   *Usage
}

// Complete sends the turns to the deployment and returns the first choice.
func (c *Client) Complete(ctx context.Context, turns []models.Turn, temperature float64, maxTokens int) (*Completion, error) {
	start := time.Now()
	completion, err := c.complete(ctx, turns, temperature, maxTokens)
	duration := time.Since(start)

	status := "success"
	if err != nil {
		status = "error"
		if errors.IsCode(err, errors.ErrCodeModelTimeout) {
			status = "timeout"
		}
	}
	metrics.ModelCalls.WithLabelValues(c.config.Deployment, status).Inc()
	metrics.ModelCallDuration.WithLabelValues(c.config.Deployment).Observe(duration.Seconds())

	return completion, err
}

func (c *Client) complete(ctx context.Context, turns []models.Turn, temperature float64, maxTokens int) (*Completion, error) {
	body, err := json.Marshal(&chatCompletionRequest{
		Messages:    turns,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return nil, errors.NewModelInvocationFailedError(fmt.Errorf("marshal request: %w", err))
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.completionsURL(), bytes.NewReader(body))
	if err != nil {
		return nil, errors.NewModelInvocationFailedError(fmt.Errorf("create request: %w", err))
	}
	c.setHeaders(httpReq)

	c.logger.Debug("calling chat completions", map[string]interface{}{
		"deployment": c.config.Deployment,
		"messages":   len(turns),
		"maxTokens":  maxTokens,
	})

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, errors.NewModelTimeoutError(c.config.Timeout)
		}
		return nil, errors.NewModelInvocationFailedError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, errors.NewModelTimeoutError(c.config.Timeout)
		}
		return nil, errors.NewModelInvocationFailedError(fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != nil {
			return nil, errors.NewModelInvocationFailedError(
				fmt.Errorf("chat API error [%d]: %s", resp.StatusCode, errResp.Error.Message))
		}
		return nil, errors.NewModelInvocationFailedError(
			fmt.Errorf("chat API error [%d]: %s", resp.StatusCode, string(respBody)))
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, errors.NewModelResponseInvalidError(fmt.Sprintf("unmarshal response: %v", err))
	}
	if len(result.Choices) == 0 || result.Choices[0].Message == nil {
		return nil, errors.NewModelResponseInvalidError("completion response has no choices")
	}

	return &Completion{
		Content: result.Choices[0].Message.Content,
		Model:   result.Model,
		Usage:   result.Usage,
	}, nil
}

func (c *Client) completionsURL() string {
	return fmt.Sprintf(
		"%s/openai/deployments/%s/chat/completions?api-version=%s",
		c.endpoint,
		url.PathEscape(c.config.Deployment),
		url.QueryEscape(c.config.APIVersion),
	)
}

// setHeaders sets common request headers. Azure uses the api-key header
// instead of a bearer token.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.config.APIKey)
}

func isTimeout(ctx context.Context, err error) bool {
	if ctx.Err() == context.DeadlineExceeded {
		return true
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	return stderrors.As(err, &urlErr) && urlErr.Timeout()
}
