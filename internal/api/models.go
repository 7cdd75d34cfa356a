package api

import (
	"github.com/Snouball98/my-first-chatbot/internal/common/azureai"
	"github.com/Snouball98/my-first-chatbot/internal/models"
)

// ChatRequest is the POST /v1/chat payload. The message is required; all
// other fields fall back to the configured defaults when omitted.
type ChatRequest struct {
	SessionID   string   `json:"session_id,omitempty"`
	Message     string   `json:"message"`
	Mode        string   `json:"mode,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	MaxTokens   *int     `json:"max_tokens,omitempty"`
}

// ChatResponse is the outcome of one chat turn. When the model call
// failed, Reply carries the error text that went into the transcript and
// Error identifies the failure.
type ChatResponse struct {
	SessionID string         `json:"session_id"`
	Reply     string         `json:"reply"`
	Intent    string         `json:"intent"`
	Usage     *azureai.Usage `json:"usage,omitempty"`
	Error     *ErrorInfo     `json:"error,omitempty"`
}

// MessagesResponse lists a session transcript.
type MessagesResponse struct {
	SessionID string        `json:"session_id"`
	Messages  []models.Turn `json:"messages"`
	Count     int           `json:"count"`
}

// ErrorResponse is the body for non-2xx responses.
type ErrorResponse struct {
	Error ErrorInfo `json:"error"`
}

// ErrorInfo describes one failure.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// chatRequestSchema is the JSON Schema the chat payload is validated
// against. The token ceiling comes from configuration.
func chatRequestSchema(maxTokensLimit int) map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"message"},
		"properties": map[string]interface{}{
			"session_id": map[string]interface{}{
				"type": "string",
			},
			"message": map[string]interface{}{
				"type":      "string",
				"minLength": 1,
			},
			"mode": map[string]interface{}{
				"type": "string",
				"enum": []string{"auto", "soccer", "general"},
			},
			"temperature": map[string]interface{}{
				"type":    "number",
				"minimum": 0,
				"maximum": 1,
			},
			"max_tokens": map[string]interface{}{
				"type":    "integer",
				"minimum": 1,
				"maximum": maxTokensLimit,
			},
		},
	}
}
