// Package api provides the HTTP handlers for the chatbot service.
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Snouball98/my-first-chatbot/internal/chat/engine"
	"github.com/Snouball98/my-first-chatbot/internal/common/config"
	"github.com/Snouball98/my-first-chatbot/internal/common/errors"
	"github.com/Snouball98/my-first-chatbot/internal/session"
)

// Logger interface definition
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Handler handles HTTP requests.
type Handler struct {
	engine     *engine.Engine
	sessions   *session.Manager
	config     *config.Config
	chatSchema map[string]interface{}
	errors     *errors.Handler
	logger     Logger
}

// NewHandler creates a new handler.
func NewHandler(eng *engine.Engine, sessions *session.Manager, cfg *config.Config, log Logger) *Handler {
	return &Handler{
		engine:     eng,
		sessions:   sessions,
		config:     cfg,
		chatSchema: chatRequestSchema(cfg.Chat.MaxTokensLimit),
		errors:     errors.NewHandler(log),
		logger:     log,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Chat API
	e.POST("/v1/chat", h.Chat)
	e.GET("/v1/sessions/:session_id/messages", h.GetSessionMessages)
	e.DELETE("/v1/sessions/:session_id", h.ResetSession)

	// Tool catalog API
	e.GET("/v1/tools", h.ListTools)
	e.GET("/v1/tools/match-summary", h.GetMatchSummary)
	e.GET("/v1/tools/player-stats", h.GetPlayerStats)

	e.GET("/healthz", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": h.config.App.Name,
	})
}

// errorResponse maps a failure to its HTTP status and renders the
// standard error body.
func (h *Handler) errorResponse(c echo.Context, err error) error {
	se := h.errors.Handle(err, map[string]interface{}{
		"method": c.Request().Method,
		"path":   c.Path(),
	})
	return c.JSON(httpStatus(se.Code), ErrorResponse{
		Error: ErrorInfo{
			Code:    string(se.Code),
			Message: se.Message,
			Details: se.Details,
		},
	})
}

func httpStatus(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeRequestValidationFailed:
		return http.StatusBadRequest
	case errors.ErrCodeSessionNotFound, errors.ErrCodeToolUnknown:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
