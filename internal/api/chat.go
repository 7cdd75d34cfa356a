package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Snouball98/my-first-chatbot/internal/common/errors"
	"github.com/Snouball98/my-first-chatbot/internal/common/validation"
	"github.com/Snouball98/my-first-chatbot/internal/models"
)

// Chat runs one chat turn.
// POST /v1/chat
func (h *Handler) Chat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return h.errorResponse(c, errors.NewRequestValidationError("invalid request body"))
	}

	if err := h.validateChatRequest(&req); err != nil {
		return h.errorResponse(c, err)
	}

	settings := models.ChatSettings{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.Mode != "" {
		mode, err := models.ParseMode(req.Mode)
		if err != nil {
			return h.errorResponse(c, errors.NewRequestValidationError(err.Error()))
		}
		settings.Mode = mode
	}

	sess := h.sessions.GetOrCreate(req.SessionID)

	result, err := h.engine.Respond(c.Request().Context(), sess, req.Message, settings)
	if err != nil {
		return h.errorResponse(c, err)
	}

	resp := ChatResponse{
		SessionID: result.SessionID,
		Reply:     result.Reply,
		Intent:    result.Intent,
		Usage:     result.Usage,
	}
	if result.Err != nil {
		resp.Error = &ErrorInfo{
			Code:    string(result.Err.Code),
			Message: result.Err.Message,
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// validateChatRequest checks the payload against the chat schema plus the
// blank-message rule the schema cannot express.
func (h *Handler) validateChatRequest(req *ChatRequest) error {
	result, err := validation.ValidateDocument(h.chatSchema, req)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if !result.Valid {
		return errors.NewRequestValidationError(strings.Join(result.GetErrorMessages(), "; "))
	}
	if strings.TrimSpace(req.Message) == "" {
		return errors.NewRequestValidationError("message must not be blank")
	}
	return nil
}
