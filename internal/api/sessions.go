package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Snouball98/my-first-chatbot/internal/common/errors"
	"github.com/Snouball98/my-first-chatbot/internal/models"
)

// GetSessionMessages returns the transcript of a session.
// GET /v1/sessions/:session_id/messages
func (h *Handler) GetSessionMessages(c echo.Context) error {
	sessionID := c.Param("session_id")

	sess, err := h.sessions.Get(sessionID)
	if err != nil {
		return h.errorResponse(c, errors.NewSessionNotFoundError(sessionID))
	}

	messages := sess.History()
	if messages == nil {
		messages = []models.Turn{}
	}

	return c.JSON(http.StatusOK, MessagesResponse{
		SessionID: sess.ID(),
		Messages:  messages,
		Count:     len(messages),
	})
}

// ResetSession clears a session transcript. The session itself stays
// usable, matching the chat window's "clear history" action.
// DELETE /v1/sessions/:session_id
func (h *Handler) ResetSession(c echo.Context) error {
	sessionID := c.Param("session_id")

	sess, err := h.sessions.Get(sessionID)
	if err != nil {
		return h.errorResponse(c, errors.NewSessionNotFoundError(sessionID))
	}

	sess.Reset()
	h.logger.Info("session transcript cleared", map[string]interface{}{
		"sessionId": sess.ID(),
	})

	return c.NoContent(http.StatusNoContent)
}
