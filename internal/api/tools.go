package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Snouball98/my-first-chatbot/internal/chat/soccerdata"
	"github.com/Snouball98/my-first-chatbot/internal/common/errors"
)

// ListTools returns the structured-data tool catalog.
// GET /v1/tools
func (h *Handler) ListTools(c echo.Context) error {
	tools := soccerdata.Catalog()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"tools": tools,
		"count": len(tools),
	})
}

// GetMatchSummary returns the match summary record for a fixture.
// GET /v1/tools/match-summary?home=...&away=...
func (h *Handler) GetMatchSummary(c echo.Context) error {
	home := strings.TrimSpace(c.QueryParam("home"))
	away := strings.TrimSpace(c.QueryParam("away"))
	if home == "" || away == "" {
		return h.errorResponse(c, errors.NewRequestValidationError("home and away query parameters are required"))
	}

	payload, err := soccerdata.EncodeRecord(soccerdata.ToolMatchSummary, soccerdata.MatchSummaryFor(home, away))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSONBlob(http.StatusOK, []byte(payload))
}

// GetPlayerStats returns the season stats record for a player.
// GET /v1/tools/player-stats?player=...
func (h *Handler) GetPlayerStats(c echo.Context) error {
	player := strings.TrimSpace(c.QueryParam("player"))
	if player == "" {
		return h.errorResponse(c, errors.NewRequestValidationError("player query parameter is required"))
	}

	payload, err := soccerdata.EncodeRecord(soccerdata.ToolPlayerStats, soccerdata.PlayerStatsFor(player))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSONBlob(http.StatusOK, []byte(payload))
}
