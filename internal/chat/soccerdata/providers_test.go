package soccerdata

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Snouball98/my-first-chatbot/internal/common/errors"
	"github.com/Snouball98/my-first-chatbot/internal/models"
)

// ==========================
// Providers
// ==========================

func TestMatchSummaryFor(t *testing.T) {
	summary := MatchSummaryFor("Man United", "Liverpool")

	assert.Equal(t, "Man United", summary.Home)
	assert.Equal(t, "Liverpool", summary.Away)
	assert.Equal(t, "2-1", summary.Score)

	require.Len(t, summary.Events, 3)
	assert.Equal(t, models.MatchEvent{Minute: 12, Team: "home", Type: "goal", Player: "A. Kim"}, summary.Events[0])
	assert.Equal(t, models.MatchEvent{Minute: 45, Team: "away", Type: "goal", Player: "J. Lee"}, summary.Events[1])
	assert.Equal(t, models.MatchEvent{Minute: 78, Team: "home", Type: "goal", Player: "B. Park"}, summary.Events[2])

	assert.Contains(t, summary.SummaryText, "Man United")
	assert.Contains(t, summary.SummaryText, "Liverpool")
}

func TestMatchSummaryFor_Deterministic(t *testing.T) {
	first := MatchSummaryFor("토트넘", "아스널")
	second := MatchSummaryFor("토트넘", "아스널")
	assert.Equal(t, first, second)
}

func TestMatchSummaryFor_EmptyNamesAccepted(t *testing.T) {
	summary := MatchSummaryFor("", "")
	assert.Equal(t, "2-1", summary.Score)
	assert.Len(t, summary.Events, 3)
}

func TestPlayerStatsFor(t *testing.T) {
	stats := PlayerStatsFor("Son Heung-min")

	assert.Equal(t, "Son Heung-min", stats.Player)
	assert.Equal(t, 24, stats.Appearances)
	assert.Equal(t, 9, stats.Goals)
	assert.Equal(t, 6, stats.Assists)
	assert.Equal(t, 7.4, stats.Rating)
	assert.Contains(t, stats.Notes, "Son Heung-min")
}

func TestPlayerStatsFor_Deterministic(t *testing.T) {
	assert.Equal(t, PlayerStatsFor("손흥민"), PlayerStatsFor("손흥민"))
}

// ==========================
// Serialization
// ==========================

func TestMarshalRecord_KoreanUnescaped(t *testing.T) {
	payload, err := MarshalRecord(PlayerStatsFor("손흥민"))
	require.NoError(t, err)

	assert.Contains(t, payload, "손흥민")
	assert.NotContains(t, payload, `\u`, "non-ASCII text must not be escaped")
}

func TestMatchSummary_RoundTrip(t *testing.T) {
	original := MatchSummaryFor("맨유", "리버풀")

	payload, err := MarshalRecord(original)
	require.NoError(t, err)

	var decoded models.MatchSummary
	require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
	assert.Equal(t, original, decoded)
}

func TestPlayerStats_RoundTrip(t *testing.T) {
	original := PlayerStatsFor("케인")

	payload, err := MarshalRecord(original)
	require.NoError(t, err)

	var decoded models.PlayerStats
	require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
	assert.Equal(t, original, decoded)
}

// ==========================
// Catalog
// ==========================

func TestCatalog(t *testing.T) {
	tools := Catalog()
	require.Len(t, tools, 2)
	assert.Equal(t, ToolMatchSummary, tools[0].Name)
	assert.Equal(t, ToolPlayerStats, tools[1].Name)

	for _, tool := range tools {
		assert.NotEmpty(t, tool.Description)
		assert.NotNil(t, tool.InputSchema)
		assert.NotNil(t, tool.OutputSchema)
	}
}

func TestToolByName(t *testing.T) {
	tool, ok := ToolByName(ToolMatchSummary)
	require.True(t, ok)
	assert.Equal(t, ToolMatchSummary, tool.Name)

	_, ok = ToolByName("get_weather")
	assert.False(t, ok)
}

func TestEncodeRecord_ValidAgainstSchemas(t *testing.T) {
	tests := []struct {
		name   string
		tool   string
		record interface{}
	}{
		{name: "match summary record", tool: ToolMatchSummary, record: MatchSummaryFor("A", "B")},
		{name: "player stats record", tool: ToolPlayerStats, record: PlayerStatsFor("손흥민")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := EncodeRecord(tt.tool, tt.record)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(payload, "{"))
			assert.True(t, json.Valid([]byte(payload)))
		})
	}
}

func TestEncodeRecord_UnknownTool(t *testing.T) {
	_, err := EncodeRecord("get_weather", PlayerStatsFor("x"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeToolUnknown))
}

func TestEncodeRecord_SchemaMismatch(t *testing.T) {
	// A record of the wrong shape must be caught before it reaches a prompt.
	_, err := EncodeRecord(ToolPlayerStats, MatchSummaryFor("A", "B"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeToolEncodingFailed))
}
