package composer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Snouball98/my-first-chatbot/internal/chat/intent"
	"github.com/Snouball98/my-first-chatbot/internal/models"
)

func TestCompose_MatchSummary(t *testing.T) {
	message := "경기 요약: 맨유 vs 리버풀"
	turns, err := Compose(intent.MatchSummaryQuery{Home: "맨유", Away: "리버풀"}, message, nil)
	require.NoError(t, err)
	require.Len(t, turns, 3)

	assert.Equal(t, models.RoleSystem, turns[0].Role)
	assert.Equal(t, SystemPrompt, turns[0].Content)

	assert.Equal(t, models.RoleUser, turns[1].Role)
	assert.Equal(t, message, turns[1].Content)

	assert.Equal(t, models.RoleTool, turns[2].Role)
	assert.Equal(t, "get_match_summary", turns[2].Name)

	var record models.MatchSummary
	require.NoError(t, json.Unmarshal([]byte(turns[2].Content), &record))
	assert.Equal(t, "맨유", record.Home)
	assert.Equal(t, "리버풀", record.Away)
	assert.Equal(t, "2-1", record.Score)
}

func TestCompose_PlayerStats(t *testing.T) {
	message := "선수 통계: 손흥민"
	turns, err := Compose(intent.PlayerStatsQuery{Player: "손흥민"}, message, nil)
	require.NoError(t, err)
	require.Len(t, turns, 3)

	assert.Equal(t, models.RoleSystem, turns[0].Role)
	assert.Equal(t, models.RoleUser, turns[1].Role)

	assert.Equal(t, models.RoleTool, turns[2].Role)
	assert.Equal(t, "get_player_stats", turns[2].Name)
	assert.Contains(t, turns[2].Content, "손흥민")

	var record models.PlayerStats
	require.NoError(t, json.Unmarshal([]byte(turns[2].Content), &record))
	assert.Equal(t, 24, record.Appearances)
	assert.Equal(t, 7.4, record.Rating)
}

func TestCompose_SoccerQuestion(t *testing.T) {
	// A plain soccer question sends no history and no tool turn.
	history := []models.Turn{
		models.UserTurn("이전 질문"),
		models.AssistantTurn("이전 답변"),
		models.UserTurn("손흥민 폼 어때?"),
	}
	turns, err := Compose(intent.SoccerQuery{}, "손흥민 폼 어때?", history)
	require.NoError(t, err)
	require.Len(t, turns, 2)

	assert.Equal(t, models.RoleSystem, turns[0].Role)
	assert.Equal(t, SystemPrompt, turns[0].Content)
	assert.Equal(t, models.RoleUser, turns[1].Role)
	assert.Equal(t, "손흥민 폼 어때?", turns[1].Content)
}

func TestCompose_General(t *testing.T) {
	history := []models.Turn{
		models.UserTurn("안녕"),
		models.AssistantTurn("안녕하세요!"),
		models.ToolTurn("get_player_stats", `{"player":"손흥민"}`),
		models.UserTurn("날씨 어때?"),
	}

	turns, err := Compose(intent.GeneralQuery{}, "날씨 어때?", history)
	require.NoError(t, err)
	require.Len(t, turns, 4, "general prompts carry the history verbatim")

	for i, turn := range turns {
		assert.Equal(t, history[i].Role, turn.Role)
		assert.Equal(t, history[i].Content, turn.Content)
		assert.Empty(t, turn.Name, "general prompts are reduced to role and content")
		assert.NotEqual(t, SystemPrompt, turn.Content)
	}
}

func TestCompose_GeneralEmptyHistory(t *testing.T) {
	turns, err := Compose(intent.GeneralQuery{}, "hello", nil)
	require.NoError(t, err)
	assert.Empty(t, turns)
}

func TestCompose_ToolRecordStaysParseable(t *testing.T) {
	turns, err := Compose(intent.MatchSummaryQuery{Home: "A", Away: "B"}, "경기 요약: A vs B", nil)
	require.NoError(t, err)
	require.Len(t, turns, 3)
	assert.True(t, json.Valid([]byte(turns[2].Content)))
	assert.NotContains(t, turns[2].Content, `\u`, "Korean fields must stay unescaped")
}
