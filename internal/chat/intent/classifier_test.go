package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Snouball98/my-first-chatbot/internal/models"
)

// ==========================
// Classify
// ==========================

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		mode     models.Mode
		message  string
		expected bool
	}{
		{
			name:     "soccer mode forces true for plain text",
			mode:     models.ModeSoccer,
			message:  "hello world",
			expected: true,
		},
		{
			name:     "soccer mode forces true for empty message",
			mode:     models.ModeSoccer,
			message:  "",
			expected: true,
		},
		{
			name:     "general mode forces false despite keywords",
			mode:     models.ModeGeneral,
			message:  "손흥민 축구 경기",
			expected: false,
		},
		{
			name:     "auto matches keyword",
			mode:     models.ModeAuto,
			message:  "손흥민 잘해?",
			expected: true,
		},
		{
			name:     "auto without keyword",
			mode:     models.ModeAuto,
			message:  "hello world",
			expected: false,
		},
		{
			name:     "auto empty message",
			mode:     models.ModeAuto,
			message:  "",
			expected: false,
		},
		{
			name:     "keyword embedded in longer token",
			mode:     models.ModeAuto,
			message:  "한국축구진흥원에 대해 알려줘",
			expected: true,
		},
		{
			name:     "league names count as keywords",
			mode:     models.ModeAuto,
			message:  "프리미어리그 순위 알려줘",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.mode, tt.message))
		})
	}
}

// ==========================
// Parse
// ==========================

func TestParse_MatchSummary(t *testing.T) {
	tests := []struct {
		name         string
		message      string
		expectedHome string
		expectedAway string
	}{
		{
			name:         "colon form",
			message:      "경기 요약: Man United vs Liverpool",
			expectedHome: "Man United",
			expectedAway: "Liverpool",
		},
		{
			name:         "fullwidth colon",
			message:      "경기 요약： 토트넘 vs 아스널",
			expectedHome: "토트넘",
			expectedAway: "아스널",
		},
		{
			name:         "no colon",
			message:      "경기 요약 맨유 vs 리버풀",
			expectedHome: "맨유",
			expectedAway: "리버풀",
		},
		{
			name:         "uppercase separator",
			message:      "경기 요약: Chelsea VS Arsenal",
			expectedHome: "Chelsea",
			expectedAway: "Arsenal",
		},
		{
			name:         "first team is matched lazily",
			message:      "경기 요약: A vs B vs C",
			expectedHome: "A",
			expectedAway: "B vs C",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Parse(models.ModeAuto, tt.message)
			match, ok := q.(MatchSummaryQuery)
			require.True(t, ok, "expected MatchSummaryQuery, got %T", q)
			assert.Equal(t, tt.expectedHome, match.Home)
			assert.Equal(t, tt.expectedAway, match.Away)
			assert.Equal(t, KindMatchSummary, q.Kind())
		})
	}
}

func TestParse_PlayerStats(t *testing.T) {
	q := Parse(models.ModeAuto, "선수 통계: Son Heung-min")
	stats, ok := q.(PlayerStatsQuery)
	require.True(t, ok, "expected PlayerStatsQuery, got %T", q)
	assert.Equal(t, "Son Heung-min", stats.Player)
	assert.Equal(t, KindPlayerStats, q.Kind())
}

func TestParse_MatchSummaryWinsOverPlayerStats(t *testing.T) {
	q := Parse(models.ModeAuto, "경기 요약: 선수 통계 vs 수비")
	assert.Equal(t, KindMatchSummary, q.Kind())
}

func TestParse_PlainSoccerQuestion(t *testing.T) {
	q := Parse(models.ModeAuto, "손흥민 요즘 폼 어때?")
	assert.IsType(t, SoccerQuery{}, q)
	assert.Equal(t, KindSoccer, q.Kind())
}

func TestParse_GeneralBypassesPatterns(t *testing.T) {
	// In general mode the data request syntax is ignored entirely.
	q := Parse(models.ModeGeneral, "경기 요약: Man United vs Liverpool")
	assert.IsType(t, GeneralQuery{}, q)
	assert.Equal(t, KindGeneral, q.Kind())
}

func TestParse_NonSoccerMessage(t *testing.T) {
	q := Parse(models.ModeAuto, "파이썬이 뭐야?")
	assert.IsType(t, GeneralQuery{}, q)
}

func TestKeywords_CopyIsolated(t *testing.T) {
	ks := Keywords()
	require.NotEmpty(t, ks)
	ks[0] = "mutated"
	assert.NotEqual(t, "mutated", Keywords()[0])
}
