// Package soccerdata serves the structured soccer records behind the chat
// tools. Every provider is deterministic mock data: same input, same
// record, no I/O.
package soccerdata

import (
	"fmt"

	"github.com/Snouball98/my-first-chatbot/internal/models"
)

// MatchSummaryFor returns the scripted summary record for one fixture.
// Team names are interpolated as given; empty strings are accepted.
func MatchSummaryFor(home, away string) models.MatchSummary {
	return models.MatchSummary{
		Home:  home,
		Away:  away,
		Score: "2-1",
		Events: []models.MatchEvent{
			{Minute: 12, Team: "home", Type: "goal", Player: "A. Kim"},
			{Minute: 45, Team: "away", Type: "goal", Player: "J. Lee"},
			{Minute: 78, Team: "home", Type: "goal", Player: "B. Park"},
		},
		SummaryText: fmt.Sprintf(
			"%s이(가) %s를 상대로 역전승을 거두었습니다. 전반에는 팽팽했으나 후반에 흐름을 바꿨습니다.",
			home, away,
		),
	}
}

// PlayerStatsFor returns the scripted season stats record for one player.
func PlayerStatsFor(player string) models.PlayerStats {
	return models.PlayerStats{
		Player:      player,
		Appearances: 24,
		Goals:       9,
		Assists:     6,
		Rating:      7.4,
		Notes:       fmt.Sprintf("%s은(는) 이번 시즌 핵심 공격수로 활약 중입니다.", player),
	}
}
