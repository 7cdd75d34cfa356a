// Package composer assembles the ordered message sequence sent to the
// model for one chat turn.
package composer

import (
	"github.com/Snouball98/my-first-chatbot/internal/chat/intent"
	"github.com/Snouball98/my-first-chatbot/internal/chat/soccerdata"
	"github.com/Snouball98/my-first-chatbot/internal/models"
)

// SystemPrompt is the soccer persona directive. It leads every
// soccer-domain prompt and never appears in general-domain prompts.
const SystemPrompt = "당신은 SoccerBot입니다. " +
	"축구에 관해 전문적이고 상세하게 한국어로 설명합니다. " +
	"경기 요약, 전술 분석, 선수 통계 및 추천을 제공하세요. " +
	"사실 기반과 의견을 구분하고, 필요한 경우 예상 라인업이나 전술도 제안하세요. " +
	"친근하고 열정적인 톤으로 답변하세요."

// Compose builds the exact message sequence for one turn.
//
// Soccer-domain turns see only the current message: the directive, the
// user text, and, when the query asked for data, one tool turn carrying
// the serialized record. General turns get the whole session history
// verbatim, reduced to role and content, with no directive.
func Compose(query intent.Query, message string, history []models.Turn) ([]models.Turn, error) {
	switch q := query.(type) {
	case intent.MatchSummaryQuery:
		payload, err := soccerdata.EncodeRecord(soccerdata.ToolMatchSummary, soccerdata.MatchSummaryFor(q.Home, q.Away))
		if err != nil {
			return nil, err
		}
		return []models.Turn{
			models.SystemTurn(SystemPrompt),
			models.UserTurn(message),
			models.ToolTurn(soccerdata.ToolMatchSummary, payload),
		}, nil

	case intent.PlayerStatsQuery:
		payload, err := soccerdata.EncodeRecord(soccerdata.ToolPlayerStats, soccerdata.PlayerStatsFor(q.Player))
		if err != nil {
			return nil, err
		}
		return []models.Turn{
			models.SystemTurn(SystemPrompt),
			models.UserTurn(message),
			models.ToolTurn(soccerdata.ToolPlayerStats, payload),
		}, nil

	case intent.SoccerQuery:
		return []models.Turn{
			models.SystemTurn(SystemPrompt),
			models.UserTurn(message),
		}, nil

	default:
		out := make([]models.Turn, 0, len(history))
		for _, turn := range history {
			out = append(out, models.Turn{Role: turn.Role, Content: turn.Content})
		}
		return out, nil
	}
}
