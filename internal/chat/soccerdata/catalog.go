// internal/chat/soccerdata/catalog.go
package soccerdata

import (
	"fmt"
	"strings"

	"github.com/Snouball98/my-first-chatbot/internal/common/errors"
	"github.com/Snouball98/my-first-chatbot/internal/common/validation"
)

// Tool names double as the participant name on tool turns.
const (
	ToolMatchSummary = "get_match_summary"
	ToolPlayerStats  = "get_player_stats"
)

// Tool describes one data provider: its name, what it answers, and the
// JSON Schemas of its input and output.
type Tool struct {
	Name         string                 `json:"name"`
	Description  string                 `json:"description"`
	InputSchema  map[string]interface{} `json:"input_schema"`
	OutputSchema map[string]interface{} `json:"output_schema"`
}

var matchSummaryTool = Tool{
	Name:        ToolMatchSummary,
	Description: "두 팀 이름으로 경기 요약 레코드를 돌려줍니다.",
	InputSchema: map[string]interface{}{
		"type":                 "object",
		"required":             []string{"home", "away"},
		"additionalProperties": false,
		"properties": map[string]interface{}{
			"home": map[string]interface{}{"type": "string"},
			"away": map[string]interface{}{"type": "string"},
		},
	},
	OutputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"home", "away", "score", "events", "summary_text"},
		"properties": map[string]interface{}{
			"home":  map[string]interface{}{"type": "string"},
			"away":  map[string]interface{}{"type": "string"},
			"score": map[string]interface{}{"type": "string"},
			"events": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type":     "object",
					"required": []string{"minute", "team", "type", "player"},
					"properties": map[string]interface{}{
						"minute": map[string]interface{}{"type": "integer"},
						"team":   map[string]interface{}{"type": "string", "enum": []string{"home", "away"}},
						"type":   map[string]interface{}{"type": "string"},
						"player": map[string]interface{}{"type": "string"},
					},
				},
			},
			"summary_text": map[string]interface{}{"type": "string"},
		},
	},
}

var playerStatsTool = Tool{
	Name:        ToolPlayerStats,
	Description: "선수 이름으로 시즌 통계 레코드를 돌려줍니다.",
	InputSchema: map[string]interface{}{
		"type":                 "object",
		"required":             []string{"player"},
		"additionalProperties": false,
		"properties": map[string]interface{}{
			"player": map[string]interface{}{"type": "string"},
		},
	},
	OutputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"player", "appearances", "goals", "assists", "rating", "notes"},
		"properties": map[string]interface{}{
			"player":      map[string]interface{}{"type": "string"},
			"appearances": map[string]interface{}{"type": "integer"},
			"goals":       map[string]interface{}{"type": "integer"},
			"assists":     map[string]interface{}{"type": "integer"},
			"rating":      map[string]interface{}{"type": "number"},
			"notes":       map[string]interface{}{"type": "string"},
		},
	},
}

// Catalog returns the tool definitions in a stable order.
func Catalog() []Tool {
	return []Tool{matchSummaryTool, playerStatsTool}
}

// ToolByName looks a tool up by its name.
func ToolByName(name string) (Tool, bool) {
	switch name {
	case ToolMatchSummary:
		return matchSummaryTool, true
	case ToolPlayerStats:
		return playerStatsTool, true
	}
	return Tool{}, false
}

// EncodeRecord serializes a provider record for the named tool and checks
// it against the tool's output schema before anything downstream sees it.
func EncodeRecord(tool string, record interface{}) (string, error) {
	def, ok := ToolByName(tool)
	if !ok {
		return "", errors.NewToolUnknownError(tool)
	}

	payload, err := MarshalRecord(record)
	if err != nil {
		return "", errors.NewToolEncodingError(tool, err)
	}

	result, err := validation.ValidateJSON(def.OutputSchema, []byte(payload))
	if err != nil {
		return "", errors.NewToolEncodingError(tool, err)
	}
	if !result.Valid {
		return "", errors.NewToolEncodingError(tool, fmt.Errorf(
			"record does not match output schema: %s",
			strings.Join(result.GetErrorMessages(), "; "),
		))
	}
	return payload, nil
}
