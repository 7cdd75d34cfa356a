// Package intent decides whether a message belongs to the soccer domain
// and extracts structured data requests from it.
package intent

import (
	"regexp"
	"strings"

	"github.com/Snouball98/my-first-chatbot/internal/models"
)

// soccerKeywords marks a message as soccer-domain when any entry occurs as
// an exact substring. Matching is case-sensitive and unnormalized; partial
// occurrences inside longer words count.
var soccerKeywords = []string{
	"축구", "선수", "경기", "골", "리그", "득점", "어시스트", "포메이션",
	"전술", "맨유", "리버풀", "손흥민", "프리미어리그", "월드컵",
	"챔피언스리그", "라리가", "분데스리가", "세리에A",
}

var (
	matchSummaryPattern = regexp.MustCompile(`(?i)경기 요약[:：]?\s*(.+?)\s+vs\s+(.+)`)
	playerStatsPattern  = regexp.MustCompile(`(?i)선수 통계[:：]?\s*(.+)`)
)

// Classify reports whether the message gets soccer handling. The mode
// overrides win; only ModeAuto inspects the text.
func Classify(mode models.Mode, message string) bool {
	switch mode {
	case models.ModeSoccer:
		return true
	case models.ModeGeneral:
		return false
	}
	for _, keyword := range soccerKeywords {
		if strings.Contains(message, keyword) {
			return true
		}
	}
	return false
}

// Parse classifies the message and extracts at most one structured data
// request from it. Pattern extraction only runs on soccer-domain messages;
// the first matching pattern wins and captures are whitespace-trimmed.
func Parse(mode models.Mode, message string) Query {
	if !Classify(mode, message) {
		return GeneralQuery{}
	}
	if m := matchSummaryPattern.FindStringSubmatch(message); m != nil {
		return MatchSummaryQuery{
			Home: strings.TrimSpace(m[1]),
			Away: strings.TrimSpace(m[2]),
		}
	}
	if m := playerStatsPattern.FindStringSubmatch(message); m != nil {
		return PlayerStatsQuery{Player: strings.TrimSpace(m[1])}
	}
	return SoccerQuery{}
}

// Keywords returns the keyword list for display surfaces.
func Keywords() []string {
	out := make([]string, len(soccerKeywords))
	copy(out, soccerKeywords)
	return out
}
