// internal/chat/intent/models.go
package intent

// Query kinds, used as metric labels and API fields.
const (
	KindMatchSummary = "match_summary"
	KindPlayerStats  = "player_stats"
	KindSoccer       = "soccer"
	KindGeneral      = "general"
)

// Query is the parsed form of one user message. Parse produces exactly one
// variant per message; the variant set is closed.
type Query interface {
	isQuery()
	Kind() string
}

// MatchSummaryQuery asks for the summary of one fixture.
type MatchSummaryQuery struct {
	Home string
	Away string
}

// PlayerStatsQuery asks for one player's season stats.
type PlayerStatsQuery struct {
	Player string
}

// SoccerQuery is a soccer question with no recognized data request.
type SoccerQuery struct{}

// GeneralQuery is anything outside the soccer domain.
type GeneralQuery struct{}

func (MatchSummaryQuery) isQuery() {}
func (PlayerStatsQuery) isQuery()  {}
func (SoccerQuery) isQuery()       {}
func (GeneralQuery) isQuery()      {}

func (MatchSummaryQuery) Kind() string { return KindMatchSummary }
func (PlayerStatsQuery) Kind() string  { return KindPlayerStats }
func (SoccerQuery) Kind() string       { return KindSoccer }
func (GeneralQuery) Kind() string      { return KindGeneral }
