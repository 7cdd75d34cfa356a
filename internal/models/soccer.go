package models

// MatchEvent is one timeline entry of a match summary.
type MatchEvent struct {
	Minute int    `json:"minute"`
	Team   string `json:"team"`
	Type   string `json:"type"`
	Player string `json:"player"`
}

// MatchSummary is the structured record returned by the match-summary tool.
type MatchSummary struct {
	Home        string       `json:"home"`
	Away        string       `json:"away"`
	Score       string       `json:"score"`
	Events      []MatchEvent `json:"events"`
	SummaryText string       `json:"summary_text"`
}

// PlayerStats is the structured record returned by the player-stats tool.
type PlayerStats struct {
	Player      string  `json:"player"`
	Appearances int     `json:"appearances"`
	Goals       int     `json:"goals"`
	Assists     int     `json:"assists"`
	Rating      float64 `json:"rating"`
	Notes       string  `json:"notes"`
}
