package models

// ChatSettings are the per-turn generation knobs supplied by the caller.
// Nil pointers and an empty mode mean "use the configured defaults"; the
// pointers keep an explicit zero distinguishable from an omitted value.
type ChatSettings struct {
	Mode        Mode     `json:"mode,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	MaxTokens   *int     `json:"max_tokens,omitempty"`
}
