package models

import (
	"fmt"
	"strings"
)

// Mode selects how intent classification treats a turn.
type Mode string

const (
	// ModeAuto decides per message by keyword matching.
	ModeAuto Mode = "auto"
	// ModeSoccer forces soccer handling for every message.
	ModeSoccer Mode = "soccer"
	// ModeGeneral bypasses soccer handling for every message.
	ModeGeneral Mode = "general"
)

// ParseMode parses a mode string case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeAuto:
		return ModeAuto, nil
	case ModeSoccer:
		return ModeSoccer, nil
	case ModeGeneral:
		return ModeGeneral, nil
	default:
		return "", fmt.Errorf("unknown chat mode %q", s)
	}
}

// IsValid reports whether m is one of the defined modes.
func (m Mode) IsValid() bool {
	switch m {
	case ModeAuto, ModeSoccer, ModeGeneral:
		return true
	}
	return false
}
