// internal/chat/soccerdata/json.go
package soccerdata

import (
	"bytes"
	"encoding/json"
	"strings"
)

// MarshalRecord encodes a tool record as compact JSON with HTML escaping
// off, so the Korean text stays readable inside prompts.
func MarshalRecord(v interface{}) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
