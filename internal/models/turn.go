package models

// Turn roles. Tool turns additionally carry the producing tool's name.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Turn is a single conversation turn as stored in session history and as
// sent on the wire to the model endpoint.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Name    string `json:"name,omitempty"`
}

// SystemTurn builds a system-directive turn.
func SystemTurn(content string) Turn {
	return Turn{Role: RoleSystem, Content: content}
}

// UserTurn builds a user turn.
func UserTurn(content string) Turn {
	return Turn{Role: RoleUser, Content: content}
}

// AssistantTurn builds an assistant turn.
func AssistantTurn(content string) Turn {
	return Turn{Role: RoleAssistant, Content: content}
}

// ToolTurn builds a tool-responder turn carrying the tool's name.
func ToolTurn(name, content string) Turn {
	return Turn{Role: RoleTool, Content: content, Name: name}
}
