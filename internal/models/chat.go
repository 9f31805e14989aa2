package models

// Chat roles for completion messages
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of a conversation transcript
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest represents a request to process one chat turn.
// UserID is optional; without it recommendation requests are answered with
// guidance to provide an employee ID.
type ChatRequest struct {
	UserID  string        `json:"userId,omitempty"`
	Message string        `json:"message"`
	History []ChatMessage `json:"history,omitempty"`
}

// ChatResponse represents the assistant reply for one chat turn
type ChatResponse struct {
	Reply string `json:"reply"`
}
