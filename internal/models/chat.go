package models

// ChatMessage is one turn of a market chat conversation.
// Role is "user" or "assistant".
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the chat endpoint contract. History is supplied by the
// client on every request; the server holds no conversation state.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
	Language string        `json:"language,omitempty"`
}

// Chat roles as sent by the client.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)
