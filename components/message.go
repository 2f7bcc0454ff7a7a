package components

import (
	cohere "github.com/cohere-ai/cohere-go/v2"
	anthropic "github.com/liushuangls/go-anthropic/v2"
	"github.com/rs/xid"
	openai "github.com/sashabaranov/go-openai"

	"github.com/bububa/linkedin-agents/schema"
)

// NewTurnID returns a new turn ID.
func NewTurnID() string {
	return xid.New().String()
}

// MessageRole is the role of the message sender (e.g., 'user', 'system', 'tool')
type MessageRole = string

const (
	SystemRole    MessageRole = "system"
	UserRole      MessageRole = "user"
	AssistantRole MessageRole = "assistant"
	ToolRole      MessageRole = "tool"
)

// Message represents a message in the chat history.
type Message struct {
	content schema.Schema
	// role is the role of the message sender (e.g., 'user', 'system', 'tool')
	role MessageRole
	// turnID is unique identifier for the turn this message belongs to.
	turnID string
}

// NewMessage returns a new Message
func NewMessage(role MessageRole, content schema.Schema) *Message {
	return &Message{
		role:    role,
		content: content,
	}
}

// Role returns the message role
func (m Message) Role() MessageRole {
	return m.role
}

// Content returns the message content schema
func (m Message) Content() schema.Schema {
	return m.content
}

// TurnID returns the ID of the turn this message belongs to
func (m Message) TurnID() string {
	return m.turnID
}

// SetTurnID binds the message to a turn
func (m *Message) SetTurnID(turnID string) *Message {
	m.turnID = turnID
	return m
}

// ToOpenAI converts the message for openai requests
func (m Message) ToOpenAI(v *openai.ChatCompletionMessage) {
	v.Role = m.role
	v.Content = schema.Stringify(m.content)
}

// ToAnthropic converts the message for anthropic requests
func (m Message) ToAnthropic(v *anthropic.Message) {
	content := schema.Stringify(m.content)
	switch m.role {
	case AssistantRole:
		*v = anthropic.NewAssistantTextMessage(content)
	default:
		*v = anthropic.NewUserTextMessage(content)
	}
}

// ToCohere converts the message for cohere requests
func (m Message) ToCohere(v *cohere.Message) {
	content := schema.Stringify(m.content)
	switch m.role {
	case AssistantRole:
		v.Role = "CHATBOT"
		v.Chatbot = &cohere.ChatMessage{Message: content}
	case SystemRole:
		v.Role = "SYSTEM"
		v.System = &cohere.ChatMessage{Message: content}
	default:
		v.Role = "USER"
		v.User = &cohere.ChatMessage{Message: content}
	}
}
