package schema

// Input is the basic chat input schema for agents
type Input struct {
	Base
	// ChatMessage the message sent by the user
	ChatMessage string `json:"chat_message" jsonschema:"title=chat_message,description=The chat message sent by the user to the assistant." validate:"required"`
}

// NewInput returns a new chat Input
func NewInput(msg string) *Input {
	return &Input{
		ChatMessage: msg,
	}
}

func (s Input) String() string {
	return s.ChatMessage
}

// Output is the basic chat output schema for agents
type Output struct {
	Base
	// ChatMessage the response generated by the assistant
	ChatMessage string `json:"chat_message" jsonschema:"title=chat_message,description=The chat message generated by the assistant." validate:"required"`
}

// NewOutput returns a new chat Output
func NewOutput(msg string) *Output {
	return &Output{
		ChatMessage: msg,
	}
}

func (s Output) String() string {
	return s.ChatMessage
}
