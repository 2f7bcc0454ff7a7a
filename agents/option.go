package agents

import (
	"github.com/bububa/instructor-go/pkg/instructor"

	"github.com/bububa/linkedin-agents/components"
	"github.com/bububa/linkedin-agents/components/systemprompt"
	"github.com/bububa/linkedin-agents/components/systemprompt/simple"
)

// Option is the agent config setter
type Option func(*Config)

// WithClient sets the instructor client used to talk to the language model
func WithClient(clt instructor.Instructor) Option {
	return func(c *Config) {
		c.client = clt
	}
}

// WithMemory sets the agent chat memory
func WithMemory(m *components.Memory) Option {
	return func(c *Config) {
		c.memory = m
	}
}

// WithSystemPromptGenerator sets the system prompt generator
func WithSystemPromptGenerator(g systemprompt.Generator) Option {
	return func(c *Config) {
		c.systemPromptGenerator = g
	}
}

// WithInstructions sets a plain instruction string as the system prompt
func WithInstructions(instructions string, providers ...systemprompt.ContextProvider) Option {
	return func(c *Config) {
		c.systemPromptGenerator = simple.New(instructions, simple.WithContextProviders(providers...))
	}
}

// WithModel sets the llm model name
func WithModel(model string) Option {
	return func(c *Config) {
		c.model = model
	}
}

// WithTemperature sets the response generation temperature
func WithTemperature(temperature float32) Option {
	return func(c *Config) {
		c.temperature = temperature
	}
}

// WithMaxTokens sets the response max tokens
func WithMaxTokens(maxTokens int) Option {
	return func(c *Config) {
		c.maxTokens = maxTokens
	}
}

// WithName sets the agent presentation name
func WithName(name string) Option {
	return func(c *Config) {
		c.name = name
	}
}
