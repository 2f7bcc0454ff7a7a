package agents

import (
	"context"
	"errors"

	"github.com/bububa/linkedin-agents/components"
	"github.com/bububa/linkedin-agents/schema"
	"github.com/bububa/linkedin-agents/tools"
)

// ToolAgent chains a chat agent with a tool: the agent extracts the tool
// parameters T from the user input I, the tool produces the final output O.
type ToolAgent[I schema.Schema, T schema.Schema, O schema.Schema] struct {
	Agent[I, T]
	tool tools.OrchestrationTool
}

// NewToolAgent initializes a ToolAgent
func NewToolAgent[I schema.Schema, T schema.Schema, O schema.Schema](options ...Option) *ToolAgent[I, T, O] {
	ret := new(ToolAgent[I, T, O])
	agent := NewAgent[I, T](options...)
	ret.Agent = *agent
	return ret
}

// SetTool binds the tool executed after parameter extraction
func (a *ToolAgent[I, T, O]) SetTool(t tools.OrchestrationTool) {
	a.tool = t
}

// Tool returns the bound tool
func (a *ToolAgent[I, T, O]) Tool() tools.OrchestrationTool {
	return a.tool
}

// Run extracts tool parameters from the user input and executes the tool.
func (a *ToolAgent[I, T, O]) Run(ctx context.Context, userInput *I, output *O, llmResp *components.LLMResponse) error {
	if a.tool == nil {
		return errors.New("tool agent has no tool bound")
	}
	params := new(T)
	if err := a.Agent.Run(ctx, userInput, params, llmResp); err != nil {
		return err
	}
	res, err := a.tool.RunOrchestration(ctx, params)
	if err != nil {
		return err
	}
	out, ok := res.(*O)
	if !ok {
		return tools.ErrInvalidToolInput
	}
	*output = *out
	a.memory.NewMessage(components.ToolRole, *output)
	return nil
}

// RunAnonymous runs the tool agent with a dynamic input for handoffs.
func (a *ToolAgent[I, T, O]) RunAnonymous(ctx context.Context, userInput any, llmResp *components.LLMResponse) (any, error) {
	in, ok := userInput.(*I)
	if !ok {
		return nil, errors.New("invalid agent input schema")
	}
	out := new(O)
	if err := a.Run(ctx, in, out, llmResp); err != nil {
		return nil, err
	}
	return out, nil
}
