package orchestration

import (
	"context"

	"github.com/bububa/linkedin-agents/schema"
	"github.com/bububa/linkedin-agents/tools"
)

// ToolSelector returns a tool plus its typed input based on the request
type ToolSelector[I schema.Schema] func(ctx context.Context, req *I) (tools.OrchestrationTool, any, error)

// Tool dispatches to one of several tools through a selector. It is the
// bridge between an agent's tool-selection output schema and the concrete
// tool implementations.
type Tool[I schema.Schema] struct {
	tools.Config
	selector ToolSelector[I]
}

func New[I schema.Schema](selector ToolSelector[I], opts ...tools.Option) *Tool[I] {
	ret := new(Tool[I])
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("OrchestrationTool")
	}
	ret.selector = selector
	return ret
}

// Stringify wraps a tool so its output is flattened into the plain chat
// output schema. Useful when an orchestrator mixes tools with different
// output schemas but the caller expects a single one.
func Stringify(tool tools.OrchestrationTool) tools.OrchestrationTool {
	return &stringified{tool}
}

type stringified struct {
	tools.OrchestrationTool
}

func (t stringified) RunOrchestration(ctx context.Context, input any) (any, error) {
	out, err := t.OrchestrationTool.RunOrchestration(ctx, input)
	if err != nil {
		return nil, err
	}
	if v, ok := out.(schema.Schema); ok {
		return schema.NewOutput(schema.Stringify(v)), nil
	}
	return nil, tools.ErrInvalidToolInput
}

// RunOrchestration selects a tool for the input and runs it
func (t *Tool[I]) RunOrchestration(ctx context.Context, input any) (any, error) {
	in, ok := input.(*I)
	if !ok {
		return nil, tools.ErrInvalidToolInput
	}
	tool, params, err := t.selector(ctx, in)
	if err != nil {
		t.OnError(ctx, t, input, err)
		return nil, err
	}
	t.OnStart(ctx, t, input)
	out, err := tool.RunOrchestration(ctx, params)
	if err != nil {
		t.OnError(ctx, t, input, err)
		return nil, err
	}
	t.OnEnd(ctx, t, input, out)
	return out, nil
}
