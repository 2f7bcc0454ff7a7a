package clock

import (
	"context"
	"time"

	"github.com/bububa/linkedin-agents/schema"
	"github.com/bububa/linkedin-agents/tools"
)

// Layout is the timestamp format returned to the agent
const Layout = "2006-01-02 15:04:05"

// Input is the input schema of the clock tool
type Input struct {
	schema.Base
}

func NewInput() *Input {
	return new(Input)
}

// Output is the output schema of the clock tool
type Output struct {
	schema.Base
	// Now the current date and time
	Now string `json:"now" jsonschema:"title=now,description=The current date and time."`
}

func (s Output) String() string {
	return s.Now
}

// Tool reports the current date and time
type Tool struct {
	tools.Config
	// now is overridable for tests
	now func() time.Time
}

func New(opts ...tools.Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("ClockTool")
	}
	if ret.Description() == "" {
		ret.SetDescription("Get the current date and time.")
	}
	if ret.now == nil {
		ret.now = time.Now
	}
	return ret
}

// SetNow overrides the clock source
func (t *Tool) SetNow(fn func() time.Time) *Tool {
	t.now = fn
	return t
}

// Run executes the clock tool
func (t *Tool) Run(ctx context.Context, input *Input) (*Output, error) {
	t.OnStart(ctx, t, input)
	out := &Output{
		Now: t.now().Format(Layout),
	}
	t.OnEnd(ctx, t, input, out)
	return out, nil
}

// RunOrchestration implements tools.OrchestrationTool
func (t *Tool) RunOrchestration(ctx context.Context, input any) (any, error) {
	in, ok := input.(*Input)
	if !ok {
		return nil, tools.ErrInvalidToolInput
	}
	return t.Run(ctx, in)
}
