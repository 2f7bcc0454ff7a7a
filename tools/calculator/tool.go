package calculator

import (
	"context"
	"fmt"
	"strings"

	"github.com/Knetic/govaluate"

	"github.com/bububa/linkedin-agents/schema"
	"github.com/bububa/linkedin-agents/tools"
)

// allowedChars restricts expressions to basic arithmetic plus parameter
// names, keeping the tool safe against arbitrary expression features.
const allowedChars = "0123456789+-*/.()^% "

// Input is the input schema of the calculator tool
type Input struct {
	schema.Base
	// Expression mathematical expression to evaluate. For example, '2 + 2'.
	Expression string `json:"expression" jsonschema:"title=expression,description=Mathematical expression to evaluate. For example, '2 + 2'." validate:"required"`
	// Params parameters for the expression
	Params map[string]interface{} `json:"params,omitempty" jsonschema:"title=params,description=Parameters for the expression."`
}

func NewInput(exp string, params map[string]interface{}) *Input {
	return &Input{
		Expression: exp,
		Params:     params,
	}
}

// Output is the output schema of the calculator tool
type Output struct {
	schema.Base
	// Result result of the calculation
	Result interface{} `json:"result,omitempty" jsonschema:"title=result,description=Result of the calculation."`
}

func NewOutput(result interface{}) *Output {
	return &Output{
		Result: result,
	}
}

func (s Output) String() string {
	return fmt.Sprintf("Result: %v", s.Result)
}

// Tool performs calculations. Supports basic arithmetic operations like
// addition, subtraction, multiplication, and division, plus named constants
// such as pi and e.
type Tool struct {
	tools.Config
}

func New(opts ...tools.Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("CalculatorTool")
	}
	if ret.Description() == "" {
		ret.SetDescription("Calculate a mathematical expression safely.")
	}
	return ret
}

// Run executes the calculator with the given parameters.
func (t *Tool) Run(ctx context.Context, input *Input) (*Output, error) {
	t.OnStart(ctx, t, input)
	if err := checkExpression(input.Expression, input.Params); err != nil {
		t.OnError(ctx, t, input, err)
		return nil, err
	}
	exp, err := govaluate.NewEvaluableExpression(input.Expression)
	if err != nil {
		t.OnError(ctx, t, input, err)
		return nil, err
	}
	params := make(map[string]interface{}, len(input.Params)+len(constParams))
	for k, v := range input.Params {
		params[k] = v
	}
	for k, v := range constParams {
		if _, ok := params[k]; ok {
			continue
		}
		params[k] = v
	}
	result, err := exp.Evaluate(params)
	if err != nil {
		t.OnError(ctx, t, input, err)
		return nil, fmt.Errorf("error calculating '%s': %w", input.Expression, err)
	}
	out := NewOutput(result)
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

// checkExpression rejects characters outside basic arithmetic, except for
// declared parameter names and constants.
func checkExpression(exp string, params map[string]interface{}) error {
	rest := exp
	for name := range params {
		rest = strings.ReplaceAll(rest, name, "")
	}
	for name := range constParams {
		rest = strings.ReplaceAll(rest, name, "")
	}
	for _, r := range rest {
		if !strings.ContainsRune(allowedChars, r) {
			return fmt.Errorf("only basic mathematical operations are allowed, found %q", r)
		}
	}
	return nil
}
