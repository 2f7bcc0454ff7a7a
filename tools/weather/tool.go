package weather

import (
	"context"
	"fmt"
	"strings"

	"github.com/bububa/linkedin-agents/schema"
	"github.com/bububa/linkedin-agents/tools"
)

// conditions is a mock table; in real use this tool would call a weather API.
var conditions = map[string]string{
	"new york": "Sunny, 22°C",
	"london":   "Cloudy, 15°C",
	"tokyo":    "Rainy, 18°C",
	"paris":    "Partly cloudy, 19°C",
	"sydney":   "Sunny, 25°C",
}

// Input is the input schema of the weather tool
type Input struct {
	schema.Base
	// City the city to get weather information for
	City string `json:"city" jsonschema:"title=city,description=The city to get weather information for." validate:"required"`
}

func NewInput(city string) *Input {
	return &Input{City: city}
}

// Output is the output schema of the weather tool
type Output struct {
	schema.Base
	// City the requested city
	City string `json:"city" jsonschema:"title=city,description=The requested city."`
	// Conditions current conditions, empty if unknown
	Conditions string `json:"conditions,omitempty" jsonschema:"title=conditions,description=Current weather conditions for the city."`
}

func (s Output) String() string {
	if s.Conditions == "" {
		return fmt.Sprintf("Weather data not available for %s (this is a mock implementation)", s.City)
	}
	return fmt.Sprintf("Weather in %s: %s", s.City, s.Conditions)
}

// Tool reports weather information for a city (mock implementation)
type Tool struct {
	tools.Config
}

func New(opts ...tools.Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("WeatherTool")
	}
	if ret.Description() == "" {
		ret.SetDescription("Get weather information for a city (mock implementation).")
	}
	return ret
}

// Run executes the weather lookup with the given parameters
func (t *Tool) Run(ctx context.Context, input *Input) (*Output, error) {
	t.OnStart(ctx, t, input)
	out := &Output{
		City:       input.City,
		Conditions: conditions[strings.ToLower(input.City)],
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
