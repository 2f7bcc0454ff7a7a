package agents

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bububa/linkedin-agents/components"
	"github.com/bububa/linkedin-agents/schema"
)

type stubAgent struct {
	name string
}

func (a stubAgent) Name() string {
	return a.name
}

func (a stubAgent) RunAnonymous(_ context.Context, userInput any, _ *components.LLMResponse) (any, error) {
	in, ok := userInput.(*schema.Input)
	if !ok {
		return nil, errors.New("invalid agent input schema")
	}
	return schema.NewOutput(a.name + ": " + in.ChatMessage), nil
}

func TestRouterAgentDispatch(t *testing.T) {
	math := stubAgent{name: "math"}
	general := stubAgent{name: "general"}
	selector := func(_ context.Context, userInput *schema.Input) (AnonymousAgent, any, error) {
		if strings.Contains(userInput.ChatMessage, "+") {
			return math, userInput, nil
		}
		return general, userInput, nil
	}
	router := NewRouterAgent[schema.Input, schema.Output](selector)
	router.SetName("triage")

	ctx := context.Background()
	out := new(schema.Output)
	if err := router.Run(ctx, schema.NewInput("2 + 2"), out, nil); err != nil {
		t.Fatal(err)
	}
	if out.ChatMessage != "math: 2 + 2" {
		t.Errorf("unexpected specialist output: %q", out.ChatMessage)
	}
	if err := router.Run(ctx, schema.NewInput("hello"), out, nil); err != nil {
		t.Fatal(err)
	}
	if out.ChatMessage != "general: hello" {
		t.Errorf("unexpected specialist output: %q", out.ChatMessage)
	}
}

func TestRouterAgentSelectorError(t *testing.T) {
	wantErr := errors.New("no route")
	selector := func(_ context.Context, _ *schema.Input) (AnonymousAgent, any, error) {
		return nil, nil, wantErr
	}
	router := NewRouterAgent[schema.Input, schema.Output](selector)
	out := new(schema.Output)
	if err := router.Run(context.Background(), schema.NewInput("hi"), out, nil); !errors.Is(err, wantErr) {
		t.Errorf("expected selector error, got %v", err)
	}
}

func TestHandoffsLookup(t *testing.T) {
	fallback := stubAgent{name: "general"}
	handoffs := NewHandoffs(fallback)
	handoffs.Register(stubAgent{name: "LinkedIn"}, "Optimizes LinkedIn posts")
	handoffs.Register(stubAgent{name: "Math"}, "Evaluates arithmetic expressions")

	if got := handoffs.Lookup("linkedin").Name(); got != "LinkedIn" {
		t.Errorf("case-insensitive lookup failed, got %q", got)
	}
	if got := handoffs.Lookup(" Math ").Name(); got != "Math" {
		t.Errorf("trimmed lookup failed, got %q", got)
	}
	if got := handoffs.Lookup("unknown").Name(); got != "general" {
		t.Errorf("fallback lookup failed, got %q", got)
	}
	if names := handoffs.Names(); len(names) != 2 || names[0] != "LinkedIn" || names[1] != "Math" {
		t.Errorf("unexpected registration order: %v", names)
	}
	info := handoffs.Info()
	if !strings.Contains(info, "- LinkedIn: Optimizes LinkedIn posts") {
		t.Errorf("specialist missing from context info:\n%s", info)
	}
}
