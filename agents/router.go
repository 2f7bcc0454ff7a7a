package agents

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bububa/linkedin-agents/components"
	"github.com/bububa/linkedin-agents/schema"
)

// AgentSelector picks the specialist agent for a request and returns the
// input to forward to it.
type AgentSelector[I schema.Schema] func(ctx context.Context, userInput *I) (AnonymousAgent, any, error)

// RouterAgent dispatches each request to a specialist agent chosen by a
// selector, mirroring a triage-and-handoff conversation flow.
type RouterAgent[I schema.Schema, O schema.Schema] struct {
	name     string
	selector AgentSelector[I]
}

// NewRouterAgent initializes a RouterAgent
func NewRouterAgent[I schema.Schema, O schema.Schema](selector AgentSelector[I]) *RouterAgent[I, O] {
	return &RouterAgent[I, O]{
		selector: selector,
	}
}

func (a RouterAgent[I, O]) Name() string {
	return a.name
}

func (a *RouterAgent[I, O]) SetName(name string) {
	a.name = name
}

// Run selects a specialist for the user input and forwards the request.
func (a *RouterAgent[I, O]) Run(ctx context.Context, userInput *I, output *O, llmResp *components.LLMResponse) error {
	agent, forward, err := a.selector(ctx, userInput)
	if err != nil {
		return err
	}
	if agent == nil {
		return errors.New("no specialist agent selected")
	}
	res, err := agent.RunAnonymous(ctx, forward, llmResp)
	if err != nil {
		return err
	}
	out, ok := res.(*O)
	if !ok {
		return errors.New("specialist returned an unexpected output schema")
	}
	*output = *out
	return nil
}

// RunAnonymous runs the router with a dynamic input for nested handoffs.
func (a *RouterAgent[I, O]) RunAnonymous(ctx context.Context, userInput any, llmResp *components.LLMResponse) (any, error) {
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

// Stringify wraps an agent so its dynamic output is flattened into the
// plain chat output schema. Useful when a router mixes specialists with
// different output schemas.
func Stringify(agent AnonymousAgent) AnonymousAgent {
	return stringifiedAgent{agent}
}

type stringifiedAgent struct {
	AnonymousAgent
}

func (a stringifiedAgent) RunAnonymous(ctx context.Context, userInput any, llmResp *components.LLMResponse) (any, error) {
	out, err := a.AnonymousAgent.RunAnonymous(ctx, userInput, llmResp)
	if err != nil {
		return nil, err
	}
	v, ok := out.(schema.Schema)
	if !ok {
		return nil, errors.New("specialist returned an unexpected output schema")
	}
	return schema.NewOutput(schema.Stringify(v)), nil
}

// Handoff describes a specialist agent available for routing.
type Handoff struct {
	Agent       AnonymousAgent
	Description string
}

// Handoffs is the registry of specialist agents a triage agent can hand a
// conversation to. It doubles as a system prompt context provider so the
// triage agent can see the available specialists.
type Handoffs struct {
	order    []string
	byName   map[string]Handoff
	fallback AnonymousAgent
}

// NewHandoffs initializes a Handoffs registry with a fallback agent used
// when a requested specialist is unknown.
func NewHandoffs(fallback AnonymousAgent) *Handoffs {
	return &Handoffs{
		byName:   make(map[string]Handoff),
		fallback: fallback,
	}
}

// Register adds a specialist to the registry
func (h *Handoffs) Register(agent AnonymousAgent, description string) *Handoffs {
	key := strings.ToLower(agent.Name())
	if _, ok := h.byName[key]; !ok {
		h.order = append(h.order, agent.Name())
	}
	h.byName[key] = Handoff{Agent: agent, Description: description}
	return h
}

// Lookup resolves a specialist by name, falling back when unknown.
func (h *Handoffs) Lookup(name string) AnonymousAgent {
	if v, ok := h.byName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return v.Agent
	}
	return h.fallback
}

// Names returns the registered specialist names in registration order
func (h *Handoffs) Names() []string {
	names := make([]string, len(h.order))
	copy(names, h.order)
	return names
}

func (h *Handoffs) Title() string {
	return "Available specialists"
}

func (h *Handoffs) Info() string {
	lines := make([]string, 0, len(h.order))
	for _, name := range h.order {
		v := h.byName[strings.ToLower(name)]
		lines = append(lines, fmt.Sprintf("- %s: %s", name, v.Description))
	}
	return strings.Join(lines, "\n")
}

// RouteDecision is the structured output of a triage agent.
type RouteDecision struct {
	schema.Base
	// Specialist is the name of the agent the request should be handed to
	Specialist string `json:"specialist" jsonschema:"title=specialist,description=The name of the specialist agent best suited to handle the request." validate:"required"`
	// Reason explains the routing choice
	Reason string `json:"reason" jsonschema:"title=reason,description=A short explanation of why this specialist was chosen."`
}

func (d RouteDecision) String() string {
	return d.Specialist
}

// NewTriageSelector builds an AgentSelector that asks a triage agent which
// registered specialist should handle the request, then forwards the
// original input to that specialist.
func NewTriageSelector[I schema.Schema](triage *Agent[I, RouteDecision], handoffs *Handoffs) AgentSelector[I] {
	triage.RegisterSystemPromptContextProvider(handoffs)
	return func(ctx context.Context, userInput *I) (AnonymousAgent, any, error) {
		decision := new(RouteDecision)
		if err := triage.Run(ctx, userInput, decision, nil); err != nil {
			return nil, nil, err
		}
		return handoffs.Lookup(decision.Specialist), userInput, nil
	}
}
