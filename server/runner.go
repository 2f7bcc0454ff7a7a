package server

import (
	"context"
	"strings"
)

// Runner produces a reply to a chat message. Agents are exposed to the
// server through this interface so the transport layer stays agnostic of
// agent schemas.
type Runner interface {
	Name() string
	Reply(ctx context.Context, message string) (string, error)
}

type runnerFunc struct {
	name string
	fn   func(context.Context, string) (string, error)
}

// NewRunner wraps a reply function as a named Runner
func NewRunner(name string, fn func(context.Context, string) (string, error)) Runner {
	return &runnerFunc{name: name, fn: fn}
}

func (r runnerFunc) Name() string {
	return r.name
}

func (r runnerFunc) Reply(ctx context.Context, message string) (string, error) {
	return r.fn(ctx, message)
}

// Registry maps agent names to runners. The first registered runner is
// the default used when a request names no agent or an unknown one.
type Registry struct {
	order  []string
	byName map[string]Runner
}

// NewRegistry initializes an empty runner Registry
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Runner),
	}
}

// Register adds a runner to the registry
func (r *Registry) Register(runner Runner) *Registry {
	key := strings.ToLower(runner.Name())
	if _, ok := r.byName[key]; !ok {
		r.order = append(r.order, runner.Name())
	}
	r.byName[key] = runner
	return r
}

// Get resolves a runner by name, case-insensitively. Unknown or empty
// names resolve to the default runner; nil when the registry is empty.
func (r *Registry) Get(name string) Runner {
	if v, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return v
	}
	if len(r.order) == 0 {
		return nil
	}
	return r.byName[strings.ToLower(r.order[0])]
}

// Names returns the registered runner names in registration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
