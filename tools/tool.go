package tools

import (
	"context"
	"errors"
)

// ErrInvalidToolInput is returned when a tool is invoked with the wrong input schema
var ErrInvalidToolInput = errors.New("invalid tool input schema")

// ITool is the common surface every tool exposes to the agent runtime
type ITool interface {
	SetTitle(string)
	Title() string
	SetDescription(string)
	Description() string
}

// OrchestrationTool is a tool invocable with a dynamic input for orchestration
type OrchestrationTool interface {
	ITool
	RunOrchestration(context.Context, any) (any, error)
}
