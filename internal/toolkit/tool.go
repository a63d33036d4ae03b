// Package toolkit defines the tool abstraction exposed to a chat
// model: named operations with JSON-Schema parameter declarations,
// executed through a registry that never lets a fault escape.
package toolkit

import (
	"context"
	"encoding/json"

	openai "github.com/sashabaranov/go-openai"
)

// Result is what a tool invocation hands back to the orchestrator.
// Halt marks a terminal payload: the orchestrator must return it to
// the caller verbatim instead of feeding it through further model
// synthesis.
type Result struct {
	Status  string
	Halt    bool
	Payload any
}

// ErrorResult builds a generic soft-error Result. Used both for
// validation failures and for recovered internal faults, so callers
// always see the same shape.
func ErrorResult(message string) Result {
	return Result{
		Status: "error",
		Payload: map[string]string{
			"status":  "error",
			"message": message,
		},
	}
}

// JSON renders the payload for a tool-role chat message or an HTTP
// body. Marshal failure is reported in-band as a soft error, matching
// the no-raw-fault contract.
func (r Result) JSON() string {
	b, err := json.Marshal(r.Payload)
	if err != nil {
		return `{"status":"error","message":"failed to encode tool result"}`
	}
	return string(b)
}

// RunFunc executes a tool against already-decoded arguments.
type RunFunc func(ctx context.Context, args map[string]any) Result

// Tool couples a callable with the metadata a chat model needs to
// select it: name, natural-language description, and a JSON-Schema
// object describing its parameters.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
	Run         RunFunc
}

// OpenAITool converts the declaration for the chat completions API.
func (t *Tool) OpenAITool() openai.Tool {
	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		},
	}
}
