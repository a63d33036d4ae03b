package toolkit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/0jonjo/tripkit/internal/observability"
)

// Registry holds the tools available to an orchestrator, preserving
// registration order for stable declarations.
type Registry struct {
	tools   []*Tool
	byName  map[string]*Tool
	metrics *observability.Metrics
	log     *slog.Logger
}

// NewRegistry constructs an empty Registry. metrics may be nil.
func NewRegistry(log *slog.Logger, metrics *observability.Metrics) *Registry {
	if log == nil {
		log = slog.Default()
	}
	return &Registry{
		byName:  make(map[string]*Tool),
		metrics: metrics,
		log:     log,
	}
}

// Register adds a tool. Registering a duplicate name replaces the
// earlier entry in place.
func (r *Registry) Register(t *Tool) {
	if existing, ok := r.byName[t.Name]; ok {
		*existing = *t
		return
	}
	r.tools = append(r.tools, t)
	r.byName[t.Name] = t
}

// Lookup returns the tool with the given name, if registered.
func (r *Registry) Lookup(name string) (*Tool, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Names lists registered tool names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t.Name)
	}
	return out
}

// OpenAITools converts every registered tool for the chat completions
// API, in registration order.
func (r *Registry) OpenAITools() []openai.Tool {
	out := make([]openai.Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t.OpenAITool())
	}
	return out
}

// Execute runs the named tool against raw JSON arguments. Unknown
// tools, malformed arguments, and panics inside a tool all surface as
// a soft "error" Result; no fault ever reaches the caller.
func (r *Registry) Execute(ctx context.Context, name, argsJSON string) (result Result) {
	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("tool panicked", "tool", name, "recover", rec)
			result = ErrorResult(fmt.Sprintf("internal error in %s: %v", name, rec))
		}
		r.metrics.ObserveTool(name, result.Status, result.Halt, time.Since(start))
		r.log.Info("tool executed", "tool", name, "status", result.Status, "halt", result.Halt)
	}()

	tool, ok := r.byName[name]
	if !ok {
		return ErrorResult(fmt.Sprintf("unknown tool %q", name))
	}

	args, err := decodeArgs(argsJSON)
	if err != nil {
		return ErrorResult(fmt.Sprintf("invalid arguments for %s: %v", name, err))
	}

	return tool.Run(ctx, args)
}

// decodeArgs treats an empty argument string as an empty object,
// which some models send for zero-argument calls.
func decodeArgs(argsJSON string) (map[string]any, error) {
	if argsJSON == "" {
		return map[string]any{}, nil
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(argsJSON), &args); err != nil {
		return nil, err
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}
