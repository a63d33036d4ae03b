// Package agent runs tool-calling conversations against an
// OpenAI-compatible chat completions endpoint, dispatching tool calls
// through a toolkit.Registry and honoring terminal (halt) results.
package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"

	"github.com/0jonjo/tripkit/internal/config"
	"github.com/0jonjo/tripkit/internal/toolkit"
)

const systemPrompt = "You are a travel assistant. Use the available tools to look up weather, " +
	"search destinations by pass tier, and create itineraries. Answer only travel questions."

// maxTurns bounds the reason/act loop for a single user message so a
// model that keeps requesting tools cannot spin forever.
const maxTurns = 8

// chatCompleter is the slice of the OpenAI client the agent uses,
// extracted so tests can substitute a scripted fake.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Agent holds one conversation: shared history plus the registry its
// tool calls dispatch to.
type Agent struct {
	client   chatCompleter
	model    string
	registry *toolkit.Registry
	log      *slog.Logger
	history  []openai.ChatCompletionMessage
}

// New constructs an Agent talking to the endpoint in cfg.
func New(cfg *config.Config, registry *toolkit.Registry, log *slog.Logger) *Agent {
	clientCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
	clientCfg.BaseURL = cfg.OpenAIBaseURL
	return newWithClient(openai.NewClientWithConfig(clientCfg), cfg.OpenAIModel, registry, log)
}

func newWithClient(client chatCompleter, model string, registry *toolkit.Registry, log *slog.Logger) *Agent {
	if log == nil {
		log = slog.Default()
	}
	return &Agent{
		client:   client,
		model:    model,
		registry: registry,
		log:      log,
		history: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		},
	}
}

// Send runs one conversation turn: the model is called with the full
// history and the tool declarations, requested tools are executed,
// and the loop continues until the model answers in text. A halt
// result short-circuits the loop and is returned verbatim.
func (a *Agent) Send(ctx context.Context, userMessage string) (string, error) {
	a.history = append(a.history, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userMessage,
	})

	tools := a.registry.OpenAITools()

	for turn := 0; turn < maxTurns; turn++ {
		resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    a.model,
			Messages: a.history,
			Tools:    tools,
		})
		if err != nil {
			return "", fmt.Errorf("chat completion: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", errors.New("chat completion returned no choices")
		}

		msg := resp.Choices[0].Message
		a.history = append(a.history, msg)

		if len(msg.ToolCalls) == 0 {
			return msg.Content, nil
		}

		for _, call := range msg.ToolCalls {
			result := a.registry.Execute(ctx, call.Function.Name, call.Function.Arguments)
			payload := result.JSON()

			a.history = append(a.history, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    payload,
				ToolCallID: call.ID,
			})

			// Terminal payloads bypass further synthesis: the tool's
			// structured output is the answer.
			if result.Halt {
				a.log.Info("halt result returned verbatim", "tool", call.Function.Name)
				return payload, nil
			}
		}
	}

	return "", fmt.Errorf("no final answer after %d turns", maxTurns)
}
