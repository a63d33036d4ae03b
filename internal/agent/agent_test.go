package agent

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0jonjo/tripkit/internal/itinerary"
	"github.com/0jonjo/tripkit/internal/toolkit"
)

// scriptedClient returns canned responses in order and records the
// requests it saw.
type scriptedClient struct {
	responses []openai.ChatCompletionResponse
	err       error
	requests  []openai.ChatCompletionRequest
}

func (c *scriptedClient) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	c.requests = append(c.requests, req)
	if c.err != nil {
		return openai.ChatCompletionResponse{}, c.err
	}
	if len(c.responses) == 0 {
		return openai.ChatCompletionResponse{}, errors.New("scripted responses exhausted")
	}
	resp := c.responses[0]
	c.responses = c.responses[1:]
	return resp, nil
}

func textResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleAssistant,
				Content: content,
			},
		}},
	}
}

func toolCallResponse(name, args string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{
				Role: openai.ChatMessageRoleAssistant,
				ToolCalls: []openai.ToolCall{{
					ID:   "call_1",
					Type: openai.ToolTypeFunction,
					Function: openai.FunctionCall{
						Name:      name,
						Arguments: args,
					},
				}},
			},
		}},
	}
}

func newTestAgent(client chatCompleter) *Agent {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	gen := itinerary.NewGenerator(rand.New(rand.NewSource(1)))
	registry := toolkit.NewTravelRegistry(gen, log, nil)
	return newWithClient(client, "test-model", registry, log)
}

func TestSend_PlainTextAnswer(t *testing.T) {
	client := &scriptedClient{responses: []openai.ChatCompletionResponse{
		textResponse("Pack an umbrella."),
	}}
	a := newTestAgent(client)

	answer, err := a.Send(context.Background(), "Weather advice for London?")
	require.NoError(t, err)
	assert.Equal(t, "Pack an umbrella.", answer)

	require.Len(t, client.requests, 1)
	assert.Len(t, client.requests[0].Tools, 3, "tool declarations accompany every request")
}

func TestSend_ToolCallThenAnswer(t *testing.T) {
	client := &scriptedClient{responses: []openai.ChatCompletionResponse{
		toolCallResponse("get_weather", `{"city": "Paris"}`),
		textResponse("It is 18°C in Paris."),
	}}
	a := newTestAgent(client)

	answer, err := a.Send(context.Background(), "How warm is Paris?")
	require.NoError(t, err)
	assert.Equal(t, "It is 18°C in Paris.", answer)

	// Second request must carry the tool result back to the model.
	require.Len(t, client.requests, 2)
	msgs := client.requests[1].Messages
	last := msgs[len(msgs)-1]
	assert.Equal(t, openai.ChatMessageRoleTool, last.Role)
	assert.Equal(t, "call_1", last.ToolCallID)
	assert.Contains(t, last.Content, `"status":"success"`)
}

func TestSend_HaltShortCircuits(t *testing.T) {
	client := &scriptedClient{responses: []openai.ChatCompletionResponse{
		toolCallResponse("create_itinerary", `{"destination": "Barcelona", "days": 3}`),
		// No further responses: a halt must not trigger another
		// completion.
	}}
	a := newTestAgent(client)

	answer, err := a.Send(context.Background(), "Plan 3 days in Barcelona")
	require.NoError(t, err)

	assert.Len(t, client.requests, 1)
	assert.Contains(t, answer, `"status":"success"`)
	assert.Contains(t, answer, "Barcelona")
	assert.Contains(t, answer, `"3-day"`)
}

func TestSend_CompletionErrorPropagates(t *testing.T) {
	client := &scriptedClient{err: errors.New("upstream unavailable")}
	a := newTestAgent(client)

	_, err := a.Send(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream unavailable")
}

func TestSend_EmptyChoices(t *testing.T) {
	client := &scriptedClient{responses: []openai.ChatCompletionResponse{{}}}
	a := newTestAgent(client)

	_, err := a.Send(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestSend_HistoryAccumulatesAcrossTurns(t *testing.T) {
	client := &scriptedClient{responses: []openai.ChatCompletionResponse{
		textResponse("First answer."),
		textResponse("Second answer."),
	}}
	a := newTestAgent(client)

	_, err := a.Send(context.Background(), "first question")
	require.NoError(t, err)
	_, err = a.Send(context.Background(), "second question")
	require.NoError(t, err)

	require.Len(t, client.requests, 2)
	// system + user + assistant + user on the second request.
	assert.Len(t, client.requests[1].Messages, 4)
}
