package toolkit_test

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0jonjo/tripkit/internal/catalog"
	"github.com/0jonjo/tripkit/internal/itinerary"
	"github.com/0jonjo/tripkit/internal/observability"
	"github.com/0jonjo/tripkit/internal/toolkit"
	"github.com/0jonjo/tripkit/internal/weather"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTravelRegistry(metrics *observability.Metrics) *toolkit.Registry {
	gen := itinerary.NewGenerator(rand.New(rand.NewSource(1)))
	return toolkit.NewTravelRegistry(gen, testLogger(), metrics)
}

func TestRegistry_NamesInRegistrationOrder(t *testing.T) {
	r := newTravelRegistry(nil)

	assert.Equal(t, []string{
		toolkit.ToolGetWeather,
		toolkit.ToolSearchDestinations,
		toolkit.ToolCreateItinerary,
	}, r.Names())
}

func TestRegistry_OpenAIToolDeclarations(t *testing.T) {
	tools := newTravelRegistry(nil).OpenAITools()

	require.Len(t, tools, 3)
	for _, tool := range tools {
		assert.Equal(t, "function", string(tool.Type))
		require.NotNil(t, tool.Function)
		assert.NotEmpty(t, tool.Function.Description)
		params, ok := tool.Function.Parameters.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "object", params["type"])
	}
}

func TestExecute_UnknownTool(t *testing.T) {
	result := newTravelRegistry(nil).Execute(context.Background(), "book_rocket", `{}`)

	assert.Equal(t, "error", result.Status)
	assert.False(t, result.Halt)
	assert.Contains(t, result.JSON(), "book_rocket")
}

func TestExecute_MalformedArguments(t *testing.T) {
	result := newTravelRegistry(nil).Execute(context.Background(), toolkit.ToolGetWeather, `{"city":`)

	assert.Equal(t, "error", result.Status)
	assert.Contains(t, result.JSON(), "invalid arguments")
}

func TestExecute_EmptyArgumentsTreatedAsEmptyObject(t *testing.T) {
	// Domain validation, not an argument decoding failure.
	result := newTravelRegistry(nil).Execute(context.Background(), toolkit.ToolGetWeather, "")

	assert.Equal(t, "error", result.Status)
	assert.Contains(t, result.JSON(), "cannot be empty")
}

func TestExecute_RecoversPanic(t *testing.T) {
	r := toolkit.NewRegistry(testLogger(), nil)
	r.Register(&toolkit.Tool{
		Name: "explode",
		Run: func(_ context.Context, _ map[string]any) toolkit.Result {
			panic("boom")
		},
	})

	result := r.Execute(context.Background(), "explode", `{}`)

	assert.Equal(t, "error", result.Status)
	assert.Contains(t, result.JSON(), "boom")
}

func TestExecute_GetWeather(t *testing.T) {
	result := newTravelRegistry(nil).Execute(context.Background(), toolkit.ToolGetWeather,
		`{"city": "Paris", "units": "fahrenheit"}`)

	require.Equal(t, "success", result.Status)
	assert.False(t, result.Halt)

	report, ok := result.Payload.(*weather.Report)
	require.True(t, ok)
	assert.Equal(t, 64, report.Temperature)
}

func TestExecute_SearchDefaults(t *testing.T) {
	result := newTravelRegistry(nil).Execute(context.Background(), toolkit.ToolSearchDestinations,
		`{"pass_tier": "platinum"}`)

	require.Equal(t, "success", result.Status)
	resp, ok := result.Payload.(*catalog.SearchResponse)
	require.True(t, ok)
	assert.Len(t, resp.Results, 10, "limit defaults to 10")
	assert.Equal(t, "any", resp.Filters.Query)
	assert.Equal(t, "any", resp.Filters.Season)
}

func TestExecute_CreateItineraryHalts(t *testing.T) {
	result := newTravelRegistry(nil).Execute(context.Background(), toolkit.ToolCreateItinerary,
		`{"destination": "Barcelona", "days": 3, "interests": ["food"], "pace": "moderate"}`)

	require.Equal(t, "success", result.Status)
	assert.True(t, result.Halt, "successful itineraries are terminal payloads")

	plan, ok := result.Payload.(*itinerary.Plan)
	require.True(t, ok)
	assert.Len(t, plan.Days, 3)
}

func TestExecute_CreateItineraryValidationDoesNotHalt(t *testing.T) {
	result := newTravelRegistry(nil).Execute(context.Background(), toolkit.ToolCreateItinerary,
		`{"destination": "", "days": 3}`)

	assert.Equal(t, "error", result.Status)
	assert.False(t, result.Halt)
}

func TestExecute_RecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	r := newTravelRegistry(metrics)

	r.Execute(context.Background(), toolkit.ToolGetWeather, `{"city": "Paris"}`)
	r.Execute(context.Background(), toolkit.ToolCreateItinerary, `{"destination": "Rome", "days": 2}`)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ToolInvocations.WithLabelValues(toolkit.ToolGetWeather, "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ToolInvocations.WithLabelValues(toolkit.ToolCreateItinerary, "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.HaltResponses))
}

func TestRegister_DuplicateReplacesInPlace(t *testing.T) {
	r := toolkit.NewRegistry(testLogger(), nil)
	r.Register(&toolkit.Tool{Name: "echo", Run: func(_ context.Context, _ map[string]any) toolkit.Result {
		return toolkit.Result{Status: "success", Payload: "first"}
	}})
	r.Register(&toolkit.Tool{Name: "echo", Run: func(_ context.Context, _ map[string]any) toolkit.Result {
		return toolkit.Result{Status: "success", Payload: "second"}
	}})

	assert.Equal(t, []string{"echo"}, r.Names())
	result := r.Execute(context.Background(), "echo", `{}`)
	assert.Equal(t, "second", result.Payload)
}
