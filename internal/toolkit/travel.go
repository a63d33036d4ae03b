package toolkit

import (
	"context"
	"log/slog"

	"github.com/0jonjo/tripkit/internal/catalog"
	"github.com/0jonjo/tripkit/internal/itinerary"
	"github.com/0jonjo/tripkit/internal/observability"
	"github.com/0jonjo/tripkit/internal/weather"
)

// Tool names as declared to the model.
const (
	ToolGetWeather         = "get_weather"
	ToolSearchDestinations = "search_destinations"
	ToolCreateItinerary    = "create_itinerary"
)

// NewTravelRegistry builds a Registry with the three travel tools
// registered. gen must not be nil; metrics may be.
func NewTravelRegistry(gen *itinerary.Generator, log *slog.Logger, metrics *observability.Metrics) *Registry {
	r := NewRegistry(log, metrics)
	r.Register(weatherTool())
	r.Register(searchTool())
	r.Register(itineraryTool(gen))
	return r
}

func weatherTool() *Tool {
	return &Tool{
		Name:        ToolGetWeather,
		Description: "Get current weather conditions for a city, in celsius or fahrenheit.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"city": map[string]any{
					"type":        "string",
					"description": "City name, e.g. Paris",
				},
				"units": map[string]any{
					"type":        "string",
					"enum":        []string{"celsius", "fahrenheit"},
					"description": "Temperature units; defaults to celsius",
				},
			},
			"required": []string{"city"},
		},
		Run: func(_ context.Context, args map[string]any) Result {
			city := stringArg(args, "city", "")
			units := weather.Units(stringArg(args, "units", string(weather.Celsius)))
			report := weather.Lookup(city, units)
			return Result{Status: report.Status, Payload: report}
		},
	}
}

func searchTool() *Tool {
	return &Tool{
		Name:        ToolSearchDestinations,
		Description: "Search travel destinations unlocked by a pass tier, optionally filtered by free-text query and season.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"pass_tier": map[string]any{
					"type":        "string",
					"enum":        []string{"silver", "gold", "platinum"},
					"description": "Membership tier; higher tiers unlock more destinations",
				},
				"query": map[string]any{
					"type":        "string",
					"description": "Free-text filter over destination type, activities, and name; 'any' disables it",
				},
				"season": map[string]any{
					"type":        "string",
					"enum":        []string{"any", "spring", "summer", "fall", "winter"},
					"description": "Travel season filter; 'any' disables it",
				},
				"limit": map[string]any{
					"type":        "integer",
					"minimum":     1,
					"maximum":     20,
					"description": "Maximum results; defaults to 10",
				},
			},
			"required": []string{"pass_tier"},
		},
		Run: func(_ context.Context, args map[string]any) Result {
			resp := catalog.Search(
				stringArg(args, "pass_tier", ""),
				stringArg(args, "query", "any"),
				stringArg(args, "season", "any"),
				intArg(args, "limit", 10),
			)
			return Result{Status: resp.Status, Payload: resp}
		},
	}
}

func itineraryTool(gen *itinerary.Generator) *Tool {
	return &Tool{
		Name:        ToolCreateItinerary,
		Description: "Create a day-by-day travel itinerary. The result is final and must be shown to the user as-is.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"destination": map[string]any{
					"type":        "string",
					"description": "Trip destination, e.g. Barcelona",
				},
				"days": map[string]any{
					"type":        "integer",
					"minimum":     1,
					"maximum":     14,
					"description": "Trip length in days",
				},
				"interests": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Traveler interests, e.g. culture, food",
				},
				"pace": map[string]any{
					"type":        "string",
					"enum":        []string{"relaxed", "moderate", "packed"},
					"description": "Activity density per day; defaults to moderate",
				},
			},
			"required": []string{"destination", "days"},
		},
		Run: func(_ context.Context, args map[string]any) Result {
			plan := gen.Build(
				stringArg(args, "destination", ""),
				intArg(args, "days", 1),
				stringSliceArg(args, "interests"),
				stringArg(args, "pace", "moderate"),
			)
			// A successful plan is terminal: it goes back to the user
			// verbatim, skipping further model synthesis.
			return Result{Status: plan.Status, Halt: plan.Status == "success", Payload: plan}
		},
	}
}

// ---- argument helpers ----
//
// Chat models send arguments as loosely-typed JSON; these helpers
// apply defaults instead of failing on absent or mistyped fields, so
// the domain validation stays the single source of soft errors.

func stringArg(args map[string]any, key, fallback string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func intArg(args map[string]any, key string, fallback int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return fallback
	}
}

func stringSliceArg(args map[string]any, key string) []string {
	raw, ok := args[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
