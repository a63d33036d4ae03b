// Command demo walks through the travel tools offline, no chat model
// required: it checks the weather, searches the catalog by tier, and
// feeds the top search hit into the itinerary generator.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/0jonjo/tripkit/internal/catalog"
	"github.com/0jonjo/tripkit/internal/itinerary"
	"github.com/0jonjo/tripkit/internal/toolkit"
)

func main() {
	// Tool logging stays quiet so the narration reads cleanly.
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	gen := itinerary.NewGenerator(nil)
	registry := toolkit.NewTravelRegistry(gen, log, nil)
	ctx := context.Background()

	step("Checking the weather in Paris")
	show(registry.Execute(ctx, toolkit.ToolGetWeather, `{"city": "Paris"}`))

	step("Same lookup in fahrenheit")
	show(registry.Execute(ctx, toolkit.ToolGetWeather, `{"city": "Paris", "units": "fahrenheit"}`))

	step("Searching beach destinations on the gold pass")
	result := registry.Execute(ctx, toolkit.ToolSearchDestinations,
		`{"pass_tier": "gold", "query": "beach", "limit": 5}`)
	show(result)

	destination := "Barcelona"
	if resp, ok := result.Payload.(*catalog.SearchResponse); ok && len(resp.Results) > 0 {
		destination = resp.Results[0].Name
	}

	step(fmt.Sprintf("Building a 3-day itinerary for the top hit: %s", destination))
	args, _ := json.Marshal(map[string]any{
		"destination": destination,
		"days":        3,
		"interests":   []string{"culture", "food"},
		"pace":        "moderate",
	})
	result = registry.Execute(ctx, toolkit.ToolCreateItinerary, string(args))
	show(result)

	if result.Halt {
		fmt.Println("\nThe itinerary came back as a terminal payload: an orchestrator")
		fmt.Println("would hand it to the user verbatim instead of rephrasing it.")
	}
}

func step(title string) {
	fmt.Printf("\n=== %s ===\n", title)
}

func show(result toolkit.Result) {
	b, err := json.MarshalIndent(result.Payload, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to render result:", err)
		return
	}
	fmt.Println(string(b))
}
