package api

import (
	"context"

	"github.com/0jonjo/tripkit/internal/catalog"
	"github.com/0jonjo/tripkit/internal/itinerary"
	"github.com/0jonjo/tripkit/internal/toolkit"
)

// SearchCache defines the cache operations needed by handlers. A nil
// cache disables caching entirely.
type SearchCache interface {
	Get(ctx context.Context, tier, query, season string, limit int) (*catalog.SearchResponse, error)
	Set(ctx context.Context, tier, query, season string, limit int, resp *catalog.SearchResponse) error
}

// PlanBuilder defines the itinerary generation needed by handlers.
type PlanBuilder interface {
	Build(destination string, days int, interests []string, pace string) *itinerary.Plan
}

// ToolExecutor defines the raw tool dispatch needed by the generic
// tools endpoint.
type ToolExecutor interface {
	Execute(ctx context.Context, name, argsJSON string) toolkit.Result
}
