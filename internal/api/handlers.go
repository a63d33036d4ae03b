package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/0jonjo/tripkit/internal/catalog"
	"github.com/0jonjo/tripkit/internal/weather"
)

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	builder  PlanBuilder
	executor ToolExecutor
	cache    SearchCache
	log      *slog.Logger
}

// NewHandlers constructs Handlers. cache may be nil to run without
// Redis.
func NewHandlers(builder PlanBuilder, executor ToolExecutor, cache SearchCache, log *slog.Logger) *Handlers {
	return &Handlers{
		builder:  builder,
		executor: executor,
		cache:    cache,
		log:      log,
	}
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// softErrorStatus maps the payload-level status taxonomy to an HTTP
// code: validation errors are the caller's fault, not-found statuses
// still describe a completed operation.
func softErrorStatus(status string) int {
	switch status {
	case "error":
		return http.StatusBadRequest
	case "no_data":
		return http.StatusNotFound
	default:
		return http.StatusOK
	}
}

// GetWeather handles GET /api/v1/weather/{city}?units=.
func (h *Handlers) GetWeather(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")
	units := weather.Units(r.URL.Query().Get("units"))

	report := weather.Lookup(city, units)
	writeJSON(w, softErrorStatus(report.Status), report)
}

// SearchDestinations handles GET /api/v1/destinations with tier,
// query, season, and limit parameters. Successful responses are
// cached when a cache is wired; no_results responses are cheap enough
// to recompute.
func (h *Handlers) SearchDestinations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tier := q.Get("tier")
	query := q.Get("query")
	season := q.Get("season")

	limit := 10
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be an integer"})
			return
		}
		limit = n
	}

	if h.cache != nil {
		cached, err := h.cache.Get(r.Context(), tier, query, season, limit)
		if err != nil {
			h.log.Error("cache get failed", "tier", tier, "err", err)
		}
		if cached != nil {
			writeJSON(w, softErrorStatus(cached.Status), cached)
			return
		}
	}

	resp := catalog.Search(tier, query, season, limit)

	if h.cache != nil && resp.Status == "success" {
		if err := h.cache.Set(r.Context(), tier, query, season, limit, resp); err != nil {
			h.log.Warn("cache set failed", "tier", tier, "err", err)
		}
	}

	writeJSON(w, softErrorStatus(resp.Status), resp)
}

// itineraryRequest is the body of POST /api/v1/itineraries.
type itineraryRequest struct {
	Destination string   `json:"destination"`
	Days        int      `json:"days"`
	Interests   []string `json:"interests"`
	Pace        string   `json:"pace"`
}

// CreateItinerary handles POST /api/v1/itineraries.
func (h *Handlers) CreateItinerary(w http.ResponseWriter, r *http.Request) {
	var req itineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	plan := h.builder.Build(req.Destination, req.Days, req.Interests, req.Pace)
	writeJSON(w, softErrorStatus(plan.Status), plan)
}

// toolResponse wraps a registry result for HTTP clients, surfacing
// the halt flag so callers can apply the short-circuit contract.
type toolResponse struct {
	Status  string `json:"status"`
	Halt    bool   `json:"halt"`
	Payload any    `json:"payload"`
}

// ExecuteTool handles POST /api/v1/tools/{name}: the same dispatch
// path a chat model takes, with the request body as raw tool
// arguments.
func (h *Handlers) ExecuteTool(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "failed to read request body"})
		return
	}

	result := h.executor.Execute(r.Context(), name, string(body))
	writeJSON(w, softErrorStatus(result.Status), toolResponse{
		Status:  result.Status,
		Halt:    result.Halt,
		Payload: result.Payload,
	})
}

// CachePinger is the optional connectivity probe for the health
// endpoint.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandlerFunc returns an http.HandlerFunc reporting service
// health. pinger may be nil when no cache is configured.
func HealthHandlerFunc(pinger CachePinger, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		cacheStatus := "disabled"

		if pinger != nil {
			cacheStatus = "ok"
			if err := pinger.Ping(ctx); err != nil {
				log.Error("health check: cache ping failed", "err", err)
				cacheStatus = "error"
				status = http.StatusServiceUnavailable
			}
		}

		overall := "ok"
		if status != http.StatusOK {
			overall = "degraded"
		}

		writeJSON(w, status, map[string]string{
			"status": overall,
			"cache":  cacheStatus,
		})
	}
}
