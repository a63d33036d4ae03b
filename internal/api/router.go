package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

// NewRouter builds and returns the Chi router with all routes
// configured. Health and metrics are unauthenticated; every tool
// route requires bearer auth. Rate limiting applies globally per IP.
func NewRouter(handlers *Handlers, token string, rateLimitRPM int, pinger CachePinger, metricsHandler http.Handler, log *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(httprate.LimitByIP(rateLimitRPM, time.Minute))

	r.Get("/api/v1/health", HealthHandlerFunc(pinger, log))
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	r.Group(func(r chi.Router) {
		r.Use(BearerAuth(token))
		r.Get("/api/v1/weather/{city}", handlers.GetWeather)
		r.Get("/api/v1/destinations", handlers.SearchDestinations)
		r.Post("/api/v1/itineraries", handlers.CreateItinerary)
		r.Post("/api/v1/tools/{name}", handlers.ExecuteTool)
	})

	return r
}

// Ensure chi.Mux implements http.Handler.
var _ http.Handler = (*chi.Mux)(nil)
