package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/holidays-api/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET    /health
//	GET    /api/v1/countries
//	GET    /api/v1/countries/{code}
//	GET    /api/v1/countries/{code}/holidays
//	GET    /api/v1/countries/{code}/holidays/{date}
//	GET    /api/v1/countries/{code}/workdays
//	GET    /api/v1/countries/{code}/workdays/next
//	GET    /api/v1/countries/{code}/calendar.ics
//	GET    /api/v1/engines/{engine}/{year}
//	POST   /api/v1/admin/snapshots                (API key)
//	GET    /api/v1/admin/snapshots                (API key)
//	GET    /api/v1/admin/snapshots/{code}/{year}  (API key)
//	DELETE /api/v1/admin/snapshots/{id}           (API key)
//	POST   /api/v1/admin/custom-holidays          (API key)
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", "METHOD_NOT_ALLOWED")
	})

	// ==========================================================================
	// Public routes
	// ==========================================================================
	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/countries", handlers.ListCountries)
		r.Route("/countries/{code}", func(r chi.Router) {
			r.Get("/", handlers.GetCountry)
			r.Get("/holidays", handlers.GetHolidays)
			r.Get("/holidays/{date}", handlers.CheckDate)
			r.Get("/workdays", handlers.CountWorkdays)
			r.Get("/workdays/next", handlers.NextWorkday)
			r.Get("/calendar.ics", handlers.ExportCalendar)
		})
		r.Get("/engines/{engine}/{year}", handlers.GetEngineAnchors)

		// ======================================================================
		// Admin routes (API key)
		// ======================================================================
		r.Route("/admin", func(r chi.Router) {
			r.Use(AuthMiddleware(cfg, logger))
			r.Post("/snapshots", handlers.CreateSnapshot)
			r.Get("/snapshots", handlers.ListSnapshots)
			r.Get("/snapshots/{code}/{year}", handlers.GetSnapshot)
			r.Delete("/snapshots/{id}", handlers.DeleteSnapshot)
			r.Post("/custom-holidays", handlers.CreateCustomHoliday)
		})
	})

	return r
}
