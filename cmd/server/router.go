package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/biovital365/mandala-api/internal/api"
	apiMiddleware "github.com/biovital365/mandala-api/internal/api/middleware"
)

// setupRouter registers every route on a new chi router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(apiMiddleware.Trace(app.logger))
	r.Use(chimw.Recoverer)

	authHandler := api.NewAuthHandler(
		app.userService,
		app.jwtService,
		app.passwordVerifier,
		app.config.Auth,
		app.logger,
	)
	readingHandler := api.NewReadingHandler(app.readingService, app.renderer, app.metrics, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		r.Post("/readings", readingHandler.Preview)
		r.Get("/pillars/{pillar}/{number}", readingHandler.InterpretPillar)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Delete("/account", authHandler.DeleteAccount)

			r.Post("/calculations", readingHandler.CreateCalculation)
			r.Get("/calculations", readingHandler.ListCalculations)
			r.Get("/calculations/{id}", readingHandler.GetCalculation)
			r.Get("/calculations/{id}/pillars/{pillar}", readingHandler.GetCalculationPillar)
			r.Get("/calculations/{id}/report.pdf", readingHandler.DownloadReport)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))

	return r
}
