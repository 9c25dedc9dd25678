package api

import (
	"log/slog"
	"net/http"
	"time"

	"dvdstore/internal/api/handler"
	mw "dvdstore/internal/api/middleware"
	"dvdstore/internal/config"
	"dvdstore/internal/domain/catalog"
	"dvdstore/internal/domain/customer"
	"dvdstore/internal/domain/geo"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/traceid"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(customerService customer.CustomerService, catalogService catalog.CatalogService, geoService geo.GeoService, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	router := chi.NewRouter()

	setupMiddleware(router, cfg, logger)
	setupMetricsEndpoint(router, cfg, logger)
	setupAuthRoutes(router, cfg, logger)
	router.Route("/api", func(r chi.Router) {
		r.Use(mw.AuthMiddleware(cfg.Server.Auth, logger))
		setupCustomerRoutes(r, customerService, logger)
		setupCatalogRoutes(r, catalogService, logger)
		setupGeoRoutes(r, geoService, logger)
	})
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	return router
}

func setupMiddleware(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(traceid.Middleware)
	router.Use(mw.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(mw.NewRateLimiterMiddleware(cfg.Server.RateLimit, logger).Middleware)
	router.Use(mw.MetricsMiddleware())
}

func setupMetricsEndpoint(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	metricsPath := cfg.Metrics.Path
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	logger.Info("Setting up Prometheus metrics endpoint", "path", metricsPath)
	router.Handle(metricsPath, promhttp.Handler())
}

func setupAuthRoutes(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	authHandler := handler.NewAuthHandler(*cfg, logger)
	router.Route("/auth", func(r chi.Router) {
		r.Post("/token", authHandler.GenerateBearerToken)
	})
}

func setupCustomerRoutes(r chi.Router, svc customer.CustomerService, logger *slog.Logger) {
	h := handler.NewCustomerHandler(svc, logger)

	r.Route("/customers", func(r chi.Router) {
		r.Post("/", h.CreateCustomer)
		r.Get("/total_per_shop", h.CountCustomersPerStore)
		r.Get("/shop/{storeID}", h.ListCustomersByStore)
		r.Get("/{customerID}", h.GetCustomerDetails)
	})
}

func setupCatalogRoutes(r chi.Router, svc catalog.CatalogService, logger *slog.Logger) {
	h := handler.NewCatalogHandler(svc, logger)

	r.Route("/actors", func(r chi.Router) {
		r.Get("/", h.ListActors)
		r.Get("/{actorID}", h.GetActorByID)
	})
	r.Get("/actor-query", h.FindActorByName)
	r.Get("/actor-film-in-category", h.GetActorFilmsInCategory)

	r.Route("/movies", func(r chi.Router) {
		r.Get("/totals_per_category", h.CountFilmsPerCategory)
		r.Get("/top_three_rented", h.TopRentedFilms)
	})
}

func setupGeoRoutes(r chi.Router, svc geo.GeoService, logger *slog.Logger) {
	h := handler.NewGeoHandler(svc, logger)

	r.Route("/cities", func(r chi.Router) {
		r.Get("/", h.ListCities)
		r.Post("/", h.CreateCity)
		r.Get("/{countryID}", h.ListCitiesByCountry)
	})
	r.Get("/stores_per_country", h.CountStoresPerCountry)
}
