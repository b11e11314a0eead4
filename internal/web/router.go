package web

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/srobertson/xlit/internal/memory"
	"github.com/srobertson/xlit/internal/registry"
	"github.com/srobertson/xlit/internal/web/handlers"
	"github.com/srobertson/xlit/internal/web/middleware"
	"github.com/srobertson/xlit/internal/xlit"
)

type Router struct {
	reg  *registry.Registry
	repo memory.Repository
	svc  *xlit.Service
	log  *slog.Logger
}

func NewRouter(reg *registry.Registry, repo memory.Repository, svc *xlit.Service, log *slog.Logger) *Router {
	return &Router{
		reg:  reg,
		repo: repo,
		svc:  svc,
		log:  log,
	}
}

func (r *Router) Handler() http.Handler {
	mux := http.NewServeMux()

	catalogHandler := handlers.NewCatalogHandler(r.reg, r.log)
	transliterateHandler := handlers.NewTransliterateHandler(r.svc, r.log)
	exportHandler := handlers.NewExportHandler(r.reg, r.repo, r.log)

	rateLimiter := middleware.NewRateLimiter(30, 60)

	mux.Handle("GET /api/v1/languages",
		middleware.Chain(
			http.HandlerFunc(catalogHandler.Languages),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.CacheControl("public, s-maxage=300, max-age=60"),
		),
	)

	mux.Handle("GET /api/v1/methods",
		middleware.Chain(
			http.HandlerFunc(catalogHandler.Methods),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.CacheControl("public, s-maxage=300, max-age=60"),
		),
	)

	mux.Handle("POST /api/v1/transliterate",
		middleware.Chain(
			http.HandlerFunc(transliterateHandler.Transliterate),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.RateLimit(rateLimiter),
		),
	)

	mux.Handle("GET /api/v1/export/tmx",
		middleware.Chain(
			http.HandlerFunc(exportHandler.TMX),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.RateLimit(rateLimiter),
		),
	)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":   "ok",
			"registry": r.reg.State().String(),
		})
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	return middleware.CORS(mux)
}
