package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

const (
	indexPath    = "/"
	healthPath   = "/healthz"
	metricsPath  = "/metrics"
	versionPath  = "/api/version"
	productsPath = "/api/products"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(h.withMetrics)
	router.Use(withGZip)
	if len(h.cfg.CORSAllowedOrigins) > 0 {
		router.Use(h.newCORS().Handler)
	}

	router.Get(indexPath, h.index)
	router.Get(healthPath, h.health)
	router.Get(versionPath, h.getServerVersion)
	if h.metrics != nil {
		router.Method(http.MethodGet, metricsPath, h.metrics.Handler())
	}

	// product collection
	router.Group(func(r chi.Router) {
		if h.cfg.RequestTimeout > 0 {
			r.Use(middleware.Timeout(h.cfg.RequestTimeout))
		}
		r.Get(productsPath, h.listProducts)
		r.Post(productsPath, h.createProduct)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) newCORS() *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: h.cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders: []string{"Location", traceIDHeader},
	})
}
