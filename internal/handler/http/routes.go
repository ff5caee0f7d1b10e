package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(withGzip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.appVersion)
	})

	// routes behind JWT authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/supplies", func(r chi.Router) {
			r.Get("/", h.listSupplies)
			r.Post("/", h.createSupply)
			r.Get("/{id}", h.getSupply)
			r.Put("/{id}", h.updateSupply)
			r.Delete("/{id}", h.deleteSupply)
		})

		r.Route("/api/projects", func(r chi.Router) {
			r.Get("/", h.listProjects)
			r.Post("/", h.createProject)
			r.Get("/{id}", h.getProject)
			r.Put("/{id}", h.updateProject)
			r.Patch("/{id}/status", h.setProjectStatus)
			r.Delete("/{id}", h.deleteProject)
			r.Post("/{id}/materials", h.addMaterial)
			r.Delete("/{id}/materials/{materialID}", h.deleteMaterial)
		})

		r.Get("/api/shopping-list", h.shoppingList)
		r.Get("/api/lookup/{barcode}", h.lookupBarcode)
		r.Get("/api/convert", h.convertUnits)
	})

	router.Handle("/metrics", promhttp.Handler())

	return router
}
