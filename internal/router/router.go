package router

import (
	"github.com/Totarae/PageBin/internal/handlers"
	"github.com/Totarae/PageBin/internal/middleware"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NewRouter создаёт и настраивает маршрутизатор
func NewRouter(handler *handlers.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(middleware.GzipMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handler.Health)
		r.Get("/pages/{name}", handler.GetPage)
		r.Post("/pages/{name}", handler.CreatePage)
		r.Get("/recents", handler.GetRecents)
		r.Get("/suggestions/next-name", handler.NextName)
	})

	return r
}
