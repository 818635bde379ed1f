// Package app wires the HTTP surface together: routes, middleware, and the
// Swagger UI.
package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	"products-api/app/categories"
	"products-api/app/middleware"
	"products-api/app/products"
)

func NewRouter(
	productsHandler *products.ProductsHandler,
	categoriesHandler *categories.CategoryHandler,
	logger *zerolog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	// API documentation
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})
	r.Get("/swagger/*", httpSwagger.Handler())

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", categoriesHandler.HandleGetAll)
		r.Post("/", categoriesHandler.HandleCreate)
		r.Put("/{id}", categoriesHandler.HandleRename)
		r.Delete("/{id}", categoriesHandler.HandleDelete)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", productsHandler.HandleList)
		r.Get("/{id}", productsHandler.HandleGet)
		r.Post("/", productsHandler.HandleCreate)
		r.Put("/{id}", productsHandler.HandleUpdate)
		r.Delete("/{id}", productsHandler.HandleDelete)
	})

	return r
}
