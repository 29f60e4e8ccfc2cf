package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/devforge/devforge/internal/api/handler"
	"github.com/devforge/devforge/internal/api/middleware"
	"github.com/devforge/devforge/internal/contact"
	"github.com/devforge/devforge/internal/portfolio"
	"github.com/devforge/devforge/internal/storage"
	"github.com/devforge/devforge/internal/team"
	"github.com/devforge/devforge/internal/template"
)

// adminRealm names the basic-auth realm presented on 401 challenges.
const adminRealm = "Admin Panel"

// Deps holds all dependencies needed by the router.
type Deps struct {
	Templates     template.Repository
	Portfolio     portfolio.Repository
	Team          team.Repository
	Contacts      contact.Repository
	Notifier      handler.Notifier
	Store         storage.ObjectStore
	Version       string
	AdminUsername string
	AdminPassword string
	CORSOrigins   []string
}

// NewRouter creates and configures a chi router with all middleware and routes.
func NewRouter(deps Deps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	healthHandler := handler.NewHealthHandler(deps.Version)
	templateHandler := handler.NewTemplateHandler(deps.Templates)
	portfolioHandler := handler.NewPortfolioHandler(deps.Portfolio)
	teamHandler := handler.NewTeamHandler(deps.Team)
	contactHandler := handler.NewContactHandler(deps.Contacts, deps.Notifier)
	uploadHandler := handler.NewUploadHandler(deps.Store)

	r.Get("/", healthHandler.Root)
	r.Get("/health", healthHandler.Health)

	r.Get("/templates", templateHandler.List)
	r.Get("/templates/{id}", templateHandler.GetByID)
	r.Get("/portfolio", portfolioHandler.List)
	r.Get("/team", teamHandler.List)
	r.Post("/contact", contactHandler.Submit)

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.BasicAuth(adminRealm, deps.AdminUsername, deps.AdminPassword))

		r.Route("/templates", func(r chi.Router) {
			r.Get("/", templateHandler.List)
			r.Post("/", templateHandler.Create)
			r.Post("/reorder", templateHandler.Reorder)
			r.Put("/{id}", templateHandler.Update)
			r.Delete("/{id}", templateHandler.Delete)
		})

		r.Route("/portfolio", func(r chi.Router) {
			r.Get("/", portfolioHandler.List)
			r.Post("/", portfolioHandler.Create)
			r.Post("/reorder", portfolioHandler.Reorder)
			r.Put("/{id}", portfolioHandler.Update)
			r.Delete("/{id}", portfolioHandler.Delete)
		})

		r.Route("/team", func(r chi.Router) {
			r.Get("/", teamHandler.List)
			r.Post("/", teamHandler.Create)
			r.Put("/{id}", teamHandler.Update)
			r.Delete("/{id}", teamHandler.Delete)
		})

		r.Route("/contacts", func(r chi.Router) {
			r.Get("/", contactHandler.List)
			r.Put("/{id}/read", contactHandler.MarkRead)
			r.Delete("/{id}", contactHandler.Delete)
		})

		r.Post("/upload", uploadHandler.Upload)
	})

	return r
}
