package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dseu-petition/petition-api/internal/auth"
	"github.com/dseu-petition/petition-api/internal/handler"
	mw "github.com/dseu-petition/petition-api/internal/middleware"
)

func New(
	jwtSecret string,
	files http.FileSystem,
	authH *handler.AuthHandler,
	petH *handler.PetitionHandler,
	dashH *handler.DashboardHandler,
	adminH *handler.AdminHandler,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/auth/login", authH.Login)
		r.Post("/auth/register", authH.Register)
		r.Get("/stats", dashH.Public)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(jwtSecret))

			// Auth
			r.Get("/auth/me", authH.Me)

			// Dashboard
			r.Get("/dashboard", dashH.Dashboard)

			// Petitions
			r.Post("/petitions", petH.Submit)
			r.Get("/petitions/mine", petH.Mine)
			r.Get("/petitions/mine/pdf", petH.MinePDF)

			// Admin
			r.Group(func(r chi.Router) {
				r.Use(auth.AdminOnly)

				r.Get("/admin/stats", adminH.Stats)
				r.Get("/admin/petitions", adminH.List)
				r.Get("/admin/petitions/{petitionId}", adminH.Get)
				r.Patch("/admin/petitions/{petitionId}/status", adminH.UpdateStatus)
				r.Get("/admin/petitions/{petitionId}/pdf", adminH.PDF)
			})
		})
	})

	// Public URL resolution for uploaded documents
	fileServer := http.StripPrefix("/files/", http.FileServer(files))
	r.Get("/files/*", fileServer.ServeHTTP)

	return r
}
