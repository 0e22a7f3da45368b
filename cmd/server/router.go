package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/mesto-project/mesto-api/internal/api"
	apiMiddleware "github.com/mesto-project/mesto-api/internal/api/middleware"
	"github.com/mesto-project/mesto-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Signup, signin, and the diagnostic routes are
// public; everything else requires a bearer token.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(httprate.LimitByIP(
		app.config.Server.RateLimitRequests,
		time.Duration(app.config.Server.RateLimitWindowMinutes)*time.Minute,
	))

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordVerifier,
		app.passwordVerifier,
		app.logger,
	)
	userHandler := api.NewUserHandler(app.userStore, app.logger)
	cardHandler := api.NewCardHandler(app.cardStore, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Public endpoints
	r.Post("/signup", authHandler.Signup)
	r.Post("/signin", authHandler.Signin)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	// Deliberate panic endpoint to verify the recovery middleware.
	r.Get("/crash-test", func(w http.ResponseWriter, r *http.Request) {
		panic("crash test")
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.ListUsers)
			r.Get("/me", userHandler.GetMe)
			r.Patch("/me", userHandler.UpdateProfile)
			r.Patch("/me/avatar", userHandler.UpdateAvatar)
			r.Get("/{id}", userHandler.GetUserByID)
		})

		r.Route("/cards", func(r chi.Router) {
			r.Get("/", cardHandler.ListCards)
			r.Post("/", cardHandler.CreateCard)
			r.Delete("/{id}", cardHandler.DeleteCard)
			r.Put("/{id}/likes", cardHandler.LikeCard)
			r.Delete("/{id}/likes", cardHandler.DislikeCard)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Requested resource not found")
	})

	return r
}
