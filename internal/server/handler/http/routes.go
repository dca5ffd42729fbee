// Package http provides HTTP routing configuration for the signup service.
package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"

	"github.com/ashakirin/signup-service/internal/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves the
// signup and login pages. Handlers carry their own dependencies; the
// router holds no state beyond the routing table built here.
//
// Routes:
//
//	GET  /        → authHandler.Home
//	GET  /signup  → authHandler.SignupForm
//	POST /signup  → authHandler.Signup
//	GET  /login   → authHandler.LoginForm
//	POST /login   → authHandler.Login
//	*             → NotFound (404 page)
func NewRouter(authHandler *AuthHandler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Get("/", authHandler.Home)
	r.Get("/signup", authHandler.SignupForm)
	r.Post("/signup", authHandler.Signup)
	r.Get("/login", authHandler.LoginForm)
	r.Post("/login", authHandler.Login)

	r.NotFound(NotFound)

	return r
}
