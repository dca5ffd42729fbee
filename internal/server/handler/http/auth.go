// Package http provides HTTP handlers for the signup and login forms.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/ashakirin/signup-service/internal/models"
	"github.com/ashakirin/signup-service/internal/validator"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// SignUp creates a new user with a hashed password. Returns
	// models.ErrAlreadyExists when the email is taken.
	SignUp(ctx context.Context, email, password string) error
	// LogIn verifies the credentials and returns the user. Returns
	// models.ErrInvalidCredentials for unknown email or wrong password.
	LogIn(ctx context.Context, email, password string) (*models.User, error)
}

// AuthHandler handles HTTP requests for the signup and login flows.
//
// Every outcome is either a rendered page or a redirect back to the
// originating form; error details stay in the server logs and are never
// written into the response.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
	// Logger records validation and store failures with their real cause.
	Logger *zap.Logger
}

// Home serves the greeting page linking to the signup form.
func (h *AuthHandler) Home(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, http.StatusOK, homePage)
}

// SignupForm serves the static signup form.
func (h *AuthHandler) SignupForm(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, http.StatusOK, signupPage)
}

// LoginForm serves the static login form.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, http.StatusOK, loginPage)
}

// Signup handles signup form submissions. Invalid fields, a taken email
// and store failures all redirect back to /signup; only a successful
// signup redirects to /login.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Logger.Warn("failed to parse signup form", zap.Error(err))
		http.Redirect(w, r, "/signup", http.StatusFound)
		return
	}

	form, fieldErrs := validator.ValidateSignup(r.PostForm)
	if len(fieldErrs) > 0 {
		h.Logger.Info("signup validation failed", zap.Any("fields", fieldErrs))
		http.Redirect(w, r, "/signup", http.StatusFound)
		return
	}

	err := h.AuthService.SignUp(r.Context(), form.Email, form.Password)
	switch {
	case err == nil:
		http.Redirect(w, r, "/login", http.StatusFound)
	case errors.Is(err, models.ErrAlreadyExists):
		h.Logger.Info("signup rejected, email taken", zap.String("email", form.Email))
		http.Redirect(w, r, "/signup", http.StatusFound)
	default:
		h.Logger.Error("signup failed", zap.String("email", form.Email), zap.Error(err))
		http.Redirect(w, r, "/signup", http.StatusFound)
	}
}

// Login handles login form submissions. On success it renders the
// confirmation page echoing the email; every failure, including unknown
// email and wrong password, redirects to /login without distinguishing
// the cause in the response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Logger.Warn("failed to parse login form", zap.Error(err))
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	form, fieldErrs := validator.ValidateLogin(r.PostForm)
	if len(fieldErrs) > 0 {
		h.Logger.Info("login validation failed", zap.Any("fields", fieldErrs))
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	user, err := h.AuthService.LogIn(r.Context(), form.Email, form.Password)
	switch {
	case err == nil:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := successTmpl.Execute(w, user); err != nil {
			h.Logger.Error("failed to render success page", zap.Error(err))
		}
	case errors.Is(err, models.ErrInvalidCredentials):
		// The wrapped message says whether the email was unknown or the
		// password wrong; the response must not.
		h.Logger.Info("login rejected", zap.String("email", form.Email), zap.Error(err))
		http.Redirect(w, r, "/login", http.StatusFound)
	default:
		h.Logger.Error("login failed", zap.String("email", form.Email), zap.Error(err))
		http.Redirect(w, r, "/login", http.StatusFound)
	}
}

// NotFound serves the 404 page for unmatched paths.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, http.StatusNotFound, notFoundPage)
}

func writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
