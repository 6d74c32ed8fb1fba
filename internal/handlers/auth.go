package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/userportal/webapp/internal/render"
	"github.com/userportal/webapp/internal/services"
	"github.com/userportal/webapp/internal/store"
)

// RegisterForm shows the registration form.
func (h *WebHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "register.html", render.ViewData{})
}

// Register creates an account from the submitted form, logs the new user
// in, and shows the dashboard.
func (h *WebHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, "register.html", render.ViewData{Message: "An error occurred during registration."})
		return
	}

	email := r.PostForm.Get("email")
	name := r.PostForm.Get("name")
	plaintext := r.PostForm.Get("password")

	if !h.captchaValid(r) {
		h.render(w, "register.html", render.ViewData{Message: "Invalid captcha."})
		return
	}

	exists, err := h.users.EmailExists(r.Context(), email)
	if err != nil {
		h.log.WithError(err).Error("failed to check email")
		h.render(w, "register.html", render.ViewData{Message: "An error occurred during registration."})
		return
	}
	if exists {
		h.render(w, "register.html", render.ViewData{Message: "Email already exists."})
		return
	}

	if _, err := h.users.Register(r.Context(), email, name, plaintext); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			h.render(w, "register.html", render.ViewData{Message: "Email already exists."})
			return
		}
		h.log.WithError(err).Error("failed to register user")
		h.render(w, "register.html", render.ViewData{Message: "Registration failed. Please try again."})
		return
	}

	user, err := h.users.GetByEmail(r.Context(), email)
	if err != nil {
		h.log.WithError(err).Error("failed to load new user")
		h.render(w, "register.html", render.ViewData{Message: "Registration failed. Please try again."})
		return
	}

	if err := h.sessions.Issue(w, user.ID); err != nil {
		h.log.WithError(err).Error("failed to issue session")
		h.render(w, "register.html", render.ViewData{Message: "Registration failed. Please try again."})
		return
	}

	h.render(w, "dashboard.html", render.ViewData{
		Message:  fmt.Sprintf("Welcome, %s!", user.Name),
		UserID:   strconv.Itoa(user.ID),
		Username: user.Name,
	})
}

// LoginForm shows the login form.
func (h *WebHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "login.html", render.ViewData{})
}

// Login verifies the submitted credentials, starts a session, and shows
// the dashboard.
func (h *WebHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, "login.html", render.ViewData{Message: "An error occurred during login."})
		return
	}

	email := r.PostForm.Get("email")
	plaintext := r.PostForm.Get("password")

	if !h.captchaValid(r) {
		h.render(w, "login.html", render.ViewData{Message: "Invalid captcha."})
		return
	}

	userID, err := h.auth.Authenticate(r.Context(), email, plaintext)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			h.render(w, "login.html", render.ViewData{Message: "Invalid email or password."})
			return
		}
		h.log.WithError(err).Error("failed to authenticate user")
		h.render(w, "login.html", render.ViewData{Message: "An error occurred during login."})
		return
	}

	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		h.log.WithError(err).Error("failed to load user")
		h.render(w, "login.html", render.ViewData{Message: "An error occurred during login."})
		return
	}

	if err := h.sessions.Issue(w, user.ID); err != nil {
		h.log.WithError(err).Error("failed to issue session")
		h.render(w, "login.html", render.ViewData{Message: "An error occurred during login."})
		return
	}

	h.render(w, "dashboard.html", render.ViewData{
		Message:  fmt.Sprintf("Welcome, %s!", user.Name),
		UserID:   strconv.Itoa(user.ID),
		Username: user.Name,
	})
}

// Logout clears the session cookie and shows the login view. Clearing is
// idempotent for clients that carry no session.
func (h *WebHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	h.render(w, "login.html", render.ViewData{Message: "Logout successful."})
}
