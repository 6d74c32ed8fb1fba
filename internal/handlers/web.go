package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/userportal/webapp/internal/captcha"
	"github.com/userportal/webapp/internal/render"
	"github.com/userportal/webapp/internal/services"
	"github.com/userportal/webapp/internal/session"
)

// CaptchaCookieName is the cookie holding the challenge code a form
// submission must echo back.
const CaptchaCookieName = "captchaCode"

const captchaTTL = 5 * time.Minute

// WebHandler serves the portal's HTML routes.
type WebHandler struct {
	auth     *services.AuthService
	users    *services.UserService
	sessions *session.Manager
	views    *render.Renderer
	log      *logrus.Logger
}

// NewWebHandler constructs a WebHandler with the provided collaborators.
func NewWebHandler(auth *services.AuthService, users *services.UserService, sessions *session.Manager, views *render.Renderer, log *logrus.Logger) *WebHandler {
	return &WebHandler{
		auth:     auth,
		users:    users,
		sessions: sessions,
		views:    views,
		log:      log,
	}
}

// WebRouter registers the portal routes on the given router.
func WebRouter(r chi.Router, handler *WebHandler) {
	r.Get("/", handler.Home)
	r.Get("/register", handler.RegisterForm)
	r.Post("/register", handler.Register)
	r.Get("/login", handler.LoginForm)
	r.Post("/login", handler.Login)
	r.Get("/update", handler.UpdateForm)
	r.Post("/update", handler.Update)
	r.Get("/logout", handler.Logout)
	r.Get("/dashboard", handler.Dashboard)
	r.Get("/captcha", handler.Captcha)
	r.NotFound(handler.NotFound)
}

// Home redirects logged-in users to the dashboard and shows the login
// view to everyone else.
func (h *WebHandler) Home(w http.ResponseWriter, r *http.Request) {
	if _, err := h.sessions.UserID(r); err == nil {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	h.render(w, "login.html", render.ViewData{})
}

// Captcha issues a fresh challenge code in a short-lived cookie and
// writes it as a PNG image.
func (h *WebHandler) Captcha(w http.ResponseWriter, r *http.Request) {
	code := captcha.NewCode()
	http.SetCookie(w, &http.Cookie{
		Name:     CaptchaCookieName,
		Value:    code,
		Path:     "/",
		Expires:  time.Now().Add(captchaTTL),
		HttpOnly: true,
	})

	img, err := captcha.Render(code)
	if err != nil {
		h.log.WithError(err).Error("failed to render captcha")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(img)
}

// NotFound serves the literal 404 body for unknown paths.
func (h *WebHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte("404 - Not Found"))
}

// Healthz reports process liveness.
func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// captchaValid compares the submitted captcha field against the challenge
// cookie. The form must already be parsed.
func (h *WebHandler) captchaValid(r *http.Request) bool {
	cookie, err := r.Cookie(CaptchaCookieName)
	if err != nil || cookie.Value == "" {
		return false
	}
	return r.PostForm.Get("captcha") == cookie.Value
}

// render writes a view; a missing view file is itself a 404.
func (h *WebHandler) render(w http.ResponseWriter, name string, data render.ViewData) {
	if err := h.views.Render(w, name, data); err != nil {
		if os.IsNotExist(err) {
			h.NotFound(w, nil)
			return
		}
		h.log.WithError(err).WithField("view", name).Error("failed to render view")
	}
}
