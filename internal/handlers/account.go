package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/userportal/webapp/internal/render"
	"github.com/userportal/webapp/internal/store"
)

// UpdateForm shows the profile update form, pre-filled with the session's
// user id. Without a session it prompts for login instead.
func (h *WebHandler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	userID, err := h.sessions.UserID(r)
	if err != nil {
		h.render(w, "login.html", render.ViewData{Message: "Please log in to update your profile."})
		return
	}
	h.render(w, "update.html", render.ViewData{UserID: strconv.Itoa(userID)})
}

// Update rewrites the profile from the submitted form. The password is
// replaced only when the password field is non-empty.
func (h *WebHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, "update.html", render.ViewData{Message: "An error occurred during profile update."})
		return
	}

	rawID := r.PostForm.Get("userId")
	userID, err := strconv.Atoi(rawID)
	if rawID == "" || err != nil {
		h.render(w, "update.html", render.ViewData{Message: "Invalid user ID format."})
		return
	}

	email := r.PostForm.Get("email")
	name := r.PostForm.Get("name")
	plaintext := r.PostForm.Get("password")

	owner, err := h.users.GetByEmail(r.Context(), email)
	switch {
	case err == nil && owner.ID != userID:
		h.render(w, "update.html", render.ViewData{
			Message: "Email is already taken by another user.",
			UserID:  rawID,
		})
		return
	case err != nil && !errors.Is(err, store.ErrNotFound):
		h.log.WithError(err).Error("failed to check email owner")
		h.render(w, "update.html", render.ViewData{
			Message: "An error occurred during profile update.",
			UserID:  rawID,
		})
		return
	}

	if _, err := h.users.Update(r.Context(), userID, email, name, plaintext); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			h.render(w, "update.html", render.ViewData{
				Message: "Email is already taken by another user.",
				UserID:  rawID,
			})
			return
		}
		if !errors.Is(err, store.ErrNotFound) {
			h.log.WithError(err).Error("failed to update user")
		}
		h.render(w, "update.html", render.ViewData{
			Message: "Update failed. Please try again.",
			UserID:  rawID,
		})
		return
	}

	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		h.log.WithError(err).Error("failed to load updated user")
		h.render(w, "update.html", render.ViewData{
			Message: "Update failed. Please try again.",
			UserID:  rawID,
		})
		return
	}

	h.render(w, "dashboard.html", render.ViewData{
		Message:  fmt.Sprintf("Profile updated successfully. Welcome, %s!", user.Name),
		UserID:   rawID,
		Username: user.Name,
	})
}

// Dashboard shows the dashboard for the session's user, or prompts for
// login when the session is absent or the account is gone.
func (h *WebHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := h.sessions.UserID(r)
	if err != nil {
		h.render(w, "login.html", render.ViewData{Message: "Please log in to access the dashboard."})
		return
	}

	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.render(w, "login.html", render.ViewData{Message: "User not found. Please log in again."})
			return
		}
		h.log.WithError(err).Error("failed to load user")
		h.render(w, "dashboard.html", render.ViewData{Message: "An error occurred during dashboard."})
		return
	}

	h.render(w, "dashboard.html", render.ViewData{
		Message:  fmt.Sprintf("Welcome, %s!", user.Name),
		UserID:   strconv.Itoa(user.ID),
		Username: user.Name,
	})
}
