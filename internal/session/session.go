// Package session identifies the logged-in user across requests through a
// signed cookie. The cookie carries an HS256 token whose subject is the
// user id, so the identity cannot be forged client-side.
package session

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the name of the session cookie.
const CookieName = "session"

const defaultTTL = 24 * time.Hour

// ErrNoSession is returned when the request carries no valid session.
var ErrNoSession = errors.New("no valid session")

// Manager issues, verifies, and clears session cookies.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    defaultTTL,
	}
}

// Issue sets a session cookie identifying the given user.
func (m *Manager) Issue(w http.ResponseWriter, userID int) error {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(userID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  now.Add(m.ttl),
		HttpOnly: true,
	})
	return nil
}

// UserID returns the user id carried by the request's session cookie.
// A missing, expired, or tampered cookie yields ErrNoSession.
func (m *Manager) UserID(r *http.Request) (int, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return 0, ErrNoSession
	}

	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrNoSession
	}

	id, err := strconv.Atoi(strings.TrimSpace(claims.Subject))
	if err != nil || id < 1 {
		return 0, ErrNoSession
	}
	return id, nil
}

// Clear overwrites the session cookie with an empty value and a past
// expiry. A no-op for clients that carry no cookie.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-24 * time.Hour),
		MaxAge:   -1,
		HttpOnly: true,
	})
}
