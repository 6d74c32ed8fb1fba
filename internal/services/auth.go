package services

import (
	"context"
	"errors"

	"github.com/userportal/webapp/internal/password"
	"github.com/userportal/webapp/internal/store"
)

// ErrInvalidCredentials is returned when the email is unknown or the
// password does not match. Callers cannot tell the two apart.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService verifies credentials against the user store.
type AuthService struct {
	users UserRepository
}

func NewAuthService(users UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Authenticate returns the id of the user owning the email when the
// password matches the stored digest. Unknown emails and wrong passwords
// both yield ErrInvalidCredentials; store failures propagate unchanged.
func (s *AuthService) Authenticate(ctx context.Context, email, plaintext string) (int, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, ErrInvalidCredentials
		}
		return 0, err
	}

	if !password.Verify(plaintext, user.PasswordSalt, user.PasswordHash) {
		return 0, ErrInvalidCredentials
	}
	return user.ID, nil
}
