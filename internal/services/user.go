package services

import (
	"context"

	"github.com/userportal/webapp/internal/password"
	"github.com/userportal/webapp/types"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id int) (types.User, error)
	GetByEmail(ctx context.Context, email string) (types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
	Update(ctx context.Context, user types.User, changePassword bool) (types.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// UserService encapsulates account use-cases.
type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) GetByID(ctx context.Context, id int) (types.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (types.User, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *UserService) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.repo.EmailExists(ctx, email)
}

// Register creates an account with a fresh salt and a digest of the
// supplied password.
func (s *UserService) Register(ctx context.Context, email, name, plaintext string) (types.User, error) {
	salt, err := password.GenerateSalt()
	if err != nil {
		return types.User{}, err
	}

	return s.repo.Create(ctx, types.User{
		Email:        email,
		Name:         name,
		PasswordHash: password.Hash(plaintext, salt),
		PasswordSalt: salt,
	})
}

// Update rewrites email and name. When plaintext is non-empty the password
// is replaced as well, under a newly generated salt.
func (s *UserService) Update(ctx context.Context, id int, email, name, plaintext string) (types.User, error) {
	user := types.User{
		ID:    id,
		Email: email,
		Name:  name,
	}

	changePassword := plaintext != ""
	if changePassword {
		salt, err := password.GenerateSalt()
		if err != nil {
			return types.User{}, err
		}
		user.PasswordSalt = salt
		user.PasswordHash = password.Hash(plaintext, salt)
	}

	return s.repo.Update(ctx, user, changePassword)
}
