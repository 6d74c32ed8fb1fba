package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/userportal/webapp/types"
)

// Postgres error code for unique_violation.
const pqUniqueViolation = "23505"

// UserRepository handles persistence for users.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (types.User, error) {
	const query = `
		SELECT id, email, name, password_hash, password_salt, created_at, updated_at
		FROM users
		WHERE id = $1`
	var user types.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.PasswordSalt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.User{}, ErrNotFound
		}
		return types.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (types.User, error) {
	const query = `
		SELECT id, email, name, password_hash, password_salt, created_at, updated_at
		FROM users
		WHERE email = $1`
	var user types.User
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.PasswordSalt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.User{}, ErrNotFound
		}
		return types.User{}, err
	}
	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user types.User) (types.User, error) {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	const query = `
		INSERT INTO users (email, name, password_hash, password_salt, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		user.Email,
		user.Name,
		user.PasswordHash,
		user.PasswordSalt,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID); err != nil {
		if isUniqueViolation(err) {
			return types.User{}, ErrDuplicateEmail
		}
		return types.User{}, err
	}
	return user, nil
}

// Update writes email and name unconditionally. The password hash and salt
// are written only when changePassword is set.
func (r *UserRepository) Update(ctx context.Context, user types.User, changePassword bool) (types.User, error) {
	user.UpdatedAt = time.Now()

	var (
		result sql.Result
		err    error
	)
	if changePassword {
		const query = `
			UPDATE users
			SET email = $1,
				name = $2,
				password_hash = $3,
				password_salt = $4,
				updated_at = $5
			WHERE id = $6`
		result, err = r.db.ExecContext(
			ctx,
			query,
			user.Email,
			user.Name,
			user.PasswordHash,
			user.PasswordSalt,
			user.UpdatedAt,
			user.ID,
		)
	} else {
		const query = `
			UPDATE users
			SET email = $1,
				name = $2,
				updated_at = $3
			WHERE id = $4`
		result, err = r.db.ExecContext(
			ctx,
			query,
			user.Email,
			user.Name,
			user.UpdatedAt,
			user.ID,
		)
	}
	if err != nil {
		if isUniqueViolation(err) {
			return types.User{}, ErrDuplicateEmail
		}
		return types.User{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.User{}, err
	}
	if affected == 0 {
		return types.User{}, ErrNotFound
	}
	return user, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	const query = `SELECT COUNT(*) FROM users WHERE email = $1`
	var count int
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}
