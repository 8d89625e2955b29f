package repository

import (
	"context"
	"fmt"

	"github.com/planora/backend/internal/model"
)

// UsersRepository persists and loads user rows.
type UsersRepository struct {
	db Querier
}

// NewUsersRepository constructs a UsersRepository on top of a pool.
func NewUsersRepository(db Querier) *UsersRepository {
	return &UsersRepository{db: db}
}

// Create inserts a new user row and fills in the generated identifier
// and creation timestamp. A duplicate email surfaces as a unique
// violation from the store.
func (r *UsersRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		user.Username, user.Email, user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting user: %w", err)
	}

	return user, nil
}

// GetByEmail loads a user by email. A missing row surfaces as a
// wrapped pgx.ErrNoRows.
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE email = $1`

	user := &model.User{}
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("selecting user by email: %w", err)
	}

	return user, nil
}
