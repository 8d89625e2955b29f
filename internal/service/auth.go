package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/planora/backend/internal/errs"
	"github.com/planora/backend/internal/model"
	"github.com/planora/backend/internal/sqlerr"
)

// BcryptCost is the work factor for password hashing. 12 keeps hashing
// time reasonable while staying ahead of the library default.
const BcryptCost = 12

// loginFailedMessage is intentionally the same for unknown emails and
// wrong passwords so responses do not reveal which accounts exist.
const loginFailedMessage = "Invalid email or password"

// UsersRepository is the persistence surface AuthService needs.
type UsersRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// AuthService handles registration and login.
type AuthService struct {
	users UsersRepository
	log   *zerolog.Logger
}

// NewAuthService constructs an AuthService.
func NewAuthService(users UsersRepository, log *zerolog.Logger) *AuthService {
	return &AuthService{
		users: users,
		log:   log,
	}
}

// Register hashes the password and creates a new user.
//
// An email that is already registered yields a 409 Conflict without
// mutating state. The existence check is read-then-write; the unique
// index on email catches the race two concurrent registrations would
// otherwise win together, and that store error also maps to 409.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to hash password")
		return nil, errs.NewInternalServerError("User registration failed", "")
	}

	_, err = s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil, errs.NewConflictError("Email already registered", nil)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, sqlerr.HandleError(err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if sqlErr := sqlerr.HandleError(err); sqlErr != nil {
			return nil, sqlErr
		}
		return nil, err
	}

	s.log.Info().Int64("user_id", created.ID).Msg("user registered")

	return created, nil
}

// Login verifies the credentials and returns the matching user.
//
// Both an unknown email and a wrong password yield the same 401; the
// status code never distinguishes the two cases.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewUnauthorizedError(loginFailedMessage)
		}
		return nil, sqlerr.HandleError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errs.NewUnauthorizedError(loginFailedMessage)
	}

	s.log.Info().Int64("user_id", user.ID).Msg("user logged in")

	return user, nil
}
