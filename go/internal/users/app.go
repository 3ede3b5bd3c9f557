package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/mcdev12/gridiron/go/internal/models"
	"github.com/mcdev12/gridiron/go/internal/sqlutil"
	"github.com/mcdev12/gridiron/go/internal/validation"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// UsersRepository defines what the app layer needs from the repository
type UsersRepository interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	SearchUsers(ctx context.Context, search string) ([]models.User, error)
	UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// maxPasswordBytes is the longest input bcrypt will hash
const maxPasswordBytes = 72

// Hasher turns plaintext passwords into salted one-way hashes and checks them
type Hasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// BcryptHasher is the production Hasher
type BcryptHasher struct {
	Cost int
}

// Hash returns the bcrypt hash of password
func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare returns nil when password matches hash
func (h BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// App handles credential and profile business logic
type App struct {
	repo   UsersRepository
	hasher Hasher
}

// NewApp creates a new users App
func NewApp(repo UsersRepository, hasher Hasher) *App {
	return &App{
		repo:   repo,
		hasher: hasher,
	}
}

// Register validates and hashes the credentials and inserts the user.
// Uniqueness is left to the store: a duplicate username or email comes back as
// ErrConflict and the surrounding scope is marked rollback-only.
func (a *App) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	if err := validation.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if len(req.Password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: password is longer than %d bytes", ErrValidation, maxPasswordBytes)
	}

	hashed, err := a.hasher.Hash(req.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.repo.CreateUser(ctx, CreateUserRequest{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashed,
		ImageURL:     sqlutil.StringOr(req.ImageURL, models.DefaultImageURL),
	})
	if err != nil {
		if errors.Is(err, ErrConflict) {
			sqlutil.MarkRollback(ctx)
		}
		return nil, err
	}

	log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("registered user")
	return user, nil
}

// Authenticate returns the user whose username and password match.
// Unknown usernames and wrong passwords both yield ErrNotAuthenticated.
func (a *App) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := a.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	if err := a.hasher.Compare(user.Password, password); err != nil {
		return nil, ErrNotAuthenticated
	}
	return user, nil
}

// GetUser retrieves a user by ID
func (a *App) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := a.repo.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// ListUsers returns every user, or those whose username contains search
func (a *App) ListUsers(ctx context.Context, search string) ([]models.User, error) {
	var (
		users []models.User
		err   error
	)
	if search == "" {
		users, err = a.repo.ListUsers(ctx)
	} else {
		users, err = a.repo.SearchUsers(ctx, search)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateProfile re-checks the current password, then updates username, email and image
func (a *App) UpdateProfile(ctx context.Context, id int64, req UpdateProfileRequest) (*models.User, error) {
	if err := validation.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	existing, err := a.repo.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if _, err := a.Authenticate(ctx, existing.Username, req.Password); err != nil {
		return nil, err
	}

	user, err := a.repo.UpdateUser(ctx, id, UpdateUserRequest{
		Username: req.Username,
		Email:    req.Email,
		ImageURL: sqlutil.StringOr(req.ImageURL, models.DefaultImageURL),
	})
	if err != nil {
		if errors.Is(err, ErrConflict) {
			sqlutil.MarkRollback(ctx)
		}
		return nil, err
	}

	log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("updated user profile")
	return user, nil
}

// DeleteUser deletes a user; their favorites cascade, teams and players stay
func (a *App) DeleteUser(ctx context.Context, id int64) error {
	if err := a.repo.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	log.Info().Int64("user_id", id).Msg("deleted user")
	return nil
}
