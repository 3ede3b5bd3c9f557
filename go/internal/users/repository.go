package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mcdev12/gridiron/go/internal/models"
	"github.com/mcdev12/gridiron/go/internal/sqlutil"
	"github.com/mcdev12/gridiron/go/internal/users/db"
)

// Repository implements user data access operations
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new users repository
func NewRepository(database *sql.DB) *Repository {
	return &Repository{
		db: database,
	}
}

// queries binds to the request's transaction scope when ctx carries one
func (r *Repository) queries(ctx context.Context) *db.Queries {
	return db.New(sqlutil.Conn(ctx, r.db))
}

// CreateUser inserts a new user. A taken username or email surfaces as ErrConflict.
func (r *Repository) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	user, err := r.queries(ctx).CreateUser(ctx, db.CreateUserParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.PasswordHash,
		ImageUrl: req.ImageURL,
	})
	if err != nil {
		if sqlutil.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w (%s)", ErrConflict, sqlutil.ConstraintName(err))
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return r.dbUserToModel(user), nil
}

// GetUser retrieves a user by ID
func (r *Repository) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := r.queries(ctx).GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.dbUserToModel(user), nil
}

// GetUserByUsername retrieves a user by exact username
func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := r.queries(ctx).GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return r.dbUserToModel(user), nil
}

// ListUsers retrieves all users
func (r *Repository) ListUsers(ctx context.Context) ([]models.User, error) {
	dbUsers, err := r.queries(ctx).ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return r.dbUsersToModels(dbUsers), nil
}

// SearchUsers retrieves users whose username contains search (case-sensitive)
func (r *Repository) SearchUsers(ctx context.Context, search string) ([]models.User, error) {
	dbUsers, err := r.queries(ctx).SearchUsers(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return r.dbUsersToModels(dbUsers), nil
}

// UpdateUser updates the editable profile columns
func (r *Repository) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (*models.User, error) {
	user, err := r.queries(ctx).UpdateUser(ctx, db.UpdateUserParams{
		ID:       id,
		Username: req.Username,
		Email:    req.Email,
		ImageUrl: req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		if sqlutil.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w (%s)", ErrConflict, sqlutil.ConstraintName(err))
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return r.dbUserToModel(user), nil
}

// DeleteUser deletes a user by ID; favorite rows go with it via ON DELETE CASCADE
func (r *Repository) DeleteUser(ctx context.Context, id int64) error {
	n, err := r.queries(ctx).DeleteUser(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// dbUserToModel converts a database user to domain model
func (r *Repository) dbUserToModel(dbUser db.User) *models.User {
	return &models.User{
		ID:        dbUser.ID,
		Username:  dbUser.Username,
		Email:     dbUser.Email,
		Password:  dbUser.Password,
		ImageURL:  dbUser.ImageUrl,
		CreatedAt: dbUser.CreatedAt,
	}
}

func (r *Repository) dbUsersToModels(dbUsers []db.User) []models.User {
	users := make([]models.User, len(dbUsers))
	for i, u := range dbUsers {
		users[i] = *r.dbUserToModel(u)
	}
	return users
}
