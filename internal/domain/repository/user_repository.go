// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"afritrade/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrUserAlreadyExists is returned when a (role, email) key is already taken.
var ErrUserAlreadyExists = errors.New("user already exists")

// UserRepository defines the standard operations for role-scoped user persistence.
// Each role owns an independent collection keyed by email; the repository never
// enforces uniqueness across roles.
type UserRepository interface {
	// Create persists a new user into its role collection, keyed by email.
	// Returns ErrUserAlreadyExists if the (role, email) key is taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the user stored at (role, email).
	// Returns ErrUserNotFound when the key is absent.
	FindByEmail(ctx context.Context, role entity.Role, email string) (*entity.User, error)

	// FindByGeneratedID scans one role collection for a matching generatedId
	// field. This is an equality query, not a key fetch.
	// Returns ErrUserNotFound when no document matches.
	FindByGeneratedID(ctx context.Context, role entity.Role, id uuid.UUID) (*entity.User, error)
}
