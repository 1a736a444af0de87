// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"notely/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user. The store assigns the ID and creation
	// timestamp and writes them back onto the entity. Violating the
	// username or email uniqueness invariant is reported as a domain error.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsernameOrEmail retrieves a user whose username OR email matches
	// the identifier. Login accepts either in the same field.
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)
}
