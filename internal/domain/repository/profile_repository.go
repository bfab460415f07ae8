// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"compass/internal/domain/entity"
)

// ErrProfileNotFound is a domain-specific error returned when no profile
// matches the queried email.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the standard operations for profile persistence.
// The application layer will depend on this interface, not the concrete implementation.
type ProfileRepository interface {
	// FindByEmail retrieves a single profile by email address, matching
	// ignoring letter case.
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)

	// Create persists a new profile and assigns its numeric identifier.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update modifies an existing profile in the storage.
	Update(ctx context.Context, profile *entity.Profile) error

	// Note: the system defines no delete operation.
}
