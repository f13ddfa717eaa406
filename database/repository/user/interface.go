package userRepo

import (
	"context"

	"trimmr/models"
)

// UserRepository provides access to the users collection.
type UserRepository interface {
	// Create inserts a new user record and returns its ID.
	Create(ctx context.Context, user models.User) (string, error)
	// GetByID returns a user (safe view, no credential hashes) by ID,
	// or nil when no such user exists.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail returns the full user record by email, or nil when no such
	// user exists. The result includes the password hash for verification.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// UpdateTokenHash stores the hash of the user's current auth token;
	// an empty hash revokes it.
	UpdateTokenHash(ctx context.Context, id, tokenHash string) error
	// GetTokenHash returns the stored hash of the user's current auth token.
	GetTokenHash(ctx context.Context, id string) (string, error)
}
