package user

import (
	"context"

	userRepo "trimmr/database/repository/user"
	"trimmr/models"
)

// AuthResponse is returned on successful registration or sign-in.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// UserService defines business logic for user operations.
type UserService interface {
	// RegisterUser validates registration details, creates the user record and
	// signs the user in immediately.
	RegisterUser(ctx context.Context, email, password, name string) (*AuthResponse, error)
	// AuthenticateUser verifies credentials and returns the user and a token.
	AuthenticateUser(ctx context.Context, email, password string) (*AuthResponse, error)
	// GetUserByID retrieves a user (safe view) by its unique ID.
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	// SignOut revokes the user's authentication token.
	SignOut(ctx context.Context, userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
