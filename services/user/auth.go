// File: services/user/auth.go
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"trimmr/models"
	"trimmr/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 24 * time.Hour

// RegisterUser validates registration details, creates the user record and
// signs the user in immediately.
func (s *DefaultUserService) RegisterUser(ctx context.Context, email, password, name string) (*AuthResponse, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("a valid email is required")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.Repo.Create(ctx, models.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("user registered", zap.String("userID", id))
	return s.issueToken(ctx, id, email, name)
}

// AuthenticateUser verifies credentials and returns the user and a token.
func (s *DefaultUserService) AuthenticateUser(ctx context.Context, email, password string) (*AuthResponse, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	userRec, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueToken(ctx, userRec.ID, userRec.Email, userRec.Name)
}

// issueToken mints a JWT, stores its hash on the user record and primes the
// auth cache so middleware can validate without a DB round trip.
func (s *DefaultUserService) issueToken(ctx context.Context, userID, email, name string) (*AuthResponse, error) {
	token, err := utils.GenerateToken(userID, email, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateTokenHash(ctx, userID, tokenHash); err != nil {
		return nil, fmt.Errorf("failed to persist token: %w", err)
	}

	authCache := utils.GetAuthCacheClient()
	if err := authCache.Set(ctx, utils.AuthCachePrefix+userID, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to prime auth cache", zap.String("userID", userID), zap.Error(err))
	}

	return &AuthResponse{
		User:  &models.User{ID: userID, Email: email, Name: name},
		Token: token,
	}, nil
}

// GetUserByID retrieves a user (safe view) by its unique ID.
func (s *DefaultUserService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	usr, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, fmt.Errorf("user not found")
	}
	return usr, nil
}

// SignOut revokes the user's authentication token.
func (s *DefaultUserService) SignOut(ctx context.Context, userID string) error {
	if err := s.Repo.UpdateTokenHash(ctx, userID, ""); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	authCache := utils.GetAuthCacheClient()
	if err := authCache.Del(ctx, utils.AuthCachePrefix+userID).Err(); err != nil {
		utils.GetLogger().Warn("failed to clear auth cache", zap.String("userID", userID), zap.Error(err))
	}
	return nil
}
