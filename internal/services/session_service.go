package services

import (
	"context"
	"errors"

	"github.com/clubtrack/backend/internal/models"
	"github.com/clubtrack/backend/internal/repositories"
)

// SessionUserRepository is the interface that wraps the user lookup needed
// to resolve a session
type SessionUserRepository interface {
	// Method GetByID retrieves a user by ID.
	//
	// If no user with such ID exists, repositories.ErrUserNotFound is returned together with "nil" value.
	GetByID(ctx context.Context, userID int) (*models.User, error)
}

// sessionService resolves opaque bearer tokens to users
type sessionService struct {
	tokenRepo TokenRepository
	userRepo  SessionUserRepository
}

// NewSessionService creates a new session service
func NewSessionService(tokenRepo TokenRepository, userRepo SessionUserRepository) *sessionService {
	return &sessionService{
		tokenRepo: tokenRepo,
		userRepo:  userRepo,
	}
}

// Resolve maps a token to the full user record that owns it. An unknown
// token is not an error: it resolves to (nil, nil) and the caller treats
// the request as unauthenticated.
func (s *sessionService) Resolve(ctx context.Context, token string) (*models.User, error) {
	userToken, err := s.tokenRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repositories.ErrTokenNotFound) {
			return nil, nil
		}
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userToken.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}
