package services

import (
	"context"
	"errors"
	"strings"

	"github.com/clubtrack/backend/internal/auth"
	"github.com/clubtrack/backend/internal/models"
	"github.com/clubtrack/backend/internal/repositories"
	"go.uber.org/zap"
)

// ErrInvalidCredentials is returned on login when the email is unknown or
// the password does not match. The two causes are deliberately
// indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository is the interface that wraps methods for users table data access
type UserRepository interface {
	// Method Create inserts a new user into the database.
	//
	// "user" parameter is used to create a new user; its ID is set on success.
	//
	// If the email is already taken, repositories.ErrDuplicateEmail is returned.
	Create(ctx context.Context, user *models.User) error
	// Method GetByEmail retrieves a user by email.
	//
	// If no user with such email exists, repositories.ErrUserNotFound is returned together with "nil" value.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// TokenRepository is the interface that wraps methods for user_tokens table data access
type TokenRepository interface {
	// Method Create inserts a new session token into the database.
	Create(ctx context.Context, userToken *models.UserToken) error
	// Method GetByToken retrieves a session token row by token string.
	//
	// If no such token exists, repositories.ErrTokenNotFound is returned together with "nil" value.
	GetByToken(ctx context.Context, token string) (*models.UserToken, error)
}

// authService implements registration and login
type authService struct {
	userRepo  UserRepository
	tokenRepo TokenRepository
	logger    *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, tokenRepo TokenRepository, logger *zap.Logger) *authService {
	return &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		logger:    logger,
	}
}

// Register creates a new user account with the default candidate role.
// The email is normalized before storage so lookups at login are exact.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) error {
	user := &models.User{
		FullName:     strings.TrimSpace(req.FullName),
		BirthDate:    strings.TrimSpace(req.BirthDate),
		Phone:        strings.TrimSpace(req.Phone),
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: auth.HashPassword(req.Password),
		Role:         models.RoleCandidate,
		Approved:     false,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info("user registered", zap.Int("userID", user.ID))
	return nil
}

// Login authenticates a user and issues a new session token. Multiple live
// tokens per user are allowed; logging in never invalidates earlier ones.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token := auth.NewToken()
	if err := s.tokenRepo.Create(ctx, &models.UserToken{Token: token, UserID: user.ID}); err != nil {
		s.logger.Error("failed to persist session token", zap.Int("userID", user.ID), zap.Error(err))
		return "", err
	}

	return token, nil
}
