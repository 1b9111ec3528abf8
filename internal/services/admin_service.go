package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/clubtrack/backend/internal/models"
	"go.uber.org/zap"
)

// ErrInvalidRole is returned when a role update names a role outside the
// candidate/admin/chairman set
var ErrInvalidRole = errors.New("invalid role")

// AdminUserRepository is the interface that wraps methods for users table
// data access needed by admin operations
type AdminUserRepository interface {
	// Method GetAll retrieves every user as a listing projection, password hash excluded.
	GetAll(ctx context.Context) ([]models.UserListItem, error)
	// Method UpdateRoleApproved updates role and/or approved; nil fields are left unchanged.
	UpdateRoleApproved(ctx context.Context, userID int, role *models.Role, approved *bool) error
}

// adminService implements user administration
type adminService struct {
	userRepo AdminUserRepository
	logger   *zap.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(userRepo AdminUserRepository, logger *zap.Logger) *adminService {
	return &adminService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// ListUsers retrieves all users for the admin listing
func (s *adminService) ListUsers(ctx context.Context) ([]models.UserListItem, error) {
	return s.userRepo.GetAll(ctx)
}

// UpdateUserRole applies a partial role/approved update to a user.
// Fields absent from the request stay as they were. Concurrent updates to
// the same user are last-write-wins.
func (s *adminService) UpdateUserRole(ctx context.Context, userID int, req *models.RoleUpdateRequest) error {
	if req.Role != nil && !req.Role.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidRole, *req.Role)
	}

	if err := s.userRepo.UpdateRoleApproved(ctx, userID, req.Role, req.Approved); err != nil {
		return err
	}

	s.logger.Info("user role updated", zap.Int("userID", userID))
	return nil
}
