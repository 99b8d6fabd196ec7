package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"travelog/internal/models"
	"travelog/internal/repositories/interfaces"
	"travelog/internal/repositories/mongodb"
	"travelog/internal/security"
	"travelog/internal/utils"
	"travelog/pkg/logger"
)

type AdminService interface {
	ListUsers(ctx context.Context, caller security.Principal, params *utils.PaginationParams) ([]*models.User, int64, error)
	SetBlocked(ctx context.Context, caller security.Principal, targetID, ipAddress string, blocked bool) (*models.User, error)
}

type adminService struct {
	userRepo     interfaces.UserRepository
	auditService AuditService
	logger       *logger.Logger
}

func NewAdminService(userRepo interfaces.UserRepository, auditService AuditService, log *logger.Logger) AdminService {
	return &adminService{
		userRepo:     userRepo,
		auditService: auditService,
		logger:       log,
	}
}

func (s *adminService) ListUsers(ctx context.Context, caller security.Principal, params *utils.PaginationParams) ([]*models.User, int64, error) {
	if caller.Role != models.RoleAdmin {
		return nil, 0, NewAuthorizationError("You do not have permission to list users")
	}

	return s.userRepo.List(ctx, params)
}

// SetBlocked blocks or unblocks a user. Admins can never block
// themselves or other admins; those refusals are audited like any
// other denial.
func (s *adminService) SetBlocked(ctx context.Context, caller security.Principal, targetID, ipAddress string, blocked bool) (*models.User, error) {
	userID, err := primitive.ObjectIDFromHex(targetID)
	if err != nil {
		return nil, NewNotFoundError(utils.ResourceUser)
	}

	if caller.Role != models.RoleAdmin {
		s.auditService.RecordAccessDenied(caller, utils.ResourceUser, targetID, ipAddress)
		return nil, NewAuthorizationError("You do not have permission to block users")
	}

	target, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, NewNotFoundError(utils.ResourceUser)
		}
		return nil, err
	}

	if target.ID == caller.ID {
		s.auditService.RecordAccessDenied(caller, utils.ResourceUser, targetID, ipAddress)
		return nil, NewAuthorizationError("You cannot block your own account")
	}
	if target.Role == models.RoleAdmin {
		s.auditService.RecordAccessDenied(caller, utils.ResourceUser, targetID, ipAddress)
		return nil, NewAuthorizationError("You cannot block another admin")
	}

	updates := map[string]interface{}{
		"is_blocked": blocked,
		"updated_at": time.Now(),
	}
	if err := s.userRepo.Update(ctx, userID, updates); err != nil {
		return nil, err
	}

	s.auditService.RecordUserBlocked(caller, targetID, ipAddress, blocked)

	return s.userRepo.GetByID(ctx, userID)
}
