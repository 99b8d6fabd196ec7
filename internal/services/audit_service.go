package services

import (
	"context"
	"time"

	"travelog/internal/models"
	"travelog/internal/repositories/interfaces"
	"travelog/internal/security"
	"travelog/pkg/logger"
)

// AuditService records security-relevant events. Recording is
// fire-and-forget: a denied request is answered immediately and the
// audit write happens in the background, never blocking or failing the
// request it describes.
type AuditService interface {
	RecordAccessDenied(caller security.Principal, resource, resourceID, ipAddress string)
	RecordUserBlocked(admin security.Principal, targetID, ipAddress string, blocked bool)
}

type auditService struct {
	auditLogRepo interfaces.AuditLogRepository
	logger       *logger.Logger
}

func NewAuditService(auditLogRepo interfaces.AuditLogRepository, log *logger.Logger) AuditService {
	return &auditService{
		auditLogRepo: auditLogRepo,
		logger:       log,
	}
}

func (s *auditService) RecordAccessDenied(caller security.Principal, resource, resourceID, ipAddress string) {
	s.logger.LogSecurityEvent("access_denied", caller.ID, map[string]interface{}{
		"resource":    resource,
		"resource_id": resourceID,
		"ip_address":  ipAddress,
	})

	userID := caller.ID
	s.record(&models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionAccessDenied,
		Resource:   resource,
		ResourceID: resourceID,
		IPAddress:  ipAddress,
	})
}

func (s *auditService) RecordUserBlocked(admin security.Principal, targetID, ipAddress string, blocked bool) {
	action := models.AuditActionUserBlocked
	if !blocked {
		action = models.AuditActionUserUnblock
	}

	adminID := admin.ID
	s.record(&models.AuditLog{
		UserID:     &adminID,
		Action:     action,
		Resource:   "user",
		ResourceID: targetID,
		IPAddress:  ipAddress,
	})
}

func (s *auditService) record(entry *models.AuditLog) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.auditLogRepo.Create(ctx, entry); err != nil {
			s.logger.WithError(err).Error("failed to persist audit log entry")
		}
	}()
}
