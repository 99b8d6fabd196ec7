package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"travelog/internal/models"
	"travelog/internal/utils"
)

type AuditLogRepository interface {
	Create(ctx context.Context, auditLog *models.AuditLog) error
	GetByUserID(ctx context.Context, userID primitive.ObjectID, params *utils.PaginationParams) ([]*models.AuditLog, int64, error)
	ListRecent(ctx context.Context, params *utils.PaginationParams) ([]*models.AuditLog, int64, error)
}
