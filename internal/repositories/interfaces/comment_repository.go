package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"travelog/internal/models"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	// ListByPost returns a post's comments newest first; hidden comments
	// are included only when includeHidden is set (moderators).
	ListByPost(ctx context.Context, postID primitive.ObjectID, includeHidden bool) ([]*models.Comment, error)
	Count(ctx context.Context) (int64, error)
}
