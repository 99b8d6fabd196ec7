package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"travelog/internal/models"
)

// PostFilter narrows post listings; zero values mean "no filter".
type PostFilter struct {
	AuthorID      primitive.ObjectID
	DestinationID primitive.ObjectID
	PublishedOnly bool
	Limit         int
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	// DeleteWithComments removes the post and every comment referencing
	// it as one atomic unit.
	DeleteWithComments(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, filter PostFilter) ([]*models.Post, error)
	ListAllPublished(ctx context.Context) ([]*models.Post, error)
	Count(ctx context.Context) (int64, error)
}
