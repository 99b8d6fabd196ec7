package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"travelog/internal/models"
)

type DestinationRepository interface {
	Create(ctx context.Context, destination *models.Destination) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Destination, error)
	GetByNameAndCountry(ctx context.Context, name, country string) (*models.Destination, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, country string) ([]*models.Destination, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.Destination, error)
	Count(ctx context.Context) (int64, error)
}
