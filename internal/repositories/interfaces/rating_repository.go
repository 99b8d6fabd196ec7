package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"travelog/internal/models"
)

type RatingRepository interface {
	// Upsert writes the user's score for a destination, creating the
	// document on first submission and updating it afterwards. The
	// filtered upsert keeps the one-rating-per-(destination,user)
	// invariant under concurrent submissions.
	Upsert(ctx context.Context, destinationID, userID primitive.ObjectID, score int) (*models.Rating, error)
	GetByDestinationAndUser(ctx context.Context, destinationID, userID primitive.ObjectID) (*models.Rating, error)
	ListByDestination(ctx context.Context, destinationID primitive.ObjectID) ([]*models.Rating, error)
	ListAll(ctx context.Context) ([]*models.Rating, error)
	Count(ctx context.Context) (int64, error)
}
