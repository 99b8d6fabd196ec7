package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"travelog/internal/models"
	"travelog/internal/repositories/interfaces"
)

type ratingRepository struct {
	collection *mongo.Collection
}

func NewRatingRepository(db *mongo.Database) interfaces.RatingRepository {
	return &ratingRepository{
		collection: db.Collection("ratings"),
	}
}

// Upsert writes the score against the (destination_id, user_id) pair in a
// single filtered update, so concurrent duplicate submissions collapse
// into one document instead of racing a read-then-insert sequence.
func (r *ratingRepository) Upsert(ctx context.Context, destinationID, userID primitive.ObjectID, score int) (*models.Rating, error) {
	now := time.Now()
	filter := bson.M{"destination_id": destinationID, "user_id": userID}
	update := bson.M{
		"$set": bson.M{
			"score":      score,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"_id":            primitive.NewObjectID(),
			"destination_id": destinationID,
			"user_id":        userID,
			"created_at":     now,
		},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var rating models.Rating
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&rating)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert rating: %w", err)
	}

	return &rating, nil
}

func (r *ratingRepository) GetByDestinationAndUser(ctx context.Context, destinationID, userID primitive.ObjectID) (*models.Rating, error) {
	var rating models.Rating
	err := r.collection.FindOne(ctx, bson.M{"destination_id": destinationID, "user_id": userID}).Decode(&rating)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}

	return &rating, nil
}

func (r *ratingRepository) ListByDestination(ctx context.Context, destinationID primitive.ObjectID) ([]*models.Rating, error) {
	return r.list(ctx, bson.M{"destination_id": destinationID})
}

func (r *ratingRepository) ListAll(ctx context.Context) ([]*models.Rating, error) {
	return r.list(ctx, bson.M{})
}

func (r *ratingRepository) list(ctx context.Context, filter bson.M) ([]*models.Rating, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	defer cursor.Close(ctx)

	var ratings []*models.Rating
	for cursor.Next(ctx) {
		var rating models.Rating
		if err := cursor.Decode(&rating); err != nil {
			return nil, fmt.Errorf("failed to decode rating: %w", err)
		}
		ratings = append(ratings, &rating)
	}

	return ratings, nil
}

func (r *ratingRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
