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

type destinationRepository struct {
	collection *mongo.Collection
}

func NewDestinationRepository(db *mongo.Database) interfaces.DestinationRepository {
	return &destinationRepository{
		collection: db.Collection("destinations"),
	}
}

func (r *destinationRepository) Create(ctx context.Context, destination *models.Destination) error {
	destination.ID = primitive.NewObjectID()
	destination.CreatedAt = time.Now()
	destination.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, destination)
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}

	return nil
}

func (r *destinationRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Destination, error) {
	var destination models.Destination
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&destination)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get destination: %w", err)
	}

	return &destination, nil
}

func (r *destinationRepository) GetByNameAndCountry(ctx context.Context, name, country string) (*models.Destination, error) {
	var destination models.Destination
	err := r.collection.FindOne(ctx, bson.M{"name": name, "country": country}).Decode(&destination)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get destination by name: %w", err)
	}

	return &destination, nil
}

func (r *destinationRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update destination: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *destinationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete destination: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *destinationRepository) List(ctx context.Context, country string) ([]*models.Destination, error) {
	filter := bson.M{}
	if country != "" {
		filter["country"] = country
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list destinations: %w", err)
	}
	defer cursor.Close(ctx)

	var destinations []*models.Destination
	for cursor.Next(ctx) {
		var destination models.Destination
		if err := cursor.Decode(&destination); err != nil {
			return nil, fmt.Errorf("failed to decode destination: %w", err)
		}
		destinations = append(destinations, &destination)
	}

	return destinations, nil
}

func (r *destinationRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.Destination, error) {
	result := make(map[primitive.ObjectID]*models.Destination, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to get destinations by ids: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var destination models.Destination
		if err := cursor.Decode(&destination); err != nil {
			return nil, fmt.Errorf("failed to decode destination: %w", err)
		}
		result[destination.ID] = &destination
	}

	return result, nil
}

func (r *destinationRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
