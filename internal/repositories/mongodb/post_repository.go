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

type postRepository struct {
	db         *mongo.Database
	collection *mongo.Collection
	comments   *mongo.Collection
}

func NewPostRepository(db *mongo.Database) interfaces.PostRepository {
	return &postRepository{
		db:         db,
		collection: db.Collection("posts"),
		comments:   db.Collection("comments"),
	}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, post)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var post models.Post
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

func (r *postRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteWithComments removes the post and all of its comments in one
// session transaction so a crash mid-deletion cannot leave orphans.
func (r *postRepository) DeleteWithComments(ctx context.Context, id primitive.ObjectID) error {
	session, err := r.db.Client().StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		result, err := r.collection.DeleteOne(sessCtx, bson.M{"_id": id})
		if err != nil {
			return nil, err
		}
		if result.DeletedCount == 0 {
			return nil, ErrNotFound
		}

		if _, err := r.comments.DeleteMany(sessCtx, bson.M{"post_id": id}); err != nil {
			return nil, err
		}

		return nil, nil
	})
	if err != nil {
		if err == ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete post with comments: %w", err)
	}

	return nil
}

func (r *postRepository) List(ctx context.Context, filter interfaces.PostFilter) ([]*models.Post, error) {
	query := bson.M{}
	if !filter.AuthorID.IsZero() {
		query["author_id"] = filter.AuthorID
	}
	if !filter.DestinationID.IsZero() {
		query["destination_id"] = filter.DestinationID
	}
	if filter.PublishedOnly {
		query["is_published"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []*models.Post
	for cursor.Next(ctx) {
		var post models.Post
		if err := cursor.Decode(&post); err != nil {
			return nil, fmt.Errorf("failed to decode post: %w", err)
		}
		posts = append(posts, &post)
	}

	return posts, nil
}

func (r *postRepository) ListAllPublished(ctx context.Context) ([]*models.Post, error) {
	return r.List(ctx, interfaces.PostFilter{PublishedOnly: true})
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
