package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"travelog/internal/models"
	"travelog/internal/repositories/interfaces"
	"travelog/internal/repositories/mongodb"
	"travelog/internal/security"
	"travelog/internal/utils"
	"travelog/pkg/logger"
)

// In-memory repository fakes backing the service tests. They honor the
// same not-found semantics as the Mongo implementations.

func testLogger() *logger.Logger {
	log, err := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Format: "text", Output: "stdout"})
	if err != nil {
		panic(err)
	}
	return log
}

type fakeUserRepo struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*models.User)}
}

func (f *fakeUserRepo) add(user *models.User) *models.User {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users[user.ID] = user
	return user
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, mongodb.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, mongodb.ErrNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	user, ok := f.users[id]
	if !ok {
		return mongodb.ErrNotFound
	}
	for key, value := range updates {
		switch key {
		case "display_name":
			user.DisplayName = value.(string)
		case "bio":
			user.Bio = value.(string)
		case "profile_photo_url":
			user.ProfilePhotoURL = value.(string)
		case "is_blocked":
			user.IsBlocked = value.(bool)
		case "updated_at":
			user.UpdatedAt = value.(time.Time)
		}
	}
	return nil
}

func (f *fakeUserRepo) List(_ context.Context, _ *utils.PaginationParams) ([]*models.User, int64, error) {
	users := make([]*models.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, user)
	}
	return users, int64(len(users)), nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) CountByRole(_ context.Context) (map[models.UserRole]int64, error) {
	counts := make(map[models.UserRole]int64)
	for _, user := range f.users {
		counts[user.Role]++
	}
	return counts, nil
}

type fakeDestinationRepo struct {
	destinations map[primitive.ObjectID]*models.Destination
}

func newFakeDestinationRepo() *fakeDestinationRepo {
	return &fakeDestinationRepo{destinations: make(map[primitive.ObjectID]*models.Destination)}
}

func (f *fakeDestinationRepo) add(destination *models.Destination) *models.Destination {
	if destination.ID.IsZero() {
		destination.ID = primitive.NewObjectID()
	}
	f.destinations[destination.ID] = destination
	return destination
}

func (f *fakeDestinationRepo) Create(_ context.Context, destination *models.Destination) error {
	destination.ID = primitive.NewObjectID()
	destination.CreatedAt = time.Now()
	destination.UpdatedAt = destination.CreatedAt
	f.destinations[destination.ID] = destination
	return nil
}

func (f *fakeDestinationRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Destination, error) {
	destination, ok := f.destinations[id]
	if !ok {
		return nil, mongodb.ErrNotFound
	}
	return destination, nil
}

func (f *fakeDestinationRepo) GetByNameAndCountry(_ context.Context, name, country string) (*models.Destination, error) {
	for _, destination := range f.destinations {
		if destination.Name == name && destination.Country == country {
			return destination, nil
		}
	}
	return nil, mongodb.ErrNotFound
}

func (f *fakeDestinationRepo) Update(_ context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	destination, ok := f.destinations[id]
	if !ok {
		return mongodb.ErrNotFound
	}
	for key, value := range updates {
		switch key {
		case "name":
			destination.Name = value.(string)
		case "country":
			destination.Country = value.(string)
		case "description":
			destination.Description = value.(string)
		case "average_rating":
			destination.AverageRating = value.(float64)
		case "updated_at":
			destination.UpdatedAt = value.(time.Time)
		}
	}
	return nil
}

func (f *fakeDestinationRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(f.destinations, id)
	return nil
}

func (f *fakeDestinationRepo) List(_ context.Context, country string) ([]*models.Destination, error) {
	destinations := make([]*models.Destination, 0, len(f.destinations))
	for _, destination := range f.destinations {
		if country == "" || destination.Country == country {
			destinations = append(destinations, destination)
		}
	}
	return destinations, nil
}

func (f *fakeDestinationRepo) GetByIDs(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.Destination, error) {
	found := make(map[primitive.ObjectID]*models.Destination)
	for _, id := range ids {
		if destination, ok := f.destinations[id]; ok {
			found[id] = destination
		}
	}
	return found, nil
}

func (f *fakeDestinationRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.destinations)), nil
}

type fakePostRepo struct {
	posts    map[primitive.ObjectID]*models.Post
	comments *fakeCommentRepo
}

func newFakePostRepo(comments *fakeCommentRepo) *fakePostRepo {
	return &fakePostRepo{posts: make(map[primitive.ObjectID]*models.Post), comments: comments}
}

func (f *fakePostRepo) add(post *models.Post) *models.Post {
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	f.posts[post.ID] = post
	return post
}

func (f *fakePostRepo) Create(_ context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, mongodb.ErrNotFound
	}
	return post, nil
}

func (f *fakePostRepo) Update(_ context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	post, ok := f.posts[id]
	if !ok {
		return mongodb.ErrNotFound
	}
	for key, value := range updates {
		switch key {
		case "title":
			post.Title = value.(string)
		case "content":
			post.Content = value.(string)
		case "destination_id":
			post.DestinationID = value.(primitive.ObjectID)
		case "travel_date":
			post.TravelDate = value.(time.Time)
		case "updated_at":
			post.UpdatedAt = value.(time.Time)
		}
	}
	return nil
}

func (f *fakePostRepo) DeleteWithComments(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.posts[id]; !ok {
		return mongodb.ErrNotFound
	}
	delete(f.posts, id)
	if f.comments != nil {
		for commentID, comment := range f.comments.comments {
			if comment.PostID == id {
				delete(f.comments.comments, commentID)
			}
		}
	}
	return nil
}

func (f *fakePostRepo) List(_ context.Context, filter interfaces.PostFilter) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, len(f.posts))
	for _, post := range f.posts {
		if filter.PublishedOnly && !post.IsPublished {
			continue
		}
		if !filter.AuthorID.IsZero() && post.AuthorID != filter.AuthorID {
			continue
		}
		if !filter.DestinationID.IsZero() && post.DestinationID != filter.DestinationID {
			continue
		}
		posts = append(posts, post)
	}
	if filter.Limit > 0 && len(posts) > filter.Limit {
		posts = posts[:filter.Limit]
	}
	return posts, nil
}

func (f *fakePostRepo) ListAllPublished(_ context.Context) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, len(f.posts))
	for _, post := range f.posts {
		if post.IsPublished {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (f *fakePostRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.posts)), nil
}

type fakeCommentRepo struct {
	comments map[primitive.ObjectID]*models.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[primitive.ObjectID]*models.Comment)}
}

func (f *fakeCommentRepo) add(comment *models.Comment) *models.Comment {
	if comment.ID.IsZero() {
		comment.ID = primitive.NewObjectID()
	}
	f.comments[comment.ID] = comment
	return comment
}

func (f *fakeCommentRepo) Create(_ context.Context, comment *models.Comment) error {
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = comment.CreatedAt
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeCommentRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Comment, error) {
	comment, ok := f.comments[id]
	if !ok {
		return nil, mongodb.ErrNotFound
	}
	return comment, nil
}

func (f *fakeCommentRepo) Update(_ context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	comment, ok := f.comments[id]
	if !ok {
		return mongodb.ErrNotFound
	}
	for key, value := range updates {
		switch key {
		case "content":
			comment.Content = value.(string)
		case "is_hidden":
			comment.IsHidden = value.(bool)
		case "updated_at":
			comment.UpdatedAt = value.(time.Time)
		}
	}
	return nil
}

func (f *fakeCommentRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(f.comments, id)
	return nil
}

func (f *fakeCommentRepo) ListByPost(_ context.Context, postID primitive.ObjectID, includeHidden bool) ([]*models.Comment, error) {
	comments := make([]*models.Comment, 0)
	for _, comment := range f.comments {
		if comment.PostID != postID {
			continue
		}
		if comment.IsHidden && !includeHidden {
			continue
		}
		comments = append(comments, comment)
	}
	return comments, nil
}

func (f *fakeCommentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.comments)), nil
}

type fakeRatingRepo struct {
	ratings map[primitive.ObjectID]*models.Rating
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{ratings: make(map[primitive.ObjectID]*models.Rating)}
}

func (f *fakeRatingRepo) Upsert(_ context.Context, destinationID, userID primitive.ObjectID, score int) (*models.Rating, error) {
	for _, rating := range f.ratings {
		if rating.DestinationID == destinationID && rating.UserID == userID {
			rating.Score = score
			rating.UpdatedAt = time.Now()
			return rating, nil
		}
	}
	rating := &models.Rating{
		ID:            primitive.NewObjectID(),
		DestinationID: destinationID,
		UserID:        userID,
		Score:         score,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	f.ratings[rating.ID] = rating
	return rating, nil
}

func (f *fakeRatingRepo) GetByDestinationAndUser(_ context.Context, destinationID, userID primitive.ObjectID) (*models.Rating, error) {
	for _, rating := range f.ratings {
		if rating.DestinationID == destinationID && rating.UserID == userID {
			return rating, nil
		}
	}
	return nil, mongodb.ErrNotFound
}

func (f *fakeRatingRepo) ListByDestination(_ context.Context, destinationID primitive.ObjectID) ([]*models.Rating, error) {
	ratings := make([]*models.Rating, 0)
	for _, rating := range f.ratings {
		if rating.DestinationID == destinationID {
			ratings = append(ratings, rating)
		}
	}
	return ratings, nil
}

func (f *fakeRatingRepo) ListAll(_ context.Context) ([]*models.Rating, error) {
	ratings := make([]*models.Rating, 0, len(f.ratings))
	for _, rating := range f.ratings {
		ratings = append(ratings, rating)
	}
	return ratings, nil
}

func (f *fakeRatingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.ratings)), nil
}

// fakeAudit records denials synchronously so tests can assert on them.
type fakeAudit struct {
	denied  []string
	blocked []string
}

func (f *fakeAudit) RecordAccessDenied(_ security.Principal, resource, resourceID, _ string) {
	f.denied = append(f.denied, resource+":"+resourceID)
}

func (f *fakeAudit) RecordUserBlocked(_ security.Principal, targetID, _ string, blocked bool) {
	action := "blocked"
	if !blocked {
		action = "unblocked"
	}
	f.blocked = append(f.blocked, action+":"+targetID)
}
