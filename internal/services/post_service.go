package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"travelog/internal/models"
	"travelog/internal/repositories/interfaces"
	"travelog/internal/repositories/mongodb"
	"travelog/internal/security"
	"travelog/internal/utils"
	"travelog/internal/validators"
	"travelog/pkg/logger"
)

type PostService interface {
	Create(ctx context.Context, caller security.Principal, req *validators.CreatePostRequest) (*models.Post, error)
	GetByID(ctx context.Context, id string, caller *security.Principal) (*models.PostDetail, error)
	List(ctx context.Context, filter PostListFilter, caller *security.Principal) ([]*models.PostDetail, error)
	Update(ctx context.Context, caller security.Principal, id, ipAddress string, req *validators.UpdatePostRequest) (*models.Post, error)
	Delete(ctx context.Context, caller security.Principal, id, ipAddress string) error
}

// PostListFilter carries the query-string filters of the listing endpoint.
type PostListFilter struct {
	AuthorID      string
	DestinationID string
	Limit         int
}

type postService struct {
	postRepo        interfaces.PostRepository
	commentRepo     interfaces.CommentRepository
	destinationRepo interfaces.DestinationRepository
	userRepo        interfaces.UserRepository
	auditService    AuditService
	logger          *logger.Logger
}

func NewPostService(
	postRepo interfaces.PostRepository,
	commentRepo interfaces.CommentRepository,
	destinationRepo interfaces.DestinationRepository,
	userRepo interfaces.UserRepository,
	auditService AuditService,
	log *logger.Logger,
) PostService {
	return &postService{
		postRepo:        postRepo,
		commentRepo:     commentRepo,
		destinationRepo: destinationRepo,
		userRepo:        userRepo,
		auditService:    auditService,
		logger:          log,
	}
}

func (s *postService) Create(ctx context.Context, caller security.Principal, req *validators.CreatePostRequest) (*models.Post, error) {
	if errs := validators.ValidateCreatePost(req); len(errs) > 0 {
		return nil, NewValidationError(errs[0].Field, errs.First())
	}

	destinationID, err := primitive.ObjectIDFromHex(req.DestinationID)
	if err != nil {
		return nil, NewValidationError("destination_id", "DestinationID must be a valid id")
	}
	travelDate, err := validators.ParseTravelDate(req.TravelDate)
	if err != nil {
		return nil, NewValidationError("travel_date", "TravelDate must be a valid date")
	}

	if _, err := s.destinationRepo.GetByID(ctx, destinationID); err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, NewValidationError("destination_id", "Destination not found")
		}
		return nil, err
	}

	security.SanitizeStruct(req)
	if len(req.Title) < utils.MinPostTitleLength {
		return nil, NewValidationError("title", "Title must be at least 3 characters")
	}
	if len(req.Content) < utils.MinPostContentLength {
		return nil, NewValidationError("content", "Content must be at least 10 characters")
	}

	published := true
	if req.IsPublished != nil {
		published = *req.IsPublished
	}

	post := &models.Post{
		Title:         req.Title,
		Content:       req.Content,
		AuthorID:      caller.ID,
		DestinationID: destinationID,
		TravelDate:    travelDate,
		IsPublished:   published,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.WithUserID(caller.ID).WithResource(utils.ResourcePost, post.ID.Hex()).Info("post created")

	return post, nil
}

func (s *postService) GetByID(ctx context.Context, id string, caller *security.Principal) (*models.PostDetail, error) {
	postID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, NewNotFoundError(utils.ResourcePost)
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, NewNotFoundError(utils.ResourcePost)
		}
		return nil, err
	}

	// Drafts stay invisible to everyone but their author, editors and
	// admins; they look absent rather than forbidden.
	if !post.IsPublished {
		if caller == nil || !security.CanAccess(*caller, post.AuthorID, security.AccessOptions{AllowEditor: true}) {
			return nil, NewNotFoundError(utils.ResourcePost)
		}
	}

	detail := &models.PostDetail{Post: post, Comments: []*models.Comment{}}

	if author, err := s.userRepo.GetByID(ctx, post.AuthorID); err == nil {
		detail.Author = author.Summary()
	}
	if destination, err := s.destinationRepo.GetByID(ctx, post.DestinationID); err == nil {
		detail.Destination = destination
	}

	includeHidden := caller != nil && security.IsModerator(*caller)
	comments, err := s.commentRepo.ListByPost(ctx, postID, includeHidden)
	if err != nil {
		return nil, err
	}
	detail.Comments = comments

	return detail, nil
}

func (s *postService) List(ctx context.Context, filter PostListFilter, caller *security.Principal) ([]*models.PostDetail, error) {
	repoFilter := interfaces.PostFilter{PublishedOnly: true, Limit: filter.Limit}

	if filter.AuthorID != "" {
		authorID, err := primitive.ObjectIDFromHex(filter.AuthorID)
		if err != nil {
			return nil, NewValidationError("author_id", "AuthorID must be a valid id")
		}
		repoFilter.AuthorID = authorID
		// Authors see their own drafts in their own listing.
		if caller != nil && (caller.ID == authorID || security.IsModerator(*caller)) {
			repoFilter.PublishedOnly = false
		}
	}
	if filter.DestinationID != "" {
		destinationID, err := primitive.ObjectIDFromHex(filter.DestinationID)
		if err != nil {
			return nil, NewValidationError("destination_id", "DestinationID must be a valid id")
		}
		repoFilter.DestinationID = destinationID
	}

	posts, err := s.postRepo.List(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	return s.decorate(ctx, posts)
}

// decorate joins author summaries and destinations onto a page of posts,
// fetching each referenced record once.
func (s *postService) decorate(ctx context.Context, posts []*models.Post) ([]*models.PostDetail, error) {
	destinationIDs := make([]primitive.ObjectID, 0, len(posts))
	seen := make(map[primitive.ObjectID]bool)
	for _, p := range posts {
		if !seen[p.DestinationID] {
			seen[p.DestinationID] = true
			destinationIDs = append(destinationIDs, p.DestinationID)
		}
	}

	destinations, err := s.destinationRepo.GetByIDs(ctx, destinationIDs)
	if err != nil {
		return nil, err
	}

	authors := make(map[primitive.ObjectID]*models.UserSummary)
	details := make([]*models.PostDetail, 0, len(posts))
	for _, p := range posts {
		detail := &models.PostDetail{Post: p, Comments: []*models.Comment{}}
		detail.Destination = destinations[p.DestinationID]

		if summary, ok := authors[p.AuthorID]; ok {
			detail.Author = summary
		} else if author, err := s.userRepo.GetByID(ctx, p.AuthorID); err == nil {
			authors[p.AuthorID] = author.Summary()
			detail.Author = author.Summary()
		}

		details = append(details, detail)
	}

	return details, nil
}

func (s *postService) Update(ctx context.Context, caller security.Principal, id, ipAddress string, req *validators.UpdatePostRequest) (*models.Post, error) {
	postID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, NewNotFoundError(utils.ResourcePost)
	}

	if errs := validators.ValidateUpdatePost(req); len(errs) > 0 {
		return nil, NewValidationError(errs[0].Field, errs.First())
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, NewNotFoundError(utils.ResourcePost)
		}
		return nil, err
	}

	destinationID, err := primitive.ObjectIDFromHex(req.DestinationID)
	if err != nil {
		return nil, NewValidationError("destination_id", "DestinationID must be a valid id")
	}
	travelDate, err := validators.ParseTravelDate(req.TravelDate)
	if err != nil {
		return nil, NewValidationError("travel_date", "TravelDate must be a valid date")
	}
	if _, err := s.destinationRepo.GetByID(ctx, destinationID); err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, NewValidationError("destination_id", "Destination not found")
		}
		return nil, err
	}

	security.SanitizeStruct(req)
	if len(req.Title) < utils.MinPostTitleLength {
		return nil, NewValidationError("title", "Title must be at least 3 characters")
	}
	if len(req.Content) < utils.MinPostContentLength {
		return nil, NewValidationError("content", "Content must be at least 10 characters")
	}

	if !security.CanAccess(caller, post.AuthorID, security.AccessOptions{AllowEditor: true}) {
		s.auditService.RecordAccessDenied(caller, utils.ResourcePost, post.ID.Hex(), ipAddress)
		return nil, NewAuthorizationError("You do not have permission to edit this post")
	}

	updates := map[string]interface{}{
		"title":          req.Title,
		"content":        req.Content,
		"destination_id": destinationID,
		"travel_date":    travelDate,
		"updated_at":     time.Now(),
	}
	if err := s.postRepo.Update(ctx, postID, updates); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, postID)
}

func (s *postService) Delete(ctx context.Context, caller security.Principal, id, ipAddress string) error {
	postID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return NewNotFoundError(utils.ResourcePost)
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return NewNotFoundError(utils.ResourcePost)
		}
		return err
	}

	// Editors may edit posts but not delete them.
	if !security.CanAccess(caller, post.AuthorID, security.AccessOptions{}) {
		s.auditService.RecordAccessDenied(caller, utils.ResourcePost, post.ID.Hex(), ipAddress)
		return NewAuthorizationError("You do not have permission to delete this post")
	}

	if err := s.postRepo.DeleteWithComments(ctx, postID); err != nil {
		return err
	}

	s.logger.WithUserID(caller.ID).WithResource(utils.ResourcePost, postID.Hex()).Info("post deleted")

	return nil
}
