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

type CommentService interface {
	Create(ctx context.Context, caller security.Principal, req *validators.CreateCommentRequest) (*models.Comment, error)
	ListByPost(ctx context.Context, postID string, caller *security.Principal) ([]*models.Comment, error)
	Update(ctx context.Context, caller security.Principal, id, ipAddress string, req *validators.UpdateCommentRequest) (*models.Comment, error)
	ToggleHidden(ctx context.Context, caller security.Principal, id, ipAddress string) (*models.Comment, error)
	Delete(ctx context.Context, caller security.Principal, id, ipAddress string) error
}

type commentService struct {
	commentRepo  interfaces.CommentRepository
	postRepo     interfaces.PostRepository
	auditService AuditService
	logger       *logger.Logger
}

func NewCommentService(
	commentRepo interfaces.CommentRepository,
	postRepo interfaces.PostRepository,
	auditService AuditService,
	log *logger.Logger,
) CommentService {
	return &commentService{
		commentRepo:  commentRepo,
		postRepo:     postRepo,
		auditService: auditService,
		logger:       log,
	}
}

func (s *commentService) Create(ctx context.Context, caller security.Principal, req *validators.CreateCommentRequest) (*models.Comment, error) {
	if errs := validators.ValidateCreateComment(req); len(errs) > 0 {
		return nil, NewValidationError(errs[0].Field, errs.First())
	}

	postID, err := primitive.ObjectIDFromHex(req.PostID)
	if err != nil {
		return nil, NewValidationError("post_id", "PostID must be a valid id")
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, NewNotFoundError(utils.ResourcePost)
		}
		return nil, err
	}
	// Drafts cannot collect comments.
	if !post.IsPublished && !security.CanAccess(caller, post.AuthorID, security.AccessOptions{AllowEditor: true}) {
		return nil, NewNotFoundError(utils.ResourcePost)
	}

	req.Content = security.Sanitize(req.Content)
	if req.Content == "" {
		return nil, NewValidationError("content", "Content is required")
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: caller.ID,
		Content:  req.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.WithUserID(caller.ID).WithResource(utils.ResourceComment, comment.ID.Hex()).Info("comment created")

	return comment, nil
}

func (s *commentService) ListByPost(ctx context.Context, postID string, caller *security.Principal) ([]*models.Comment, error) {
	id, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, NewValidationError("post_id", "PostID must be a valid id")
	}

	if _, err := s.postRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, NewNotFoundError(utils.ResourcePost)
		}
		return nil, err
	}

	includeHidden := caller != nil && security.IsModerator(*caller)
	return s.commentRepo.ListByPost(ctx, id, includeHidden)
}

func (s *commentService) Update(ctx context.Context, caller security.Principal, id, ipAddress string, req *validators.UpdateCommentRequest) (*models.Comment, error) {
	commentID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, NewNotFoundError(utils.ResourceComment)
	}

	if errs := validators.ValidateUpdateComment(req); len(errs) > 0 {
		return nil, NewValidationError(errs[0].Field, errs.First())
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, NewNotFoundError(utils.ResourceComment)
		}
		return nil, err
	}

	req.Content = security.Sanitize(req.Content)
	if req.Content == "" {
		return nil, NewValidationError("content", "Content is required")
	}

	if !security.CanAccess(caller, comment.AuthorID, security.AccessOptions{AllowEditor: true}) {
		s.auditService.RecordAccessDenied(caller, utils.ResourceComment, comment.ID.Hex(), ipAddress)
		return nil, NewAuthorizationError("You do not have permission to edit this comment")
	}

	updates := map[string]interface{}{
		"content":    req.Content,
		"updated_at": time.Now(),
	}
	if err := s.commentRepo.Update(ctx, commentID, updates); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, commentID)
}

func (s *commentService) ToggleHidden(ctx context.Context, caller security.Principal, id, ipAddress string) (*models.Comment, error) {
	commentID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, NewNotFoundError(utils.ResourceComment)
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, NewNotFoundError(utils.ResourceComment)
		}
		return nil, err
	}

	// Moderation is role-gated, not ownership-gated.
	if !security.IsModerator(caller) {
		s.auditService.RecordAccessDenied(caller, utils.ResourceComment, comment.ID.Hex(), ipAddress)
		return nil, NewAuthorizationError("You do not have permission to moderate comments")
	}

	updates := map[string]interface{}{
		"is_hidden":  !comment.IsHidden,
		"updated_at": time.Now(),
	}
	if err := s.commentRepo.Update(ctx, commentID, updates); err != nil {
		return nil, err
	}

	s.logger.WithUserID(caller.ID).WithResource(utils.ResourceComment, commentID.Hex()).
		WithField("hidden", !comment.IsHidden).Info("comment moderation state changed")

	return s.commentRepo.GetByID(ctx, commentID)
}

func (s *commentService) Delete(ctx context.Context, caller security.Principal, id, ipAddress string) error {
	commentID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return NewNotFoundError(utils.ResourceComment)
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return NewNotFoundError(utils.ResourceComment)
		}
		return err
	}

	if !security.CanAccess(caller, comment.AuthorID, security.AccessOptions{AllowEditor: true}) {
		s.auditService.RecordAccessDenied(caller, utils.ResourceComment, comment.ID.Hex(), ipAddress)
		return NewAuthorizationError("You do not have permission to delete this comment")
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return err
	}

	s.logger.WithUserID(caller.ID).WithResource(utils.ResourceComment, commentID.Hex()).Info("comment deleted")

	return nil
}
