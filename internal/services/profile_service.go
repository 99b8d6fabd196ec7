package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"travelog/internal/models"
	"travelog/internal/repositories/interfaces"
	"travelog/internal/repositories/mongodb"
	"travelog/internal/security"
	"travelog/internal/utils"
	"travelog/internal/validators"
	"travelog/pkg/logger"
	"travelog/pkg/storage"
)

type ProfileService interface {
	Get(ctx context.Context, caller security.Principal) (*models.User, error)
	Update(ctx context.Context, caller security.Principal, req *validators.UpdateProfileRequest) (*models.User, error)
	UploadPhoto(ctx context.Context, caller security.Principal, file io.Reader, filename string, size int64) (string, error)
}

type profileService struct {
	userRepo interfaces.UserRepository
	storage  storage.Provider
	logger   *logger.Logger
}

func NewProfileService(userRepo interfaces.UserRepository, store storage.Provider, log *logger.Logger) ProfileService {
	return &profileService{
		userRepo: userRepo,
		storage:  store,
		logger:   log,
	}
}

func (s *profileService) Get(ctx context.Context, caller security.Principal) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, NewNotFoundError(utils.ResourceUser)
		}
		return nil, err
	}
	return user, nil
}

func (s *profileService) Update(ctx context.Context, caller security.Principal, req *validators.UpdateProfileRequest) (*models.User, error) {
	if errs := validators.ValidateUpdateProfile(req); len(errs) > 0 {
		return nil, NewValidationError(errs[0].Field, errs.First())
	}

	if _, err := s.userRepo.GetByID(ctx, caller.ID); err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, NewNotFoundError(utils.ResourceUser)
		}
		return nil, err
	}

	req.DisplayName = security.Sanitize(req.DisplayName)
	req.Bio = security.Sanitize(req.Bio)
	if len(req.DisplayName) < utils.MinDisplayNameLength {
		return nil, NewValidationError("display_name", "DisplayName must be at least 2 characters")
	}

	updates := map[string]interface{}{
		"display_name":      req.DisplayName,
		"bio":               req.Bio,
		"profile_photo_url": req.ProfilePhotoURL,
		"updated_at":        time.Now(),
	}
	if err := s.userRepo.Update(ctx, caller.ID, updates); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, caller.ID)
}

// UploadPhoto resizes the avatar, stores it and records the resulting URL
// on the profile. Re-uploads overwrite the previous photo by key.
func (s *profileService) UploadPhoto(ctx context.Context, caller security.Principal, file io.Reader, filename string, size int64) (string, error) {
	if s.storage == nil {
		return "", NewValidationError("photo", "Photo uploads are not enabled")
	}
	if size > utils.MaxAvatarSize {
		return "", NewValidationError("photo", "Photo must be smaller than 5MB")
	}

	data, ext, err := utils.ResizeAvatar(file, filename, utils.AvatarMaxWidth, utils.AvatarMaxHeight)
	if err != nil {
		if errors.Is(err, utils.ErrUnsupportedImage) {
			return "", NewValidationError("photo", "Photo must be a JPEG or PNG image")
		}
		return "", NewValidationError("photo", "Photo could not be processed")
	}

	contentType := "image/jpeg"
	if ext == "png" {
		contentType = "image/png"
	}

	result, err := s.storage.Upload(ctx, &storage.UploadRequest{
		Key:         fmt.Sprintf("avatars/%s.%s", caller.ID.Hex(), ext),
		Reader:      bytes.NewReader(data),
		ContentType: contentType,
		Size:        int64(len(data)),
	})
	if err != nil {
		return "", err
	}

	updates := map[string]interface{}{
		"profile_photo_url": result.URL,
		"updated_at":        time.Now(),
	}
	if err := s.userRepo.Update(ctx, caller.ID, updates); err != nil {
		return "", err
	}

	s.logger.WithUserID(caller.ID).Info("profile photo updated")

	return result.URL, nil
}
