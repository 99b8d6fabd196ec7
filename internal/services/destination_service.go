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
	"travelog/pkg/geo"
	"travelog/pkg/images"
	"travelog/pkg/logger"
)

// ImageFinder looks up an illustrative photo for a destination.
type ImageFinder interface {
	FindDestinationImage(ctx context.Context, name, country string) (*images.DestinationImage, error)
}

type DestinationService interface {
	Create(ctx context.Context, caller security.Principal, req *validators.CreateDestinationRequest) (*models.Destination, error)
	GetByID(ctx context.Context, id string) (*models.Destination, error)
	List(ctx context.Context, country string) ([]*models.Destination, error)
	Update(ctx context.Context, caller security.Principal, id, ipAddress string, req *validators.UpdateDestinationRequest) (*models.Destination, error)
	Delete(ctx context.Context, caller security.Principal, id, ipAddress string) error
}

type destinationService struct {
	destinationRepo interfaces.DestinationRepository
	auditService    AuditService
	imageFinder     ImageFinder
	geocoder        geo.Geocoder
	logger          *logger.Logger
}

// NewDestinationService wires the optional enrichment providers; either
// may be nil, in which case the corresponding fields stay empty.
func NewDestinationService(
	destinationRepo interfaces.DestinationRepository,
	auditService AuditService,
	imageFinder ImageFinder,
	geocoder geo.Geocoder,
	log *logger.Logger,
) DestinationService {
	return &destinationService{
		destinationRepo: destinationRepo,
		auditService:    auditService,
		imageFinder:     imageFinder,
		geocoder:        geocoder,
		logger:          log,
	}
}

func (s *destinationService) Create(ctx context.Context, caller security.Principal, req *validators.CreateDestinationRequest) (*models.Destination, error) {
	if errs := validators.ValidateDestination(req); len(errs) > 0 {
		return nil, NewValidationError(errs[0].Field, errs.First())
	}

	security.SanitizeStruct(req)
	if len(req.Name) < utils.MinDestinationNameLength {
		return nil, NewValidationError("name", "Name must be at least 2 characters")
	}
	if len(req.Description) < utils.MinDescriptionLength {
		return nil, NewValidationError("description", "Description must be at least 10 characters")
	}

	if existing, err := s.destinationRepo.GetByNameAndCountry(ctx, req.Name, req.Country); err == nil && existing != nil {
		return nil, NewConflictError("This destination already exists")
	}

	destination := &models.Destination{
		Name:        req.Name,
		Country:     req.Country,
		Description: req.Description,
		CreatedBy:   caller.ID,
	}

	s.enrich(ctx, destination)

	if err := s.destinationRepo.Create(ctx, destination); err != nil {
		return nil, err
	}

	s.logger.WithUserID(caller.ID).WithResource(utils.ResourceDestination, destination.ID.Hex()).Info("destination created")

	return destination, nil
}

// enrich attaches an Unsplash image and geocoded coordinates. Both
// lookups are best-effort: a provider failure leaves the fields empty
// and never fails the creation.
func (s *destinationService) enrich(ctx context.Context, destination *models.Destination) {
	lookupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if s.imageFinder != nil {
		image, err := s.imageFinder.FindDestinationImage(lookupCtx, destination.Name, destination.Country)
		switch {
		case err != nil:
			s.logger.WithError(err).Warn("destination image lookup failed")
		case image != nil:
			destination.ImageURL = image.URL
			destination.ImageAttribution = image.Attribution
		}
	}

	if s.geocoder != nil {
		location, err := s.geocoder.Geocode(lookupCtx, destination.Name, destination.Country)
		switch {
		case err != nil:
			s.logger.WithError(err).Warn("destination geocoding failed")
		case location != nil:
			destination.Latitude = &location.Latitude
			destination.Longitude = &location.Longitude
		}
	}
}

func (s *destinationService) GetByID(ctx context.Context, id string) (*models.Destination, error) {
	destinationID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, NewNotFoundError(utils.ResourceDestination)
	}

	destination, err := s.destinationRepo.GetByID(ctx, destinationID)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, NewNotFoundError(utils.ResourceDestination)
		}
		return nil, err
	}

	return destination, nil
}

func (s *destinationService) List(ctx context.Context, country string) ([]*models.Destination, error) {
	return s.destinationRepo.List(ctx, country)
}

func (s *destinationService) Update(ctx context.Context, caller security.Principal, id, ipAddress string, req *validators.UpdateDestinationRequest) (*models.Destination, error) {
	destinationID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, NewNotFoundError(utils.ResourceDestination)
	}

	if errs := validators.ValidateDestination(req); len(errs) > 0 {
		return nil, NewValidationError(errs[0].Field, errs.First())
	}

	destination, err := s.destinationRepo.GetByID(ctx, destinationID)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, NewNotFoundError(utils.ResourceDestination)
		}
		return nil, err
	}

	security.SanitizeStruct(req)
	if len(req.Name) < utils.MinDestinationNameLength {
		return nil, NewValidationError("name", "Name must be at least 2 characters")
	}
	if len(req.Description) < utils.MinDescriptionLength {
		return nil, NewValidationError("description", "Description must be at least 10 characters")
	}

	if req.Name != destination.Name || req.Country != destination.Country {
		if existing, err := s.destinationRepo.GetByNameAndCountry(ctx, req.Name, req.Country); err == nil && existing != nil && existing.ID != destinationID {
			return nil, NewConflictError("This destination already exists")
		}
	}

	if !security.CanAccess(caller, destination.CreatedBy, security.AccessOptions{AllowEditor: true}) {
		s.auditService.RecordAccessDenied(caller, utils.ResourceDestination, destination.ID.Hex(), ipAddress)
		return nil, NewAuthorizationError("You do not have permission to edit this destination")
	}

	updates := map[string]interface{}{
		"name":        req.Name,
		"country":     req.Country,
		"description": req.Description,
		"updated_at":  time.Now(),
	}
	if err := s.destinationRepo.Update(ctx, destinationID, updates); err != nil {
		return nil, err
	}

	return s.destinationRepo.GetByID(ctx, destinationID)
}

func (s *destinationService) Delete(ctx context.Context, caller security.Principal, id, ipAddress string) error {
	destinationID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return NewNotFoundError(utils.ResourceDestination)
	}

	destination, err := s.destinationRepo.GetByID(ctx, destinationID)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return NewNotFoundError(utils.ResourceDestination)
		}
		return err
	}

	// Deletion is owner-or-admin; editors may only edit.
	if !security.CanAccess(caller, destination.CreatedBy, security.AccessOptions{}) {
		s.auditService.RecordAccessDenied(caller, utils.ResourceDestination, destination.ID.Hex(), ipAddress)
		return NewAuthorizationError("You do not have permission to delete this destination")
	}

	if err := s.destinationRepo.Delete(ctx, destinationID); err != nil {
		return err
	}

	s.logger.WithUserID(caller.ID).WithResource(utils.ResourceDestination, destinationID.Hex()).Info("destination deleted")

	return nil
}
