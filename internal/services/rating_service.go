package services

import (
	"context"
	"errors"
	"math"
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

type RatingService interface {
	Submit(ctx context.Context, caller security.Principal, req *validators.SubmitRatingRequest) (*RatingResult, error)
	GetForDestination(ctx context.Context, destinationID string, caller *security.Principal) (*DestinationRatings, error)
}

// RatingResult is returned after a submission, carrying the freshly
// recomputed destination average so clients never render a stale value.
type RatingResult struct {
	Rating        *models.Rating `json:"rating"`
	AverageRating float64        `json:"average_rating"`
	TotalRatings  int            `json:"total_ratings"`
}

type DestinationRatings struct {
	Ratings       []*models.Rating `json:"ratings"`
	AverageRating float64          `json:"average_rating"`
	TotalRatings  int              `json:"total_ratings"`
	// UserRating is the caller's own score, present only for
	// authenticated requests where the caller has rated.
	UserRating *models.Rating `json:"user_rating,omitempty"`
}

type ratingService struct {
	ratingRepo      interfaces.RatingRepository
	destinationRepo interfaces.DestinationRepository
	logger          *logger.Logger
}

func NewRatingService(
	ratingRepo interfaces.RatingRepository,
	destinationRepo interfaces.DestinationRepository,
	log *logger.Logger,
) RatingService {
	return &ratingService{
		ratingRepo:      ratingRepo,
		destinationRepo: destinationRepo,
		logger:          log,
	}
}

func (s *ratingService) Submit(ctx context.Context, caller security.Principal, req *validators.SubmitRatingRequest) (*RatingResult, error) {
	if errs := validators.ValidateSubmitRating(req); len(errs) > 0 {
		return nil, NewValidationError(errs[0].Field, errs.First())
	}

	destinationID, err := primitive.ObjectIDFromHex(req.DestinationID)
	if err != nil {
		return nil, NewValidationError("destination_id", "DestinationID must be a valid id")
	}

	if _, err := s.destinationRepo.GetByID(ctx, destinationID); err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, NewNotFoundError(utils.ResourceDestination)
		}
		return nil, err
	}

	rating, err := s.ratingRepo.Upsert(ctx, destinationID, caller.ID, req.Score)
	if err != nil {
		return nil, err
	}

	average, total, err := s.recomputeAverage(ctx, destinationID)
	if err != nil {
		return nil, err
	}

	s.logger.WithUserID(caller.ID).WithResource(utils.ResourceDestination, destinationID.Hex()).
		WithField("score", req.Score).Info("rating submitted")

	return &RatingResult{
		Rating:        rating,
		AverageRating: average,
		TotalRatings:  total,
	}, nil
}

func (s *ratingService) GetForDestination(ctx context.Context, destinationID string, caller *security.Principal) (*DestinationRatings, error) {
	destID, err := primitive.ObjectIDFromHex(destinationID)
	if err != nil {
		return nil, NewValidationError("destination_id", "DestinationID must be a valid id")
	}

	if _, err := s.destinationRepo.GetByID(ctx, destID); err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, NewNotFoundError(utils.ResourceDestination)
		}
		return nil, err
	}

	ratings, err := s.ratingRepo.ListByDestination(ctx, destID)
	if err != nil {
		return nil, err
	}

	result := &DestinationRatings{
		Ratings:       ratings,
		AverageRating: averageScore(ratings),
		TotalRatings:  len(ratings),
	}

	if caller != nil {
		for _, r := range ratings {
			if r.UserID == caller.ID {
				result.UserRating = r
				break
			}
		}
	}

	return result, nil
}

// recomputeAverage re-reads every rating for the destination after a
// write and persists the denormalized average, so the stored value always
// reflects the full rating set rather than an incremental guess.
func (s *ratingService) recomputeAverage(ctx context.Context, destinationID primitive.ObjectID) (float64, int, error) {
	ratings, err := s.ratingRepo.ListByDestination(ctx, destinationID)
	if err != nil {
		return 0, 0, err
	}

	average := averageScore(ratings)
	updates := map[string]interface{}{
		"average_rating": average,
		"updated_at":     time.Now(),
	}
	if err := s.destinationRepo.Update(ctx, destinationID, updates); err != nil {
		return 0, 0, err
	}

	return average, len(ratings), nil
}

// averageScore rounds to one decimal place; an unrated destination is 0.
func averageScore(ratings []*models.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	var sum int
	for _, r := range ratings {
		sum += r.Score
	}
	avg := float64(sum) / float64(len(ratings))
	return math.Round(avg*10) / 10
}
