package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travelog/internal/models"
	"travelog/internal/security"
	"travelog/internal/validators"
)

func ratingFixture(t *testing.T) (RatingService, *fakeRatingRepo, *fakeDestinationRepo, *models.Destination) {
	t.Helper()
	ratingRepo := newFakeRatingRepo()
	destinationRepo := newFakeDestinationRepo()
	destination := destinationRepo.add(&models.Destination{Name: "Lisbon", Country: "Portugal"})
	service := NewRatingService(ratingRepo, destinationRepo, testLogger())
	return service, ratingRepo, destinationRepo, destination
}

func TestSubmitRatingRecomputesAverage(t *testing.T) {
	service, _, _, destination := ratingFixture(t)
	ctx := context.Background()

	alice := security.Principal{ID: primitive.NewObjectID(), Role: models.RoleUser}
	bob := security.Principal{ID: primitive.NewObjectID(), Role: models.RoleUser}

	result, err := service.Submit(ctx, alice, &validators.SubmitRatingRequest{
		DestinationID: destination.ID.Hex(),
		Score:         4,
	})
	require.NoError(t, err)
	assert.Equal(t, 4.0, result.AverageRating)
	assert.Equal(t, 1, result.TotalRatings)

	result, err = service.Submit(ctx, bob, &validators.SubmitRatingRequest{
		DestinationID: destination.ID.Hex(),
		Score:         5,
	})
	require.NoError(t, err)
	assert.Equal(t, 4.5, result.AverageRating)
	assert.Equal(t, 2, result.TotalRatings)

	// The denormalized value on the destination matches the response.
	assert.Equal(t, 4.5, destination.AverageRating)
}

func TestSubmitRatingTwiceUpdatesInsteadOfDuplicating(t *testing.T) {
	service, ratingRepo, _, destination := ratingFixture(t)
	ctx := context.Background()

	caller := security.Principal{ID: primitive.NewObjectID(), Role: models.RoleUser}

	_, err := service.Submit(ctx, caller, &validators.SubmitRatingRequest{
		DestinationID: destination.ID.Hex(),
		Score:         3,
	})
	require.NoError(t, err)

	result, err := service.Submit(ctx, caller, &validators.SubmitRatingRequest{
		DestinationID: destination.ID.Hex(),
		Score:         5,
	})
	require.NoError(t, err)

	assert.Len(t, ratingRepo.ratings, 1, "a repeat submission must not create a second rating")
	assert.Equal(t, 5, result.Rating.Score)
	assert.Equal(t, 5.0, result.AverageRating)
	assert.Equal(t, 1, result.TotalRatings)
}

func TestSubmitRatingAverageRoundsToOneDecimal(t *testing.T) {
	service, _, _, destination := ratingFixture(t)
	ctx := context.Background()

	for _, score := range []int{5, 4, 4} {
		caller := security.Principal{ID: primitive.NewObjectID(), Role: models.RoleUser}
		_, err := service.Submit(ctx, caller, &validators.SubmitRatingRequest{
			DestinationID: destination.ID.Hex(),
			Score:         score,
		})
		require.NoError(t, err)
	}

	// 13/3 = 4.333... rounds to 4.3.
	assert.Equal(t, 4.3, destination.AverageRating)
}

func TestSubmitRatingUnknownDestination(t *testing.T) {
	service, _, _, _ := ratingFixture(t)

	caller := security.Principal{ID: primitive.NewObjectID(), Role: models.RoleUser}
	_, err := service.Submit(context.Background(), caller, &validators.SubmitRatingRequest{
		DestinationID: primitive.NewObjectID().Hex(),
		Score:         4,
	})

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "destination", notFound.Resource)
}

func TestSubmitRatingRejectsOutOfRangeScore(t *testing.T) {
	service, _, _, destination := ratingFixture(t)

	caller := security.Principal{ID: primitive.NewObjectID(), Role: models.RoleUser}
	_, err := service.Submit(context.Background(), caller, &validators.SubmitRatingRequest{
		DestinationID: destination.ID.Hex(),
		Score:         6,
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestGetForDestinationIncludesCallerRating(t *testing.T) {
	service, _, _, destination := ratingFixture(t)
	ctx := context.Background()

	alice := security.Principal{ID: primitive.NewObjectID(), Role: models.RoleUser}
	bob := security.Principal{ID: primitive.NewObjectID(), Role: models.RoleUser}

	for caller, score := range map[security.Principal]int{alice: 2, bob: 5} {
		_, err := service.Submit(ctx, caller, &validators.SubmitRatingRequest{
			DestinationID: destination.ID.Hex(),
			Score:         score,
		})
		require.NoError(t, err)
	}

	result, err := service.GetForDestination(ctx, destination.ID.Hex(), &alice)
	require.NoError(t, err)
	assert.Equal(t, 2, result.UserRating.Score)
	assert.Equal(t, 2, result.TotalRatings)
	assert.Equal(t, 3.5, result.AverageRating)

	anonymous, err := service.GetForDestination(ctx, destination.ID.Hex(), nil)
	require.NoError(t, err)
	assert.Nil(t, anonymous.UserRating)
}

func TestAverageScoreEmptyIsZero(t *testing.T) {
	assert.Equal(t, 0.0, averageScore(nil))
}
