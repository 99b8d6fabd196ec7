package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travelog/internal/models"
)

func TestGetPlatformStats(t *testing.T) {
	commentRepo := newFakeCommentRepo()
	postRepo := newFakePostRepo(commentRepo)
	destinationRepo := newFakeDestinationRepo()
	ratingRepo := newFakeRatingRepo()
	userRepo := newFakeUserRepo()

	userRepo.add(&models.User{Role: models.RoleUser})
	userRepo.add(&models.User{Role: models.RoleUser})
	userRepo.add(&models.User{Role: models.RoleEditor})
	userRepo.add(&models.User{Role: models.RoleAdmin})

	kyoto := destinationRepo.add(&models.Destination{Name: "Kyoto", Country: "Japan"})
	lisbon := destinationRepo.add(&models.Destination{Name: "Lisbon", Country: "Portugal"})

	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		postRepo.add(&models.Post{DestinationID: kyoto.ID, IsPublished: true, CreatedAt: now})
	}
	postRepo.add(&models.Post{DestinationID: lisbon.ID, IsPublished: true, CreatedAt: now})
	postRepo.add(&models.Post{DestinationID: lisbon.ID, IsPublished: false, CreatedAt: now})

	userID := primitive.NewObjectID()
	_, err := ratingRepo.Upsert(context.Background(), kyoto.ID, userID, 5)
	require.NoError(t, err)
	_, err = ratingRepo.Upsert(context.Background(), kyoto.ID, primitive.NewObjectID(), 4)
	require.NoError(t, err)

	commentRepo.add(&models.Comment{Content: "nice"})

	service := NewStatsService(postRepo, commentRepo, destinationRepo, ratingRepo, userRepo, testLogger())
	stats, err := service.GetPlatformStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(5), stats.Totals.Posts)
	assert.Equal(t, int64(1), stats.Totals.Comments)
	assert.Equal(t, int64(2), stats.Totals.Destinations)
	assert.Equal(t, int64(2), stats.Totals.Ratings)
	assert.Equal(t, int64(4), stats.Totals.Users)

	assert.Equal(t, int64(2), stats.UsersByRole[models.RoleUser])
	assert.Equal(t, int64(1), stats.UsersByRole[models.RoleEditor])
	assert.Equal(t, int64(1), stats.UsersByRole[models.RoleAdmin])

	require.NotEmpty(t, stats.TopDestinations)
	assert.Equal(t, "Kyoto", stats.TopDestinations[0].Name)
	assert.Equal(t, 3, stats.TopDestinations[0].PostCount)
	assert.Equal(t, 4.5, stats.TopDestinations[0].AverageRating)

	// Current month bucket counts only published posts.
	require.Len(t, stats.PostsByMonth, 12)
	current := stats.PostsByMonth[len(stats.PostsByMonth)-1]
	assert.Equal(t, now.Format("2006-01"), current.Month)
	assert.Equal(t, 4, current.Count)
}

func TestPostsByMonthCoversTrailingTwelveMonths(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	posts := []*models.Post{
		{CreatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
		{CreatedAt: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)},
		{CreatedAt: time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC)},
		// Outside the window, must not appear.
		{CreatedAt: time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)},
	}

	months := postsByMonth(posts, now)
	require.Len(t, months, 12)

	assert.Equal(t, "2025-09", months[0].Month)
	assert.Equal(t, 1, months[0].Count)
	assert.Equal(t, "2026-08", months[11].Month)
	assert.Equal(t, 2, months[11].Count)

	total := 0
	for _, m := range months {
		total += m.Count
	}
	assert.Equal(t, 3, total, "the pre-window post is excluded")
}

func TestTopDestinationsCapped(t *testing.T) {
	destinations := make([]*models.Destination, 0, 10)
	posts := make([]*models.Post, 0)
	for i := 0; i < 10; i++ {
		d := &models.Destination{ID: primitive.NewObjectID(), Name: "D", Country: "C"}
		destinations = append(destinations, d)
		for j := 0; j <= i; j++ {
			posts = append(posts, &models.Post{DestinationID: d.ID})
		}
	}

	top := topDestinations(posts, destinations, nil)
	require.Len(t, top, 7)
	assert.Equal(t, 10, top[0].PostCount, "ordered by post count descending")
	assert.Equal(t, 4, top[6].PostCount)
}
