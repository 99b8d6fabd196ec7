package services

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"travelog/internal/models"
	"travelog/internal/repositories/interfaces"
	"travelog/internal/utils"
	"travelog/pkg/logger"
)

type StatsService interface {
	GetPlatformStats(ctx context.Context) (*PlatformStats, error)
}

// PlatformStats is computed by full scans at read time; nothing here is
// materialized between requests.
type PlatformStats struct {
	Totals          StatsTotals               `json:"totals"`
	PostsByMonth    []MonthCount              `json:"posts_by_month"`
	TopDestinations []DestinationStat         `json:"top_destinations"`
	UsersByRole     map[models.UserRole]int64 `json:"users_by_role"`
}

type StatsTotals struct {
	Posts        int64 `json:"posts"`
	Comments     int64 `json:"comments"`
	Destinations int64 `json:"destinations"`
	Ratings      int64 `json:"ratings"`
	Users        int64 `json:"users"`
}

// MonthCount labels a month as "2006-01".
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type DestinationStat struct {
	ID            primitive.ObjectID `json:"id"`
	Name          string             `json:"name"`
	Country       string             `json:"country"`
	PostCount     int                `json:"post_count"`
	AverageRating float64            `json:"average_rating"`
}

type statsService struct {
	postRepo        interfaces.PostRepository
	commentRepo     interfaces.CommentRepository
	destinationRepo interfaces.DestinationRepository
	ratingRepo      interfaces.RatingRepository
	userRepo        interfaces.UserRepository
	logger          *logger.Logger
}

func NewStatsService(
	postRepo interfaces.PostRepository,
	commentRepo interfaces.CommentRepository,
	destinationRepo interfaces.DestinationRepository,
	ratingRepo interfaces.RatingRepository,
	userRepo interfaces.UserRepository,
	log *logger.Logger,
) StatsService {
	return &statsService{
		postRepo:        postRepo,
		commentRepo:     commentRepo,
		destinationRepo: destinationRepo,
		ratingRepo:      ratingRepo,
		userRepo:        userRepo,
		logger:          log,
	}
}

func (s *statsService) GetPlatformStats(ctx context.Context) (*PlatformStats, error) {
	posts, err := s.postRepo.ListAllPublished(ctx)
	if err != nil {
		return nil, err
	}
	destinations, err := s.destinationRepo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	ratings, err := s.ratingRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	totals, err := s.collectTotals(ctx)
	if err != nil {
		return nil, err
	}
	usersByRole, err := s.userRepo.CountByRole(ctx)
	if err != nil {
		return nil, err
	}

	return &PlatformStats{
		Totals:          totals,
		PostsByMonth:    postsByMonth(posts, time.Now()),
		TopDestinations: topDestinations(posts, destinations, ratings),
		UsersByRole:     usersByRole,
	}, nil
}

func (s *statsService) collectTotals(ctx context.Context) (StatsTotals, error) {
	var totals StatsTotals
	var err error

	if totals.Posts, err = s.postRepo.Count(ctx); err != nil {
		return totals, err
	}
	if totals.Comments, err = s.commentRepo.Count(ctx); err != nil {
		return totals, err
	}
	if totals.Destinations, err = s.destinationRepo.Count(ctx); err != nil {
		return totals, err
	}
	if totals.Ratings, err = s.ratingRepo.Count(ctx); err != nil {
		return totals, err
	}
	if totals.Users, err = s.userRepo.Count(ctx); err != nil {
		return totals, err
	}

	return totals, nil
}

// postsByMonth buckets posts over the trailing twelve months including
// the current one; empty months appear with a zero count.
func postsByMonth(posts []*models.Post, now time.Time) []MonthCount {
	counts := make(map[string]int)
	for _, p := range posts {
		counts[p.CreatedAt.Format("2006-01")]++
	}

	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, -(utils.StatsMonths - 1), 0)

	months := make([]MonthCount, 0, utils.StatsMonths)
	for i := 0; i < utils.StatsMonths; i++ {
		label := start.AddDate(0, i, 0).Format("2006-01")
		months = append(months, MonthCount{Month: label, Count: counts[label]})
	}

	return months
}

func topDestinations(posts []*models.Post, destinations []*models.Destination, ratings []*models.Rating) []DestinationStat {
	postCounts := make(map[primitive.ObjectID]int)
	for _, p := range posts {
		postCounts[p.DestinationID]++
	}

	ratingSums := make(map[primitive.ObjectID]int)
	ratingCounts := make(map[primitive.ObjectID]int)
	for _, r := range ratings {
		ratingSums[r.DestinationID] += r.Score
		ratingCounts[r.DestinationID]++
	}

	stats := make([]DestinationStat, 0, len(destinations))
	for _, d := range destinations {
		stat := DestinationStat{
			ID:        d.ID,
			Name:      d.Name,
			Country:   d.Country,
			PostCount: postCounts[d.ID],
		}
		if n := ratingCounts[d.ID]; n > 0 {
			perDestination := make([]*models.Rating, 0, n)
			for _, r := range ratings {
				if r.DestinationID == d.ID {
					perDestination = append(perDestination, r)
				}
			}
			stat.AverageRating = averageScore(perDestination)
		}
		stats = append(stats, stat)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].PostCount > stats[j].PostCount
	})

	if len(stats) > utils.TopDestinationCount {
		stats = stats[:utils.TopDestinationCount]
	}

	return stats
}
