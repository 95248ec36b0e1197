package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/movielist/internal/model"
	"github.com/sakif/movielist/internal/repository"
)

// RatingService handles business logic for movie ratings.
type RatingService struct {
	ratings repository.RatingRepository
	movies  repository.MovieRepository
	logger  *slog.Logger
}

func NewRatingService(ratings repository.RatingRepository, movies repository.MovieRepository, logger *slog.Logger) *RatingService {
	return &RatingService{
		ratings: ratings,
		movies:  movies,
		logger:  logger,
	}
}

// Create stores a rating by user for the given movie. The movie must
// exist; a user may rate the same movie any number of times.
func (s *RatingService) Create(ctx context.Context, user *model.User, movieID int64, value float64) (*model.Rating, error) {
	if _, err := s.movies.GetMovieByID(ctx, movieID); err != nil {
		return nil, err
	}

	rating := &model.Rating{
		Value:   value,
		MovieID: movieID,
		UserID:  user.ID,
	}

	if err := s.ratings.CreateRating(ctx, rating); err != nil {
		s.logger.Error("failed to create rating",
			slog.Int64("movieID", movieID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating rating: %w", err)
	}

	s.logger.Info("rating created",
		slog.Int64("id", rating.ID),
		slog.Int64("movieID", movieID),
	)

	return rating, nil
}

// ListByMovie returns a page of ratings for one movie. An unknown movie id
// yields an empty list rather than an error.
func (s *RatingService) ListByMovie(ctx context.Context, movieID int64, skip, limit int) ([]model.Rating, error) {
	ratings, err := s.ratings.ListRatingsByMovie(ctx, movieID, normalizePage(skip, limit))
	if err != nil {
		s.logger.Error("failed to list ratings",
			slog.Int64("movieID", movieID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("listing ratings: %w", err)
	}
	return ratings, nil
}
