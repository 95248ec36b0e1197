package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sakif/movielist/internal/apperror"
	"github.com/sakif/movielist/internal/model"
	"github.com/sakif/movielist/internal/repository"
)

// Pagination defaults shared by every list operation. No upper bound is
// enforced on limit.
const (
	DefaultListLimit = 10
	MaxTitleLength   = 200
)

// MovieService handles business logic for movie records.
type MovieService struct {
	movies repository.MovieRepository
	logger *slog.Logger
}

func NewMovieService(movies repository.MovieRepository, logger *slog.Logger) *MovieService {
	return &MovieService{
		movies: movies,
		logger: logger,
	}
}

// Create validates and stores a new movie owned by owner. A nil releaseDate
// defaults to the current time.
func (s *MovieService) Create(ctx context.Context, owner *model.User, title, description string, releaseDate *time.Time) (*model.Movie, error) {
	title = strings.TrimSpace(title)

	if title == "" {
		return nil, apperror.ValidationFailed("title", "title is required")
	}
	if len(title) > MaxTitleLength {
		return nil, apperror.ValidationFailed("title",
			fmt.Sprintf("title must be %d characters or less", MaxTitleLength))
	}

	released := time.Now().UTC()
	if releaseDate != nil {
		released = *releaseDate
	}

	movie := &model.Movie{
		Title:       title,
		Description: strings.TrimSpace(description),
		ReleaseDate: released,
		OwnerID:     owner.ID,
	}

	if err := s.movies.CreateMovie(ctx, movie); err != nil {
		s.logger.Error("failed to create movie",
			slog.String("title", title),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating movie: %w", err)
	}

	s.logger.Info("movie created",
		slog.Int64("id", movie.ID),
		slog.Int64("ownerID", movie.OwnerID),
	)

	return movie, nil
}

// GetByID retrieves a movie.
// Returns apperror.ErrNotFound if the movie doesn't exist.
func (s *MovieService) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	return s.movies.GetMovieByID(ctx, id)
}

// List returns a page of movies. Non-positive limits fall back to the
// default; negative skips fall back to zero. Large limits are accepted
// as-is.
func (s *MovieService) List(ctx context.Context, skip, limit int) ([]model.Movie, error) {
	movies, err := s.movies.ListMovies(ctx, normalizePage(skip, limit))
	if err != nil {
		s.logger.Error("failed to list movies", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing movies: %w", err)
	}
	return movies, nil
}

// Update overwrites the title and description of an existing movie.
//
// Existence is checked before ownership: a missing movie is always
// NotFound, never Forbidden, no matter who asks. The release date is not
// touched by updates.
func (s *MovieService) Update(ctx context.Context, user *model.User, id int64, title, description string) (*model.Movie, error) {
	movie, err := s.movies.GetMovieByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if movie.OwnerID != user.ID {
		return nil, apperror.Forbidden("not authorized to update this movie")
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperror.ValidationFailed("title", "title is required")
	}
	if len(title) > MaxTitleLength {
		return nil, apperror.ValidationFailed("title",
			fmt.Sprintf("title must be %d characters or less", MaxTitleLength))
	}

	movie.Title = title
	movie.Description = strings.TrimSpace(description)

	if err := s.movies.UpdateMovie(ctx, movie); err != nil {
		s.logger.Error("failed to update movie",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("updating movie: %w", err)
	}

	s.logger.Info("movie updated", slog.Int64("id", movie.ID))

	return movie, nil
}

// Delete removes a movie after the same existence-then-ownership checks as
// Update. Ratings and comments referencing the movie are left in place.
func (s *MovieService) Delete(ctx context.Context, user *model.User, id int64) error {
	movie, err := s.movies.GetMovieByID(ctx, id)
	if err != nil {
		return err
	}

	if movie.OwnerID != user.ID {
		return apperror.Forbidden("not authorized to delete this movie")
	}

	if err := s.movies.DeleteMovie(ctx, id); err != nil {
		s.logger.Error("failed to delete movie",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("deleting movie: %w", err)
	}

	s.logger.Info("movie deleted", slog.Int64("id", id))

	return nil
}

// normalizePage applies the default page size and clamps negative skips.
func normalizePage(skip, limit int) repository.ListOptions {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if skip < 0 {
		skip = 0
	}
	return repository.ListOptions{Limit: limit, Offset: skip}
}
