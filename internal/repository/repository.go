// Package repository declares the storage interfaces the service layer
// depends on. The sqlite subpackage provides the implementation; tests may
// substitute in-memory fakes.
package repository

import (
	"context"

	"github.com/sakif/movielist/internal/model"
)

// ListOptions carries pagination for list queries. Limit is applied as-is;
// callers normalise defaults before reaching the repository.
type ListOptions struct {
	Limit  int
	Offset int
}

type UserRepository interface {
	// CreateUser inserts a new user and fills in its ID and CreatedAt.
	// Returns apperror.ErrConflict when the username or email is taken.
	CreateUser(ctx context.Context, user *model.User) error
	// GetUserByUsername performs a case-sensitive exact match.
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
}

type MovieRepository interface {
	CreateMovie(ctx context.Context, movie *model.Movie) error
	GetMovieByID(ctx context.Context, id int64) (*model.Movie, error)
	ListMovies(ctx context.Context, opts ListOptions) ([]model.Movie, error)
	UpdateMovie(ctx context.Context, movie *model.Movie) error
	DeleteMovie(ctx context.Context, id int64) error
}

type RatingRepository interface {
	CreateRating(ctx context.Context, rating *model.Rating) error
	ListRatingsByMovie(ctx context.Context, movieID int64, opts ListOptions) ([]model.Rating, error)
}

type CommentRepository interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetCommentByID(ctx context.Context, id int64) (*model.Comment, error)
	ListCommentsByMovie(ctx context.Context, movieID int64, opts ListOptions) ([]model.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}
