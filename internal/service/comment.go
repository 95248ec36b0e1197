package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/movielist/internal/apperror"
	"github.com/sakif/movielist/internal/model"
	"github.com/sakif/movielist/internal/repository"
)

// CommentService handles business logic for movie comments, including the
// self-referential reply chains.
type CommentService struct {
	comments repository.CommentRepository
	movies   repository.MovieRepository
	logger   *slog.Logger
}

func NewCommentService(comments repository.CommentRepository, movies repository.MovieRepository, logger *slog.Logger) *CommentService {
	return &CommentService{
		comments: comments,
		movies:   movies,
		logger:   logger,
	}
}

// Create stores a comment by user on the given movie.
//
// The movie must exist. When parentID is set, the parent comment must exist
// and belong to the same movie; a reply cannot attach to a thread on a
// different movie. Comments are created once with a fixed parent-or-null
// and never re-parented, so no cycle can form.
func (s *CommentService) Create(ctx context.Context, user *model.User, movieID int64, content string, parentID *int64) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperror.ValidationFailed("content", "content is required")
	}

	if _, err := s.movies.GetMovieByID(ctx, movieID); err != nil {
		return nil, err
	}

	if parentID != nil {
		parent, err := s.comments.GetCommentByID(ctx, *parentID)
		if err != nil {
			if errors.Is(err, apperror.ErrNotFound) {
				return nil, apperror.ValidationFailed("parent_comment_id", "parent comment not found")
			}
			return nil, fmt.Errorf("looking up parent comment: %w", err)
		}
		if parent.MovieID != movieID {
			return nil, apperror.ValidationFailed("parent_comment_id", "parent comment belongs to a different movie")
		}
	}

	comment := &model.Comment{
		Content:         content,
		MovieID:         movieID,
		UserID:          user.ID,
		ParentCommentID: parentID,
	}

	if err := s.comments.CreateComment(ctx, comment); err != nil {
		s.logger.Error("failed to create comment",
			slog.Int64("movieID", movieID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating comment: %w", err)
	}

	s.logger.Info("comment created",
		slog.Int64("id", comment.ID),
		slog.Int64("movieID", movieID),
	)

	return comment, nil
}

// ListByMovie returns a flat page of comments for one movie. Replies are
// not nested server-side; clients thread them via parent_comment_id.
func (s *CommentService) ListByMovie(ctx context.Context, movieID int64, skip, limit int) ([]model.Comment, error) {
	comments, err := s.comments.ListCommentsByMovie(ctx, movieID, normalizePage(skip, limit))
	if err != nil {
		s.logger.Error("failed to list comments",
			slog.Int64("movieID", movieID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	return comments, nil
}

// Delete removes a comment after the existence-then-ownership checks.
// Replies to the deleted comment are left in place.
func (s *CommentService) Delete(ctx context.Context, user *model.User, id int64) error {
	comment, err := s.comments.GetCommentByID(ctx, id)
	if err != nil {
		return err
	}

	if comment.UserID != user.ID {
		return apperror.Forbidden("not authorized to delete this comment")
	}

	if err := s.comments.DeleteComment(ctx, id); err != nil {
		s.logger.Error("failed to delete comment",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("deleting comment: %w", err)
	}

	s.logger.Info("comment deleted", slog.Int64("id", id))

	return nil
}
