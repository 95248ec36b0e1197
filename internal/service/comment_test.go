package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sakif/movielist/internal/apperror"
	"github.com/sakif/movielist/internal/model"
)

func newCommentFixture(t *testing.T) (*CommentService, *MovieService, *model.User, *model.Movie) {
	t.Helper()
	db := newTestStore(t)
	logger := newTestLogger()

	movies := NewMovieService(db, logger)
	comments := NewCommentService(db, db, logger)

	user := registerTestUser(t, db, "commenter")
	movie, err := movies.Create(context.Background(), user, "Discussed", "", nil)
	if err != nil {
		t.Fatalf("creating fixture movie: %v", err)
	}

	return comments, movies, user, movie
}

func TestCommentCreate(t *testing.T) {
	comments, _, user, movie := newCommentFixture(t)

	comment, err := comments.Create(context.Background(), user, movie.ID, "nice movie", nil)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if comment.ID == 0 {
		t.Error("Create() did not assign an ID")
	}
	if comment.UserID != user.ID {
		t.Errorf("UserID = %d, want %d", comment.UserID, user.ID)
	}
	if comment.CreatedAt.IsZero() {
		t.Error("Create() did not set CreatedAt")
	}
}

func TestCommentCreate_EmptyContent(t *testing.T) {
	comments, _, user, movie := newCommentFixture(t)

	_, err := comments.Create(context.Background(), user, movie.ID, "  ", nil)
	if !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("Create() error = %v, want ErrValidation", err)
	}
}

func TestCommentCreate_UnknownMovie(t *testing.T) {
	comments, _, user, _ := newCommentFixture(t)

	_, err := comments.Create(context.Background(), user, 999, "void", nil)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("Create() error = %v, want ErrNotFound", err)
	}
}

func TestCommentCreate_ReplyToParent(t *testing.T) {
	comments, _, user, movie := newCommentFixture(t)

	root, err := comments.Create(context.Background(), user, movie.ID, "root", nil)
	if err != nil {
		t.Fatalf("Create() root error = %v", err)
	}

	reply, err := comments.Create(context.Background(), user, movie.ID, "reply", &root.ID)
	if err != nil {
		t.Fatalf("Create() reply error = %v", err)
	}

	if reply.ParentCommentID == nil || *reply.ParentCommentID != root.ID {
		t.Errorf("ParentCommentID = %v, want %d", reply.ParentCommentID, root.ID)
	}
}

func TestCommentCreate_UnknownParent(t *testing.T) {
	comments, _, user, movie := newCommentFixture(t)

	missing := int64(999)
	_, err := comments.Create(context.Background(), user, movie.ID, "orphan", &missing)
	if !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("Create() error = %v, want ErrValidation", err)
	}
}

func TestCommentCreate_ParentOnDifferentMovie(t *testing.T) {
	comments, movies, user, movie := newCommentFixture(t)

	other, err := movies.Create(context.Background(), user, "Other", "", nil)
	if err != nil {
		t.Fatalf("Create() other movie error = %v", err)
	}

	parent, err := comments.Create(context.Background(), user, other.ID, "elsewhere", nil)
	if err != nil {
		t.Fatalf("Create() parent error = %v", err)
	}

	// A reply cannot attach to a thread on a different movie.
	_, err = comments.Create(context.Background(), user, movie.ID, "cross-post", &parent.ID)
	if !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("Create() error = %v, want ErrValidation", err)
	}
}

func TestCommentDelete_ExistenceBeforeOwnership(t *testing.T) {
	comments, _, user, movie := newCommentFixture(t)

	comment, err := comments.Create(context.Background(), user, movie.ID, "mine", nil)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	intruder := &model.User{ID: user.ID + 100, Username: "intruder"}

	if err := comments.Delete(context.Background(), intruder, comment.ID); !errors.Is(err, apperror.ErrForbidden) {
		t.Errorf("Delete() by non-owner error = %v, want ErrForbidden", err)
	}

	if err := comments.Delete(context.Background(), intruder, 999); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("Delete() of missing comment error = %v, want ErrNotFound", err)
	}

	if err := comments.Delete(context.Background(), user, comment.ID); err != nil {
		t.Fatalf("Delete() by owner error = %v", err)
	}
}

func TestRatingCreate_UnknownMovie(t *testing.T) {
	db := newTestStore(t)
	logger := newTestLogger()
	ratings := NewRatingService(db, db, logger)
	user := registerTestUser(t, db, "rater")

	_, err := ratings.Create(context.Background(), user, 999, 3.0)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("Create() error = %v, want ErrNotFound", err)
	}
}

func TestRatingCreate_AllowsRepeats(t *testing.T) {
	db := newTestStore(t)
	logger := newTestLogger()
	movies := NewMovieService(db, logger)
	ratings := NewRatingService(db, db, logger)
	user := registerTestUser(t, db, "rater")

	movie, err := movies.Create(context.Background(), user, "Rated", "", nil)
	if err != nil {
		t.Fatalf("Create() movie error = %v", err)
	}

	if _, err := ratings.Create(context.Background(), user, movie.ID, 2.0); err != nil {
		t.Fatalf("first rating error = %v", err)
	}
	if _, err := ratings.Create(context.Background(), user, movie.ID, 5.0); err != nil {
		t.Fatalf("second rating error = %v", err)
	}

	listed, err := ratings.ListByMovie(context.Background(), movie.ID, 0, 10)
	if err != nil {
		t.Fatalf("ListByMovie() error = %v", err)
	}
	if len(listed) != 2 {
		t.Errorf("len(ratings) = %d, want 2", len(listed))
	}
}
