package sqlite

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/sakif/movielist/internal/apperror"
	"github.com/sakif/movielist/internal/repository"
)

func TestCreateMovie_AssignsSequentialIDs(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner")

	first := createTestMovie(t, db, owner, "First")
	second := createTestMovie(t, db, owner, "Second")

	if first.ID != 1 {
		t.Errorf("first movie ID = %d, want 1", first.ID)
	}
	if second.ID != first.ID+1 {
		t.Errorf("second movie ID = %d, want %d", second.ID, first.ID+1)
	}
}

func TestGetMovieByID_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner")
	created := createTestMovie(t, db, owner, "Round Trip")

	found, err := db.GetMovieByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetMovieByID() error = %v", err)
	}

	if found.Title != created.Title {
		t.Errorf("Title = %q, want %q", found.Title, created.Title)
	}
	if found.Description != created.Description {
		t.Errorf("Description = %q, want %q", found.Description, created.Description)
	}
	if found.OwnerID != owner.ID {
		t.Errorf("OwnerID = %d, want %d", found.OwnerID, owner.ID)
	}
	if !found.ReleaseDate.Equal(created.ReleaseDate) {
		t.Errorf("ReleaseDate = %v, want %v", found.ReleaseDate, created.ReleaseDate)
	}
}

func TestGetMovieByID_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.GetMovieByID(context.Background(), 42)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetMovieByID() error = %v, want ErrNotFound", err)
	}
}

func TestListMovies_Pagination(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner")

	for i := 0; i < 5; i++ {
		createTestMovie(t, db, owner, fmt.Sprintf("Movie %d", i))
	}

	page, err := db.ListMovies(context.Background(), repository.ListOptions{Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("ListMovies() error = %v", err)
	}

	if len(page) != 2 {
		t.Fatalf("len(page) = %d, want 2", len(page))
	}
	if page[0].Title != "Movie 1" {
		t.Errorf("page[0].Title = %q, want %q", page[0].Title, "Movie 1")
	}
	if page[1].Title != "Movie 2" {
		t.Errorf("page[1].Title = %q, want %q", page[1].Title, "Movie 2")
	}
}

func TestListMovies_EmptyIsNotNil(t *testing.T) {
	db := newTestDB(t)

	movies, err := db.ListMovies(context.Background(), repository.ListOptions{Limit: 10})
	if err != nil {
		t.Fatalf("ListMovies() error = %v", err)
	}
	if movies == nil {
		t.Error("ListMovies() returned nil, want empty slice")
	}
	if len(movies) != 0 {
		t.Errorf("len(movies) = %d, want 0", len(movies))
	}
}

func TestUpdateMovie(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner")
	movie := createTestMovie(t, db, owner, "Before")

	movie.Title = "After"
	movie.Description = "updated"

	if err := db.UpdateMovie(context.Background(), movie); err != nil {
		t.Fatalf("UpdateMovie() error = %v", err)
	}

	found, err := db.GetMovieByID(context.Background(), movie.ID)
	if err != nil {
		t.Fatalf("GetMovieByID() error = %v", err)
	}
	if found.Title != "After" {
		t.Errorf("Title = %q, want %q", found.Title, "After")
	}
	if found.Description != "updated" {
		t.Errorf("Description = %q, want %q", found.Description, "updated")
	}
}

func TestUpdateMovie_NotFound(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner")
	movie := createTestMovie(t, db, owner, "Exists")
	movie.ID = 999

	err := db.UpdateMovie(context.Background(), movie)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("UpdateMovie() error = %v, want ErrNotFound", err)
	}
}

func TestDeleteMovie(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner")
	movie := createTestMovie(t, db, owner, "Doomed")

	if err := db.DeleteMovie(context.Background(), movie.ID); err != nil {
		t.Fatalf("DeleteMovie() error = %v", err)
	}

	_, err := db.GetMovieByID(context.Background(), movie.ID)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetMovieByID() after delete error = %v, want ErrNotFound", err)
	}
}

func TestDeleteMovie_NotFound(t *testing.T) {
	db := newTestDB(t)

	err := db.DeleteMovie(context.Background(), 123)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("DeleteMovie() error = %v, want ErrNotFound", err)
	}
}

func TestDeleteMovie_LeavesRatingsAndComments(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner")
	movie := createTestMovie(t, db, owner, "Rated")

	rating := createTestRating(t, db, owner, movie, 4.5)
	comment := createTestComment(t, db, owner, movie, "dangling", nil)

	if err := db.DeleteMovie(context.Background(), movie.ID); err != nil {
		t.Fatalf("DeleteMovie() error = %v", err)
	}

	// No cascade: the rating and comment survive the movie.
	ratings, err := db.ListRatingsByMovie(context.Background(), movie.ID, repository.ListOptions{Limit: 10})
	if err != nil {
		t.Fatalf("ListRatingsByMovie() error = %v", err)
	}
	if len(ratings) != 1 || ratings[0].ID != rating.ID {
		t.Errorf("ratings after movie delete = %+v, want the original rating", ratings)
	}

	if _, err := db.GetCommentByID(context.Background(), comment.ID); err != nil {
		t.Errorf("GetCommentByID() after movie delete error = %v", err)
	}
}
