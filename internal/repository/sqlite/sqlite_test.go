package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/sakif/movielist/internal/model"
)

// newTestDB opens a fresh in-memory database for one test. It lives only
// for the duration of the test and needs no cleanup beyond Close.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// createTestUser inserts a user with generated unique credentials.
func createTestUser(t *testing.T, db *DB, username string) *model.User {
	t.Helper()
	user := &model.User{
		Username:     username,
		Email:        fmt.Sprintf("%s@example.com", username),
		PasswordHash: "$2a$04$fakefakefakefakefakefake",
	}
	if err := db.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// createTestMovie inserts a movie owned by the given user.
func createTestMovie(t *testing.T, db *DB, owner *model.User, title string) *model.Movie {
	t.Helper()
	movie := &model.Movie{
		Title:       title,
		Description: "a test movie",
		ReleaseDate: time.Now().UTC(),
		OwnerID:     owner.ID,
	}
	if err := db.CreateMovie(context.Background(), movie); err != nil {
		t.Fatalf("failed to create test movie: %v", err)
	}
	return movie
}
