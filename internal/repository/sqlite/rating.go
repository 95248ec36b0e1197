package sqlite

import (
	"context"
	"fmt"

	"github.com/sakif/movielist/internal/model"
	"github.com/sakif/movielist/internal/repository"
)

// compile-time check that *DB implements repository.RatingRepository
var _ repository.RatingRepository = (*DB)(nil)

// CreateRating inserts a rating and fills in its generated ID. Multiple
// ratings per (movie, user) are allowed; there is no uniqueness constraint.
func (db *DB) CreateRating(ctx context.Context, rating *model.Rating) error {
	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO ratings (rating, movie_id, user_id) VALUES (?, ?, ?)`,
		rating.Value,
		rating.MovieID,
		rating.UserID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting rating for movie %d: %w", rating.MovieID, err)
	}

	rating.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading new rating id: %w", err)
	}

	return nil
}

// ListRatingsByMovie returns a page of ratings for one movie, ordered
// by id.
func (db *DB) ListRatingsByMovie(ctx context.Context, movieID int64, opts repository.ListOptions) ([]model.Rating, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, rating, movie_id, user_id
		 FROM ratings WHERE movie_id = ? ORDER BY id LIMIT ? OFFSET ?`,
		movieID, opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing ratings for movie %d: %w", movieID, err)
	}
	defer rows.Close()

	ratings := []model.Rating{}
	for rows.Next() {
		var r model.Rating
		if err := rows.Scan(&r.ID, &r.Value, &r.MovieID, &r.UserID); err != nil {
			return nil, fmt.Errorf("sqlite: scanning rating row: %w", err)
		}
		ratings = append(ratings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating rating rows: %w", err)
	}

	return ratings, nil
}
