package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sakif/movielist/internal/apperror"
	"github.com/sakif/movielist/internal/model"
	"github.com/sakif/movielist/internal/repository"
)

// compile-time check that *DB implements repository.MovieRepository
var _ repository.MovieRepository = (*DB)(nil)

// CreateMovie inserts a movie and fills in its generated ID. The caller
// sets OwnerID and ReleaseDate beforehand.
func (db *DB) CreateMovie(ctx context.Context, movie *model.Movie) error {
	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO movies (title, description, release_date, user_id)
		 VALUES (?, ?, ?, ?)`,
		movie.Title,
		movie.Description,
		movie.ReleaseDate,
		movie.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting movie %q: %w", movie.Title, err)
	}

	movie.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading new movie id: %w", err)
	}

	return nil
}

// GetMovieByID retrieves a movie by its ID.
// Returns apperror.ErrNotFound if no movie exists with that ID.
func (db *DB) GetMovieByID(ctx context.Context, id int64) (*model.Movie, error) {
	var m model.Movie

	err := db.conn.QueryRowContext(ctx,
		`SELECT id, title, description, release_date, user_id
		 FROM movies WHERE id = ?`,
		id,
	).Scan(
		&m.ID,
		&m.Title,
		&m.Description,
		&m.ReleaseDate,
		&m.OwnerID,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("movie")
		}
		return nil, fmt.Errorf("sqlite: getting movie %d: %w", id, err)
	}

	return &m, nil
}

// ListMovies returns a page of movies ordered by id.
func (db *DB) ListMovies(ctx context.Context, opts repository.ListOptions) ([]model.Movie, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, title, description, release_date, user_id
		 FROM movies ORDER BY id LIMIT ? OFFSET ?`,
		opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing movies: %w", err)
	}
	defer rows.Close()

	// Start with an empty (non-nil) slice so the JSON encoding is []
	// rather than null when there are no rows.
	movies := []model.Movie{}
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.ReleaseDate, &m.OwnerID); err != nil {
			return nil, fmt.Errorf("sqlite: scanning movie row: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating movie rows: %w", err)
	}

	return movies, nil
}

// UpdateMovie overwrites the mutable fields of an existing movie.
// Returns apperror.ErrNotFound when the id does not exist.
func (db *DB) UpdateMovie(ctx context.Context, movie *model.Movie) error {
	res, err := db.conn.ExecContext(ctx,
		`UPDATE movies SET title = ?, description = ? WHERE id = ?`,
		movie.Title,
		movie.Description,
		movie.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating movie %d: %w", movie.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking movie update: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("movie")
	}

	return nil
}

// DeleteMovie removes a movie row. Dependent ratings and comments are left
// in place; deletion does not cascade.
func (db *DB) DeleteMovie(ctx context.Context, id int64) error {
	res, err := db.conn.ExecContext(ctx, `DELETE FROM movies WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: deleting movie %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking movie delete: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("movie")
	}

	return nil
}
