package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sakif/movielist/internal/apperror"
	"github.com/sakif/movielist/internal/model"
	"github.com/sakif/movielist/internal/repository"
)

// compile-time check that *DB implements repository.CommentRepository
var _ repository.CommentRepository = (*DB)(nil)

// CreateComment inserts a comment and fills in its ID and CreatedAt.
// ParentCommentID may be nil; database/sql writes a nil *int64 as NULL.
func (db *DB) CreateComment(ctx context.Context, comment *model.Comment) error {
	comment.CreatedAt = time.Now().UTC()

	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO comments (content, movie_id, user_id, parent_comment_id, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		comment.Content,
		comment.MovieID,
		comment.UserID,
		comment.ParentCommentID,
		comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting comment for movie %d: %w", comment.MovieID, err)
	}

	comment.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading new comment id: %w", err)
	}

	return nil
}

// GetCommentByID retrieves a comment by its ID.
// Returns apperror.ErrNotFound if no comment exists with that ID.
func (db *DB) GetCommentByID(ctx context.Context, id int64) (*model.Comment, error) {
	var c model.Comment

	err := db.conn.QueryRowContext(ctx,
		`SELECT id, content, movie_id, user_id, parent_comment_id, created_at
		 FROM comments WHERE id = ?`,
		id,
	).Scan(
		&c.ID,
		&c.Content,
		&c.MovieID,
		&c.UserID,
		&c.ParentCommentID,
		&c.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("comment")
		}
		return nil, fmt.Errorf("sqlite: getting comment %d: %w", id, err)
	}

	return &c, nil
}

// ListCommentsByMovie returns a flat page of comments for one movie,
// ordered by id. Reply threading is left to the client via
// parent_comment_id.
func (db *DB) ListCommentsByMovie(ctx context.Context, movieID int64, opts repository.ListOptions) ([]model.Comment, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, content, movie_id, user_id, parent_comment_id, created_at
		 FROM comments WHERE movie_id = ? ORDER BY id LIMIT ? OFFSET ?`,
		movieID, opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing comments for movie %d: %w", movieID, err)
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.Content, &c.MovieID, &c.UserID, &c.ParentCommentID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning comment row: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating comment rows: %w", err)
	}

	return comments, nil
}

// DeleteComment removes a comment row. Replies referencing it are left in
// place.
func (db *DB) DeleteComment(ctx context.Context, id int64) error {
	res, err := db.conn.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: deleting comment %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking comment delete: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("comment")
	}

	return nil
}
