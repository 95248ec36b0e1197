package model

import "time"

// Comment is a comment on a movie. ParentCommentID is nil for top-level
// comments and points at another comment on the same movie for replies,
// allowing arbitrary-depth chains. Comments are never re-parented after
// creation.
//
// Listing returns comments flat; reply trees are assembled client-side
// from ParentCommentID.
type Comment struct {
	ID              int64     `json:"id"                db:"id"`
	Content         string    `json:"content"           db:"content"`
	MovieID         int64     `json:"movie_id"          db:"movie_id"`
	UserID          int64     `json:"user_id"           db:"user_id"`
	ParentCommentID *int64    `json:"parent_comment_id" db:"parent_comment_id"`
	CreatedAt       time.Time `json:"created_at"        db:"created_at"`
}
