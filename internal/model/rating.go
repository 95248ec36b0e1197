package model

// Rating is a single score a user gave a movie. A user may rate the same
// movie more than once; no uniqueness is enforced on (movie, user).
type Rating struct {
	ID      int64   `json:"id"       db:"id"`
	Value   float64 `json:"rating"   db:"rating"`
	MovieID int64   `json:"movie_id" db:"movie_id"`
	UserID  int64   `json:"user_id"  db:"user_id"`
}
