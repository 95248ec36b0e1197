package model

import "time"

// Movie is a listed movie. OwnerID references the user who created the
// record; only the owner may update or delete it.
//
// ReleaseDate defaults to the creation time when the client does not
// supply one.
type Movie struct {
	ID          int64     `json:"id"           db:"id"`
	Title       string    `json:"title"        db:"title"`
	Description string    `json:"description"  db:"description"`
	ReleaseDate time.Time `json:"release_date" db:"release_date"`
	OwnerID     int64     `json:"owner_id"     db:"user_id"`
}
