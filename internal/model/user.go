// Package model defines the data structures used throughout the application.
package model

import "time"

// User represents a registered account.
//
// PasswordHash holds the bcrypt hash of the user's password. The json:"-"
// tag keeps it out of every API response; the plaintext password is never
// stored anywhere.
//
// Users are immutable after registration; there is no update or delete
// route, so the only timestamp is CreatedAt.
type User struct {
	ID           int64     `json:"id"         db:"id"`
	Username     string    `json:"username"   db:"username"`
	Email        string    `json:"email"      db:"email"`
	PasswordHash string    `json:"-"          db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
