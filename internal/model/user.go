// Package model defines domain entities for the application.
package model

import "time"

// User represents a registered account.
// PasswordHash holds an argon2id PHC string and must never be serialized.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// AuthContext carries the verified caller identity for a request.
// It is populated by the auth middleware after token verification.
type AuthContext struct {
	UserID   string
	Username string
}
