// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User represents a registered account. The ID is an opaque identifier
// assigned by the store on creation; callers only rely on its equality.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialized; only the hash is ever stored.
	CreatedAt    time.Time `json:"created_at"`
}
