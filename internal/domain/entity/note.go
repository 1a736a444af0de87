package entity

import "time"

// Note is a personal text note. UserID references the owning account and is
// set once at creation; every read and write is scoped to that owner.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
