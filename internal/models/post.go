package models

import "time"

// Post is immutable once stored. DatePosted is the display date rendered at
// creation time and is never recomputed.
type Post struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	DatePosted string    `json:"date_posted"`
	UserID     int       `json:"user_id"`

	// Author is the owner's username, filled by queries that join users.
	Author string `json:"author,omitempty"`
}
