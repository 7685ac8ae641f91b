package models

import "time"

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	ImageFile    string    `json:"image_file"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
