package entity

import "time"

type User struct {
	ID        string    `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Email     string    `json:"email" db:"email"`
	IsGuest   bool      `json:"isGuest" db:"is_guest"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
