package entity

import "time"

// Addon is an optional priced extra billed at its hourly rate for the full
// duration of the booking it is attached to.
type Addon struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Price     float64   `json:"price" db:"price"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
