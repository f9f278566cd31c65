package entity

import (
	"time"
)

// Area is a bookable physical resource. BasePrice is charged per hour of the
// booked window; OpenTime/CloseTime are wall-clock "HH:MM" strings.
type Area struct {
	ID            string    `json:"id" db:"id"`
	Name          string    `json:"areaName" db:"name"`
	Description   string    `json:"areaDescription" db:"description"`
	BasePrice     float64   `json:"basePrice" db:"base_price"`
	OpenTime      string    `json:"openTime" db:"open_time"`
	CloseTime     string    `json:"closeTime" db:"close_time"`
	GuestCapacity int       `json:"guestCapacity" db:"guest_capacity"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
