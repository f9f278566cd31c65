package entity

import (
	"time"
)

// Booking is a reservation of an area for one date and wall-clock window.
// StartTime/EndTime are "HH:MM" strings; TotalPrice is computed by the
// pricing estimator on every write, never taken from the client.
type Booking struct {
	ID              string    `json:"id" db:"id"`
	AreaID          string    `json:"areaID" db:"area_id"`
	UserID          string    `json:"userID" db:"user_id"`
	Date            DateOnly  `json:"date" db:"date"`
	StartTime       string    `json:"startTime" db:"start_time"`
	EndTime         string    `json:"endTime" db:"end_time"`
	Purpose         []string  `json:"purpose" db:"purpose"`
	AddonIDs        []string  `json:"addons" db:"addon_ids"`
	Notes           string    `json:"notes" db:"notes"`
	InhouseDiscount bool      `json:"inhouseBooking" db:"inhouse_discount"`
	TotalPrice      float64   `json:"totalPrice" db:"total_price"`
	Paid            bool      `json:"paid" db:"paid"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
