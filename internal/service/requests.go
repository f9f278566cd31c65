package service

import (
	"github.com/scxttalex/areabooker/internal/entity"
)

// CreateBookingRequest carries a new reservation. The client never sends a
// price: total_price is derived by the estimator on every write. The
// inhouse flag arrives pre-authorized from the caller.
type CreateBookingRequest struct {
	AreaID          string          `json:"areaID" binding:"required"`
	UserID          string          `json:"userID" binding:"required"`
	Date            entity.DateOnly `json:"date" binding:"required"`
	StartTime       string          `json:"startTime" binding:"required"`
	EndTime         string          `json:"endTime" binding:"required"`
	Purpose         []string        `json:"purpose"`
	AddonIDs        []string        `json:"addons"`
	Notes           string          `json:"notes"`
	InhouseDiscount bool            `json:"inhouseBooking"`
	Paid            bool            `json:"paid"`
}

// UpdateBookingRequest patches a booking; nil fields keep their value.
// Any change to the area, times, selection or discount re-prices the
// booking.
type UpdateBookingRequest struct {
	AreaID          *string          `json:"areaID,omitempty"`
	Date            *entity.DateOnly `json:"date,omitempty"`
	StartTime       *string          `json:"startTime,omitempty"`
	EndTime         *string          `json:"endTime,omitempty"`
	Purpose         *[]string        `json:"purpose,omitempty"`
	AddonIDs        *[]string        `json:"addons,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
	InhouseDiscount *bool            `json:"inhouseBooking,omitempty"`
	Paid            *bool            `json:"paid,omitempty"`
}

// QuoteRequest prices a prospective booking without creating it.
type QuoteRequest struct {
	AreaID          string   `json:"areaID" binding:"required"`
	StartTime       string   `json:"startTime" binding:"required"`
	EndTime         string   `json:"endTime" binding:"required"`
	AddonIDs        []string `json:"addons"`
	InhouseDiscount bool     `json:"inhouseBooking"`
}

type CreateAreaRequest struct {
	Name          string  `json:"areaName" binding:"required"`
	Description   string  `json:"areaDescription"`
	BasePrice     float64 `json:"basePrice" binding:"min=0"`
	OpenTime      string  `json:"openTime" binding:"required"`
	CloseTime     string  `json:"closeTime" binding:"required"`
	GuestCapacity int     `json:"guestCapacity" binding:"min=0"`
}

type UpdateAreaRequest struct {
	Name          *string  `json:"areaName,omitempty"`
	Description   *string  `json:"areaDescription,omitempty"`
	BasePrice     *float64 `json:"basePrice,omitempty"`
	OpenTime      *string  `json:"openTime,omitempty"`
	CloseTime     *string  `json:"closeTime,omitempty"`
	GuestCapacity *int     `json:"guestCapacity,omitempty"`
}

type CreateAddonRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"min=0"`
}

type UpdateAddonRequest struct {
	Name  *string  `json:"name,omitempty"`
	Price *float64 `json:"price,omitempty"`
}

type RegisterUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	IsGuest  bool   `json:"isGuest"`
}

// CalendarRequest selects a calendar layout. Offset counts periods from
// the current one; AreaID narrows the shown bookings to one area.
type CalendarRequest struct {
	Mode   string `form:"mode"`
	Offset int    `form:"offset"`
	AreaID string `form:"area_id"`
}

// DrilldownRequest drives the analytics drill-down. ClientID keys the
// persisted view state; empty fields fall back to that state.
type DrilldownRequest struct {
	ClientID    string
	Granularity string
	AreaID      string
	PaidFilter  string
	Page        *int
}
