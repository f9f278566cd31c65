package entity

import "errors"

var (
	// Area errors
	ErrAreaNotFound      = errors.New("area not found")
	ErrAreaAlreadyExists = errors.New("area already exists")
	ErrInvalidHours      = errors.New("opening time must be before closing time")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidWindow   = errors.New("start time must be before end time")

	// Addon errors
	ErrAddonNotFound = errors.New("addon not found")

	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")

	// General errors
	ErrInvalidInput = errors.New("invalid input")
)
