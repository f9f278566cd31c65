package service

import (
	"context"

	"github.com/scxttalex/areabooker/internal/analytics"
	"github.com/scxttalex/areabooker/internal/availability"
	"github.com/scxttalex/areabooker/internal/calendar"
	"github.com/scxttalex/areabooker/internal/entity"
	"github.com/scxttalex/areabooker/internal/pricing"
	"github.com/scxttalex/areabooker/internal/timeutil"
)

// BookingService covers the booking lifecycle plus the pricing and
// availability operations built on the computation core.
type BookingService interface {
	// Lifecycle
	CreateBooking(ctx context.Context, req *CreateBookingRequest) (*entity.Booking, error)
	GetBooking(ctx context.Context, id string) (*entity.Booking, error)
	GetAllBookings(ctx context.Context) ([]*entity.Booking, error)
	GetUserBookings(ctx context.Context, userID string) ([]*entity.Booking, error)
	GetAreaBookings(ctx context.Context, areaID string) ([]*entity.Booking, error)
	UpdateBooking(ctx context.Context, id string, req *UpdateBookingRequest) (*entity.Booking, error)
	SetBookingPaid(ctx context.Context, id string, paid bool) error
	DeleteBooking(ctx context.Context, id string) error

	// Pricing and availability
	QuoteBooking(ctx context.Context, req *QuoteRequest) (*pricing.Quote, error)
	GetAreaSlots(ctx context.Context, areaID string) (*availability.Slots, error)
	CheckAvailability(ctx context.Context, areaID, startTime, endTime string) (*availability.WindowCheck, error)
}

type AreaService interface {
	CreateArea(ctx context.Context, req *CreateAreaRequest) (*entity.Area, error)
	GetArea(ctx context.Context, id string) (*entity.Area, error)
	GetAllAreas(ctx context.Context) ([]*entity.Area, error)
	UpdateArea(ctx context.Context, id string, req *UpdateAreaRequest) (*entity.Area, error)
	DeleteArea(ctx context.Context, id string) error
}

type AddonService interface {
	CreateAddon(ctx context.Context, req *CreateAddonRequest) (*entity.Addon, error)
	GetAddon(ctx context.Context, id string) (*entity.Addon, error)
	GetAllAddons(ctx context.Context) ([]*entity.Addon, error)
	UpdateAddon(ctx context.Context, id string, req *UpdateAddonRequest) (*entity.Addon, error)
	DeleteAddon(ctx context.Context, id string) error
}

type UserService interface {
	RegisterUser(ctx context.Context, req *RegisterUserRequest) (*entity.User, error)
	GetUser(ctx context.Context, id string) (*entity.User, error)
	GetAllUsers(ctx context.Context) ([]*entity.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// CalendarService lays out booking calendars from fresh store snapshots.
type CalendarService interface {
	GetCalendar(ctx context.Context, req *CalendarRequest) ([]calendar.Cell, error)
}

// AnalyticsService computes dashboards and drill-downs over full record
// snapshots, caching computed dashboards between writes.
type AnalyticsService interface {
	GetDashboard(ctx context.Context, g timeutil.Granularity) (*analytics.Dashboard, error)
	GetDrilldown(ctx context.Context, req *DrilldownRequest) (*analytics.DrilldownPage, error)
	RefreshDashboards(ctx context.Context) error
}

// DashboardInvalidator drops cached dashboards after booking writes. Kept
// as a narrow interface so the booking service works without a cache.
type DashboardInvalidator interface {
	InvalidateDashboards(ctx context.Context) error
}
