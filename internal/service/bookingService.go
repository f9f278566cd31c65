package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/scxttalex/areabooker/internal/availability"
	repository "github.com/scxttalex/areabooker/internal/database/postgres"
	"github.com/scxttalex/areabooker/internal/entity"
	"github.com/scxttalex/areabooker/internal/pricing"
	"github.com/scxttalex/areabooker/internal/timeutil"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	areaRepo    repository.AreaRepository
	addonRepo   repository.AddonRepository
	userRepo    repository.UserRepository
	invalidator DashboardInvalidator
}

// NewBookingService creates a new booking service. invalidator may be nil
// when no dashboard cache is configured.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	areaRepo repository.AreaRepository,
	addonRepo repository.AddonRepository,
	userRepo repository.UserRepository,
	invalidator DashboardInvalidator,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		areaRepo:    areaRepo,
		addonRepo:   addonRepo,
		userRepo:    userRepo,
		invalidator: invalidator,
	}
}

// CreateBooking validates the window against the area's operating hours,
// prices the booking and stores it. This is the write path: unlike the
// advisory core, it genuinely rejects a window that ends before it starts.
func (s *bookingService) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*entity.Booking, error) {
	area, err := s.areaRepo.GetByID(ctx, req.AreaID)
	if err != nil {
		return nil, fmt.Errorf("area not found: %w", err)
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	if timeutil.DurationHours(req.StartTime, req.EndTime) <= 0 {
		return nil, entity.ErrInvalidWindow
	}

	check := availability.CheckWindow(*area, req.StartTime, req.EndTime)
	if !check.Valid {
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidInput, check.Reason)
	}

	addons, err := s.resolveAddons(ctx, req.AddonIDs)
	if err != nil {
		return nil, err
	}

	booking := &entity.Booking{
		ID:              uuid.NewString(),
		AreaID:          req.AreaID,
		UserID:          req.UserID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Purpose:         req.Purpose,
		AddonIDs:        req.AddonIDs,
		Notes:           req.Notes,
		InhouseDiscount: req.InhouseDiscount,
		TotalPrice:      pricing.Total(*area, addons, req.StartTime, req.EndTime, req.InhouseDiscount),
		Paid:            req.Paid,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"area_id":    booking.AreaID,
		"total":      booking.TotalPrice,
	}).Info("Booking created")

	s.invalidateDashboards(ctx)
	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id string) (*entity.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return booking, nil
}

func (s *bookingService) GetAllBookings(ctx context.Context) ([]*entity.Booking, error) {
	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string) ([]*entity.Booking, error) {
	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user bookings: %w", err)
	}
	return bookings, nil
}

func (s *bookingService) GetAreaBookings(ctx context.Context, areaID string) ([]*entity.Booking, error) {
	bookings, err := s.bookingRepo.GetByAreaID(ctx, areaID)
	if err != nil {
		return nil, fmt.Errorf("failed to list area bookings: %w", err)
	}
	return bookings, nil
}

// UpdateBooking applies a partial update and re-prices the result. The
// stored total is never trusted across an edit: whatever changed, the
// estimator runs again over the final field values.
func (s *bookingService) UpdateBooking(ctx context.Context, id string, req *UpdateBookingRequest) (*entity.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("booking not found: %w", err)
	}

	if req.AreaID != nil {
		booking.AreaID = *req.AreaID
	}
	if req.Date != nil {
		booking.Date = *req.Date
	}
	if req.StartTime != nil {
		booking.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		booking.EndTime = *req.EndTime
	}
	if req.Purpose != nil {
		booking.Purpose = *req.Purpose
	}
	if req.AddonIDs != nil {
		booking.AddonIDs = *req.AddonIDs
	}
	if req.Notes != nil {
		booking.Notes = *req.Notes
	}
	if req.InhouseDiscount != nil {
		booking.InhouseDiscount = *req.InhouseDiscount
	}
	if req.Paid != nil {
		booking.Paid = *req.Paid
	}

	if timeutil.DurationHours(booking.StartTime, booking.EndTime) <= 0 {
		return nil, entity.ErrInvalidWindow
	}

	area, err := s.areaRepo.GetByID(ctx, booking.AreaID)
	if err != nil {
		return nil, fmt.Errorf("area not found: %w", err)
	}

	addons, err := s.resolveAddons(ctx, booking.AddonIDs)
	if err != nil {
		return nil, err
	}

	booking.TotalPrice = pricing.Total(*area, addons, booking.StartTime, booking.EndTime, booking.InhouseDiscount)

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	s.invalidateDashboards(ctx)
	return booking, nil
}

func (s *bookingService) SetBookingPaid(ctx context.Context, id string, paid bool) error {
	if err := s.bookingRepo.SetPaid(ctx, id, paid); err != nil {
		return fmt.Errorf("failed to update paid flag: %w", err)
	}
	s.invalidateDashboards(ctx)
	return nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, id string) error {
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	s.invalidateDashboards(ctx)
	return nil
}

// QuoteBooking prices a prospective booking without persisting anything.
func (s *bookingService) QuoteBooking(ctx context.Context, req *QuoteRequest) (*pricing.Quote, error) {
	area, err := s.areaRepo.GetByID(ctx, req.AreaID)
	if err != nil {
		return nil, fmt.Errorf("area not found: %w", err)
	}

	addons, err := s.resolveAddons(ctx, req.AddonIDs)
	if err != nil {
		return nil, err
	}

	quote := pricing.Estimate(*area, addons, req.StartTime, req.EndTime, req.InhouseDiscount)
	return &quote, nil
}

func (s *bookingService) GetAreaSlots(ctx context.Context, areaID string) (*availability.Slots, error) {
	area, err := s.areaRepo.GetByID(ctx, areaID)
	if err != nil {
		return nil, fmt.Errorf("area not found: %w", err)
	}

	slots := availability.SlotOptions(area.OpenTime)
	return &slots, nil
}

func (s *bookingService) CheckAvailability(ctx context.Context, areaID, startTime, endTime string) (*availability.WindowCheck, error) {
	area, err := s.areaRepo.GetByID(ctx, areaID)
	if err != nil {
		return nil, fmt.Errorf("area not found: %w", err)
	}

	check := availability.CheckWindow(*area, startTime, endTime)
	return &check, nil
}

// resolveAddons loads the selected add-ons. Ids referencing deleted
// add-ons drop out of the result and therefore out of the price.
func (s *bookingService) resolveAddons(ctx context.Context, ids []string) ([]entity.Addon, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	found, err := s.addonRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve addons: %w", err)
	}

	addons := make([]entity.Addon, 0, len(found))
	for _, a := range found {
		addons = append(addons, *a)
	}
	return addons, nil
}

func (s *bookingService) invalidateDashboards(ctx context.Context) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.InvalidateDashboards(ctx); err != nil {
		logrus.Warnf("Failed to invalidate dashboard cache: %v", err)
	}
}
