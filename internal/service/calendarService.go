package service

import (
	"context"
	"fmt"
	"time"

	"github.com/scxttalex/areabooker/internal/calendar"
	repository "github.com/scxttalex/areabooker/internal/database/postgres"
	"github.com/scxttalex/areabooker/internal/entity"
	"github.com/scxttalex/areabooker/internal/timeutil"
)

type calendarService struct {
	bookingRepo repository.BookingRepository
}

func NewCalendarService(bookingRepo repository.BookingRepository) CalendarService {
	return &calendarService{bookingRepo: bookingRepo}
}

// GetCalendar loads the bookings covering the requested period and lays
// them out into cells. The fetch window is widened to the monthly grid
// bounds so dimmed neighbor days still carry their bookings.
func (s *calendarService) GetCalendar(ctx context.Context, req *CalendarRequest) ([]calendar.Cell, error) {
	mode := calendar.ParseViewMode(req.Mode)
	now := time.Now()

	from, to := fetchWindow(now, mode, req.Offset)

	loaded, err := s.bookingRepo.GetByDateRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	bookings := make([]entity.Booking, 0, len(loaded))
	for _, b := range loaded {
		if req.AreaID != "" && b.AreaID != req.AreaID {
			continue
		}
		bookings = append(bookings, *b)
	}

	return calendar.Build(now, mode, req.Offset, bookings), nil
}

func fetchWindow(now time.Time, mode calendar.ViewMode, offset int) (time.Time, time.Time) {
	switch mode {
	case calendar.ViewDaily:
		day := timeutil.StartOfDay(now).AddDate(0, 0, offset)
		return day, day
	case calendar.ViewMonthly:
		// Step months from the first of the current month. Stepping from
		// now itself overshoots on month-end dates (Jan 31 + 1 month
		// normalizes to Mar 3) and would load the wrong month's bookings.
		month := timeutil.StartOfMonth(now).AddDate(0, offset, 0)
		gridStart := timeutil.StartOfWeek(month)
		gridEnd := timeutil.StartOfWeek(timeutil.EndOfMonth(month)).AddDate(0, 0, 6)
		return gridStart, gridEnd
	default:
		weekStart := timeutil.StartOfWeek(now).AddDate(0, 0, offset*7)
		return weekStart, weekStart.AddDate(0, 0, 6)
	}
}
