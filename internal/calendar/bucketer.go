// Calendar cell layout for the booking views: assigns bookings to date
// buckets under daily, weekly and monthly display modes.
package calendar

import (
	"time"

	"github.com/scxttalex/areabooker/internal/entity"
	"github.com/scxttalex/areabooker/internal/timeutil"
)

// ViewMode selects the calendar layout.
type ViewMode string

const (
	ViewDaily   ViewMode = "daily"
	ViewWeekly  ViewMode = "weekly"
	ViewMonthly ViewMode = "monthly"
)

// ParseViewMode maps a request string to a view mode, defaulting to the
// weekly view the calendar opens with.
func ParseViewMode(s string) ViewMode {
	switch ViewMode(s) {
	case ViewDaily, ViewMonthly:
		return ViewMode(s)
	default:
		return ViewWeekly
	}
}

// Cell is one calendar day to render. Dimmed marks days shown in a monthly
// grid that belong to a neighbouring month; their bookings still display.
// IsToday compares against the real current date, independent of the
// offset being viewed.
type Cell struct {
	Date     string           `json:"date"`
	Weekday  string           `json:"weekday"`
	Dimmed   bool             `json:"dimmed,omitempty"`
	IsToday  bool             `json:"is_today,omitempty"`
	Bookings []entity.Booking `json:"bookings"`
}

// Build produces the ordered cells for a view mode at offset periods from
// now, each holding the bookings whose date equals the cell's date.
// Matching is exact YYYY-MM-DD equality, not time-range overlap.
func Build(now time.Time, mode ViewMode, offset int, bookings []entity.Booking) []Cell {
	switch mode {
	case ViewDaily:
		return cells(now, []time.Time{timeutil.StartOfDay(now).AddDate(0, 0, offset)}, nil, bookings)
	case ViewMonthly:
		return monthCells(now, offset, bookings)
	default:
		return cells(now, weekDates(now, offset), nil, bookings)
	}
}

// weekDates returns the 7 days Monday..Sunday of the week at offset weeks
// from now.
func weekDates(now time.Time, offset int) []time.Time {
	monday := timeutil.StartOfWeek(now).AddDate(0, 0, 7*offset)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

// monthCells lays out the full display grid of the month at offset months
// from now: from the Monday on/before the 1st through the Sunday on/after
// the last day, so the grid is always whole 7-day rows.
func monthCells(now time.Time, offset int, bookings []entity.Booking) []Cell {
	target := timeutil.StartOfMonth(now).AddDate(0, offset, 0)
	gridStart := timeutil.StartOfWeek(target)
	gridEnd := timeutil.StartOfWeek(timeutil.EndOfMonth(target)).AddDate(0, 0, 6)

	var days []time.Time
	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}

	dimmed := func(d time.Time) bool { return d.Month() != target.Month() }
	return cells(now, days, dimmed, bookings)
}

func cells(now time.Time, days []time.Time, dimmed func(time.Time) bool, bookings []entity.Booking) []Cell {
	byDate := make(map[string][]entity.Booking)
	for _, b := range bookings {
		key := b.Date.String()
		byDate[key] = append(byDate[key], b)
	}

	out := make([]Cell, 0, len(days))
	for _, day := range days {
		date := day.Format("2006-01-02")
		cell := Cell{
			Date:     date,
			Weekday:  day.Format("Mon"),
			IsToday:  timeutil.SameDate(day, now),
			Bookings: byDate[date],
		}
		if cell.Bookings == nil {
			cell.Bookings = []entity.Booking{}
		}
		if dimmed != nil {
			cell.Dimmed = dimmed(day)
		}
		out = append(out, cell)
	}
	return out
}
