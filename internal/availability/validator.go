// Advisory validation of booking windows against an area's operating
// hours, plus enumeration of the selectable start/end slots.
package availability

import (
	"fmt"

	"github.com/scxttalex/areabooker/internal/entity"
	"github.com/scxttalex/areabooker/internal/timeutil"
)

var quarterMarks = []int{0, 15, 30, 45}

// Slots lists the pickable clock values for an area. Hours run from the
// opening hour through 23: the closing time is display-only and
// deliberately not used to trim the upper bound. MinutesAtOpen applies
// only within the opening hour; every later hour offers all quarter
// marks.
type Slots struct {
	Hours         []string `json:"hours"`
	MinutesAtOpen []string `json:"minutes_at_open"`
	Minutes       []string `json:"minutes"`
}

// WindowCheck is the advisory result of checking a candidate window.
// Validation here is a UI affordance, not a hard gate: a window that ends
// before it starts is reported with a zero duration, not rejected.
type WindowCheck struct {
	Valid         bool    `json:"valid"`
	DurationHours float64 `json:"duration_hours"`
	Reason        string  `json:"reason,omitempty"`
}

// SlotOptions enumerates the selectable times for an area opening at
// openTime. A malformed opening time degrades to a fully open day.
func SlotOptions(openTime string) Slots {
	openHour, openMinute, ok := timeutil.ParseClock(openTime)
	if !ok {
		openHour, openMinute = 0, 0
	}

	hours := make([]string, 0, 24-openHour)
	for h := openHour; h < 24; h++ {
		hours = append(hours, fmt.Sprintf("%02d", h))
	}

	minutes := make([]string, 0, len(quarterMarks))
	atOpen := make([]string, 0, len(quarterMarks))
	for _, m := range quarterMarks {
		mark := fmt.Sprintf("%02d", m)
		minutes = append(minutes, mark)
		if m >= openMinute {
			atOpen = append(atOpen, mark)
		}
	}

	return Slots{Hours: hours, MinutesAtOpen: atOpen, Minutes: minutes}
}

// CheckWindow checks a candidate [start,end) window against an area's
// operating hours. Only a malformed start or a start before opening makes
// the window invalid; the closing time is display-only and not enforced,
// matching the slot enumeration above.
func CheckWindow(area entity.Area, startTime, endTime string) WindowCheck {
	start, ok := timeutil.ClockHours(startTime)
	if !ok {
		return WindowCheck{Reason: "invalid start time"}
	}

	if open, ok := timeutil.ClockHours(area.OpenTime); ok && start < open {
		return WindowCheck{Reason: fmt.Sprintf("area opens at %s", area.OpenTime)}
	}

	return WindowCheck{
		Valid:         true,
		DurationHours: timeutil.DurationHours(startTime, endTime),
	}
}
