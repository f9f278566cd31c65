// Cost estimation for bookings: a composable set of hourly-priced
// resources (the area plus selected add-ons) scaled by one shared
// duration, with an optional in-house discount.
package pricing

import (
	"github.com/scxttalex/areabooker/internal/entity"
	"github.com/scxttalex/areabooker/internal/timeutil"
)

// Line is one priced component of a quote. Cost is rounded for display;
// the unrounded figure only ever exists inside Estimate.
type Line struct {
	ID         string  `json:"id,omitempty"`
	Name       string  `json:"name"`
	HourlyRate float64 `json:"hourly_rate"`
	Cost       float64 `json:"cost"`
}

// Quote is the itemized breakdown of a booking price.
type Quote struct {
	DurationHours   float64 `json:"duration_hours"`
	Area            Line    `json:"area"`
	Addons          []Line  `json:"addons"`
	Subtotal        float64 `json:"subtotal"`
	InhouseDiscount bool    `json:"inhouse_discount"`
	Total           float64 `json:"total"`
}

// Estimate prices a window of an area with the selected add-ons. Every
// component scales with the same duration; add-ons are not independently
// timed. The subtotal is halved when the in-house flag is set. Rounding
// happens once per presented figure, never on intermediate terms, and a
// zero-duration or empty selection yields a 0.00 total rather than an error.
//
// Pure function: callers re-invoke it whenever the area, the selection or
// either time field changes.
func Estimate(area entity.Area, addons []entity.Addon, startTime, endTime string, inhouseDiscount bool) Quote {
	duration := timeutil.DurationHours(startTime, endTime)

	areaCost := area.BasePrice * duration
	subtotal := areaCost

	lines := make([]Line, 0, len(addons))
	for _, addon := range addons {
		cost := addon.Price * duration
		subtotal += cost
		lines = append(lines, Line{
			ID:         addon.ID,
			Name:       addon.Name,
			HourlyRate: addon.Price,
			Cost:       timeutil.Round2(cost),
		})
	}

	total := subtotal
	if inhouseDiscount {
		total = subtotal / 2
	}

	return Quote{
		DurationHours: duration,
		Area: Line{
			ID:         area.ID,
			Name:       area.Name,
			HourlyRate: area.BasePrice,
			Cost:       timeutil.Round2(areaCost),
		},
		Addons:          lines,
		Subtotal:        timeutil.Round2(subtotal),
		InhouseDiscount: inhouseDiscount,
		Total:           timeutil.Round2(total),
	}
}

// Total is a shortcut for callers that only need the final price.
func Total(area entity.Area, addons []entity.Addon, startTime, endTime string, inhouseDiscount bool) float64 {
	return Estimate(area, addons, startTime, endTime, inhouseDiscount).Total
}
