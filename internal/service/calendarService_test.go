package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scxttalex/areabooker/internal/calendar"
)

const dateLayout = "2006-01-02"

// The fetch window must span exactly the dates the grid renders, or cells
// near the edges silently lose their bookings. Month-end dates are the
// trap: stepping months from them normalizes past the target month.
func TestFetchWindow_MatchesRenderedCells(t *testing.T) {
	tests := []struct {
		name   string
		now    time.Time
		mode   calendar.ViewMode
		offset int
	}{
		{
			name:   "monthly next month from Jan 31",
			now:    time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC),
			mode:   calendar.ViewMonthly,
			offset: 1,
		},
		{
			name:   "monthly previous month from Mar 31",
			now:    time.Date(2026, 3, 31, 8, 0, 0, 0, time.UTC),
			mode:   calendar.ViewMonthly,
			offset: -1,
		},
		{
			name:   "monthly current month",
			now:    time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
			mode:   calendar.ViewMonthly,
			offset: 0,
		},
		{
			name:   "weekly with offset",
			now:    time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC),
			mode:   calendar.ViewWeekly,
			offset: 2,
		},
		{
			name:   "daily with offset",
			now:    time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC),
			mode:   calendar.ViewDaily,
			offset: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := calendar.Build(tt.now, tt.mode, tt.offset, nil)
			require.NotEmpty(t, cells)

			from, to := fetchWindow(tt.now, tt.mode, tt.offset)

			assert.Equal(t, cells[0].Date, from.Format(dateLayout))
			assert.Equal(t, cells[len(cells)-1].Date, to.Format(dateLayout))
		})
	}
}
