package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDurationHours covers the clamp-to-zero policy for bad inputs.
func TestDurationHours(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  float64
	}{
		{
			name:  "two and a half hours",
			start: "09:00",
			end:   "11:30",
			want:  2.5,
		},
		{
			name:  "end before start clamps to zero",
			start: "11:00",
			end:   "09:00",
			want:  0,
		},
		{
			name:  "missing start clamps to zero",
			start: "",
			end:   "10:00",
			want:  0,
		},
		{
			name:  "missing end clamps to zero",
			start: "10:00",
			end:   "",
			want:  0,
		},
		{
			name:  "malformed start clamps to zero",
			start: "9am",
			end:   "10:00",
			want:  0,
		},
		{
			name:  "quarter hour",
			start: "08:15",
			end:   "09:00",
			want:  0.75,
		},
		{
			name:  "equal times",
			start: "12:00",
			end:   "12:00",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, DurationHours(tt.start, tt.end), 1e-9)
		})
	}
}

func TestParseClock(t *testing.T) {
	h, m, ok := ParseClock("08:45")
	require.True(t, ok)
	assert.Equal(t, 8, h)
	assert.Equal(t, 45, m)

	for _, bad := range []string{"", "8", "24:00", "12:60", "ab:cd", "-1:30"} {
		_, _, ok := ParseClock(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
	}
}

func TestPeriodKey(t *testing.T) {
	// Thursday 2025-04-10.
	date := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		g    Granularity
		want string
	}{
		{name: "daily is the date itself", g: GranularityDaily, want: "2025-04-10"},
		{name: "weekly is the preceding monday", g: GranularityWeekly, want: "2025-04-07"},
		{name: "monthly is year-month", g: GranularityMonthly, want: "2025-04"},
		{name: "yearly is the year", g: GranularityYearly, want: "2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PeriodKey(date, tt.g))
		})
	}
}

// TestPeriodKeyWeeklySpan checks that every date inside one Mon-Sun span
// shares a key and the next week does not.
func TestPeriodKeyWeeklySpan(t *testing.T) {
	monday := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)

	key := PeriodKey(monday, GranularityWeekly)
	for i := 0; i < 7; i++ {
		assert.Equal(t, key, PeriodKey(monday.AddDate(0, 0, i), GranularityWeekly))
	}
	assert.NotEqual(t, key, PeriodKey(monday.AddDate(0, 0, 7), GranularityWeekly))
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{name: "monday maps to itself", in: time.Date(2025, 4, 7, 15, 30, 0, 0, time.UTC), want: "2025-04-07"},
		{name: "sunday maps back six days", in: time.Date(2025, 4, 13, 0, 0, 0, 0, time.UTC), want: "2025-04-07"},
		{name: "across month boundary", in: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), want: "2025-04-28"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StartOfWeek(tt.in)
			assert.Equal(t, tt.want, got.Format("2006-01-02"))
			assert.Equal(t, time.Monday, got.Weekday())
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 33.33, Round2(33.333333))
	assert.Equal(t, 66.67, Round2(66.666666))
	assert.Equal(t, 0.0, Round2(0))
}

func TestParseGranularity(t *testing.T) {
	assert.Equal(t, GranularityWeekly, ParseGranularity("weekly"))
	assert.Equal(t, GranularityDaily, ParseGranularity("hourly"))
	assert.Equal(t, GranularityDaily, ParseGranularity(""))
}
