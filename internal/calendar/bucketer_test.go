package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scxttalex/areabooker/internal/entity"
)

func booking(id, date string) entity.Booking {
	d, _ := time.Parse("2006-01-02", date)
	return entity.Booking{ID: id, Date: entity.NewDateOnly(d)}
}

// Thursday.
var now = time.Date(2025, 4, 10, 14, 30, 0, 0, time.UTC)

func TestBuildWeekly(t *testing.T) {
	bookings := []entity.Booking{
		booking("b1", "2025-04-07"),
		booking("b2", "2025-04-10"),
		booking("b3", "2025-04-10"),
		booking("b4", "2025-04-14"), // next week, must not appear
	}

	cellList := Build(now, ViewWeekly, 0, bookings)

	require.Len(t, cellList, 7)
	assert.Equal(t, "2025-04-07", cellList[0].Date)
	assert.Equal(t, "Mon", cellList[0].Weekday)
	assert.Equal(t, "2025-04-13", cellList[6].Date)
	assert.Equal(t, "Sun", cellList[6].Weekday)

	assert.Len(t, cellList[0].Bookings, 1)
	assert.Len(t, cellList[3].Bookings, 2)
	assert.True(t, cellList[3].IsToday)

	total := 0
	for _, c := range cellList {
		total += len(c.Bookings)
	}
	assert.Equal(t, 3, total)
}

func TestBuildWeeklyOffset(t *testing.T) {
	next := Build(now, ViewWeekly, 1, nil)
	require.Len(t, next, 7)
	assert.Equal(t, "2025-04-14", next[0].Date)

	// IsToday tracks the real date, so a shifted week has no today cell.
	for _, c := range next {
		assert.False(t, c.IsToday)
	}

	prev := Build(now, ViewWeekly, -1, nil)
	assert.Equal(t, "2025-03-31", prev[0].Date)
}

func TestBuildMonthlyGridShape(t *testing.T) {
	// Every month of the year produces whole Mon-Sun rows.
	for month := 1; month <= 12; month++ {
		ref := time.Date(2025, time.Month(month), 15, 0, 0, 0, 0, time.UTC)
		cellList := Build(ref, ViewMonthly, 0, nil)

		require.NotEmpty(t, cellList)
		assert.Zerof(t, len(cellList)%7, "month %d grid is %d cells", month, len(cellList))

		first, _ := time.Parse("2006-01-02", cellList[0].Date)
		last, _ := time.Parse("2006-01-02", cellList[len(cellList)-1].Date)
		assert.Equal(t, time.Monday, first.Weekday())
		assert.Equal(t, time.Sunday, last.Weekday())
	}
}

func TestBuildMonthlyDimsNeighbourDays(t *testing.T) {
	// April 2025: 1st is a Tuesday, so the grid starts Mon 31 March.
	cellList := Build(now, ViewMonthly, 0, []entity.Booking{booking("b1", "2025-03-31")})

	assert.Equal(t, "2025-03-31", cellList[0].Date)
	assert.True(t, cellList[0].Dimmed)
	// Dimmed cells still show their bookings.
	assert.Len(t, cellList[0].Bookings, 1)

	assert.Equal(t, "2025-04-01", cellList[1].Date)
	assert.False(t, cellList[1].Dimmed)
}

func TestBuildMonthlyOffset(t *testing.T) {
	cellList := Build(now, ViewMonthly, 1, nil)

	sawMay := false
	for _, c := range cellList {
		d, _ := time.Parse("2006-01-02", c.Date)
		if d.Month() == time.May {
			sawMay = true
			assert.False(t, c.Dimmed)
		}
	}
	assert.True(t, sawMay)
}

func TestBuildDaily(t *testing.T) {
	bookings := []entity.Booking{booking("b1", "2025-04-10"), booking("b2", "2025-04-11")}

	today := Build(now, ViewDaily, 0, bookings)
	require.Len(t, today, 1)
	assert.Equal(t, "2025-04-10", today[0].Date)
	assert.True(t, today[0].IsToday)
	assert.Len(t, today[0].Bookings, 1)

	tomorrow := Build(now, ViewDaily, 1, bookings)
	require.Len(t, tomorrow, 1)
	assert.Equal(t, "2025-04-11", tomorrow[0].Date)
	assert.False(t, tomorrow[0].IsToday)
	assert.Len(t, tomorrow[0].Bookings, 1)
}

func TestParseViewMode(t *testing.T) {
	assert.Equal(t, ViewMonthly, ParseViewMode("monthly"))
	assert.Equal(t, ViewWeekly, ParseViewMode(""))
	assert.Equal(t, ViewWeekly, ParseViewMode("yearly"))
}
